package repositories

import (
	"context"

	"github.com/rios0rios0/localguide/internal/domain/entities"
)

// ContentRepository is a handle to one remote repository's file tree.
// Implementations return entries with repository-relative paths.
type ContentRepository interface {
	// ListRoot lists the entries at the repository root.
	ListRoot(ctx context.Context) ([]entities.ContentEntry, error)

	// ListChildren lists the entries inside a directory entry.
	ListChildren(ctx context.Context, entry entities.ContentEntry) ([]entities.ContentEntry, error)

	// FetchContent returns the decoded bytes of a file entry.
	FetchContent(ctx context.Context, entry entities.ContentEntry) ([]byte, error)
}
