package repositories

import (
	"context"

	"github.com/rios0rios0/localguide/internal/domain/entities"
)

// HostingRepository abstracts a source-control hosting service.
type HostingRepository interface {
	// Name returns the hosting identifier (e.g. "github").
	Name() string

	// OpenRepository resolves a reference into a content handle. It fails when
	// the repository does not exist or cannot be accessed with the configured token.
	OpenRepository(ctx context.Context, ref entities.RepositoryReference) (ContentRepository, error)
}
