//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/localguide/internal/domain/entities"
	"github.com/rios0rios0/localguide/internal/domain/repositories"
)

// SpyContentRepository implements repositories.ContentRepository over an
// in-memory tree.
type SpyContentRepository struct {
	// --- listings ---
	Tree     map[string][]entities.ContentEntry // dir path ("" for root) -> entries
	ListErrs map[string]error                   // dir path -> error
	// spy: directories listed, in order
	ListedPaths []string

	// --- FetchContent ---
	Files     map[string][]byte // file path -> content
	FetchErrs map[string]error  // file path -> error
	// spy: files fetched, in order
	FetchedPaths []string
}

var _ repositories.ContentRepository = (*SpyContentRepository)(nil)

// NewSpyContentRepository creates an empty tree.
func NewSpyContentRepository() *SpyContentRepository {
	return &SpyContentRepository{
		Tree:      make(map[string][]entities.ContentEntry),
		ListErrs:  make(map[string]error),
		Files:     make(map[string][]byte),
		FetchErrs: make(map[string]error),
	}
}

// AddFile registers a file under dir ("" for the root).
func (r *SpyContentRepository) AddFile(dir, path string, content []byte) *SpyContentRepository {
	r.Tree[dir] = append(r.Tree[dir], entities.ContentEntry{Path: path, Type: entities.EntryFile})
	r.Files[path] = content
	return r
}

// AddDir registers an empty directory under parent ("" for the root).
func (r *SpyContentRepository) AddDir(parent, path string) *SpyContentRepository {
	r.Tree[parent] = append(r.Tree[parent], entities.ContentEntry{Path: path, Type: entities.EntryDir})
	if _, ok := r.Tree[path]; !ok {
		r.Tree[path] = []entities.ContentEntry{}
	}
	return r
}

func (r *SpyContentRepository) ListRoot(ctx context.Context) ([]entities.ContentEntry, error) {
	return r.list(ctx, "")
}

func (r *SpyContentRepository) ListChildren(
	ctx context.Context,
	entry entities.ContentEntry,
) ([]entities.ContentEntry, error) {
	return r.list(ctx, entry.Path)
}

func (r *SpyContentRepository) FetchContent(
	_ context.Context,
	entry entities.ContentEntry,
) ([]byte, error) {
	r.FetchedPaths = append(r.FetchedPaths, entry.Path)
	if err, ok := r.FetchErrs[entry.Path]; ok {
		return nil, err
	}
	content, ok := r.Files[entry.Path]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", entry.Path)
	}
	return content, nil
}

func (r *SpyContentRepository) list(_ context.Context, path string) ([]entities.ContentEntry, error) {
	r.ListedPaths = append(r.ListedPaths, path)
	if err, ok := r.ListErrs[path]; ok {
		return nil, err
	}
	entries, ok := r.Tree[path]
	if !ok {
		return nil, fmt.Errorf("directory not found: %q", path)
	}
	return append([]entities.ContentEntry(nil), entries...), nil
}
