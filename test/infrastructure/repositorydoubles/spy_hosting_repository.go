//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/localguide/internal/domain/entities"
	"github.com/rios0rios0/localguide/internal/domain/repositories"
)

// SpyHostingRepository implements repositories.HostingRepository as a configurable spy.
type SpyHostingRepository struct {
	// --- identity ---
	HostingName string
	Token       string

	// --- OpenRepository ---
	Content repositories.ContentRepository
	OpenErr error
	// spy: references opened
	OpenedRefs []entities.RepositoryReference
}

var _ repositories.HostingRepository = (*SpyHostingRepository)(nil)

func (h *SpyHostingRepository) Name() string { return h.HostingName }

func (h *SpyHostingRepository) OpenRepository(
	_ context.Context,
	ref entities.RepositoryReference,
) (repositories.ContentRepository, error) {
	h.OpenedRefs = append(h.OpenedRefs, ref)
	if h.OpenErr != nil {
		return nil, h.OpenErr
	}
	return h.Content, nil
}
