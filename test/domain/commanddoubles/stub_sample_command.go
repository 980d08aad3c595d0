//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/localguide/internal/domain/commands"
	"github.com/rios0rios0/localguide/internal/domain/entities"
	"github.com/rios0rios0/localguide/internal/domain/repositories"
)

// StubSampleCommand is a stub implementation of commands.Sample.
type StubSampleCommand struct {
	ExecuteCallCount int
	Sample           *entities.Sample
	ExecuteErr       error
	LastSettings     entities.SamplerSettings
}

var _ commands.Sample = (*StubSampleCommand)(nil)

func (s *StubSampleCommand) Execute(
	_ context.Context,
	_ repositories.ContentRepository,
	settings entities.SamplerSettings,
) (*entities.Sample, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	if s.Sample == nil {
		return &entities.Sample{}, s.ExecuteErr
	}
	return s.Sample, s.ExecuteErr
}
