//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/localguide/internal/domain/repositories"
)

// StubGeneratorRepository implements repositories.GeneratorRepository with a
// canned response and records the prompts it receives.
type StubGeneratorRepository struct {
	BackendName string
	Response    string
	GenerateErr error
	Prompts     []string
}

var _ repositories.GeneratorRepository = (*StubGeneratorRepository)(nil)

func (g *StubGeneratorRepository) Name() string { return g.BackendName }

func (g *StubGeneratorRepository) Generate(_ context.Context, prompt string) (string, error) {
	g.Prompts = append(g.Prompts, prompt)
	if g.GenerateErr != nil {
		return "", g.GenerateErr
	}
	return g.Response, nil
}
