package repositories

import (
	"context"
	"fmt"
	"sort"

	"github.com/rios0rios0/localguide/internal/domain/entities"
	domainRepos "github.com/rios0rios0/localguide/internal/domain/repositories"
)

// GeneratorFactory builds a text-generation backend from the model settings.
type GeneratorFactory func(
	ctx context.Context,
	settings entities.ModelSettings,
) (domainRepos.GeneratorRepository, error)

// GeneratorRegistry manages all registered text-generation backends.
type GeneratorRegistry struct {
	generators map[string]GeneratorFactory
}

// NewGeneratorRegistry creates an empty generator registry.
func NewGeneratorRegistry() *GeneratorRegistry {
	return &GeneratorRegistry{
		generators: make(map[string]GeneratorFactory),
	}
}

// Register adds a backend factory under the given name (e.g. "ollama").
func (r *GeneratorRegistry) Register(name string, factory GeneratorFactory) {
	r.generators[name] = factory
}

// Get builds the backend named by settings.Backend.
func (r *GeneratorRegistry) Get(
	ctx context.Context,
	settings entities.ModelSettings,
) (domainRepos.GeneratorRepository, error) {
	factory, ok := r.generators[settings.Backend]
	if !ok {
		return nil, fmt.Errorf("unknown generator backend: %q (available: %v)", settings.Backend, r.Names())
	}
	return factory(ctx, settings)
}

// Names returns the sorted list of registered backend names.
func (r *GeneratorRegistry) Names() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
