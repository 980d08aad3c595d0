package repositories

import (
	geminiRepo "github.com/rios0rios0/localguide/internal/infrastructure/repositories/gemini"
	ghRepo "github.com/rios0rios0/localguide/internal/infrastructure/repositories/github"
	ollamaRepo "github.com/rios0rios0/localguide/internal/infrastructure/repositories/ollama"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() *HostingRegistry {
		reg := NewHostingRegistry()
		reg.Register("github", ghRepo.NewHostingRepository)
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() *GeneratorRegistry {
		reg := NewGeneratorRegistry()
		reg.Register("ollama", ollamaRepo.NewGeneratorRepository)
		reg.Register("gemini", geminiRepo.NewGeneratorRepository)
		return reg
	}); err != nil {
		return err
	}

	return nil
}
