package repositories

import "context"

// GeneratorRepository abstracts a text-generation backend with a fixed model
// and temperature.
type GeneratorRepository interface {
	// Name returns the backend identifier (e.g. "ollama").
	Name() string

	// Generate submits the prompt and returns the full response text.
	Generate(ctx context.Context, prompt string) (string, error)
}
