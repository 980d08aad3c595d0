package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"

	"github.com/rios0rios0/localguide/internal/domain/entities"
	"github.com/rios0rios0/localguide/internal/domain/repositories"
)

const backendName = "ollama"

// OllamaGeneratorRepository implements repositories.GeneratorRepository on a
// local Ollama server.
type OllamaGeneratorRepository struct {
	client      *api.Client
	model       string
	temperature float64
}

// NewGeneratorRepository connects to settings.Host, or to OLLAMA_HOST when no
// host is configured.
func NewGeneratorRepository(
	_ context.Context,
	settings entities.ModelSettings,
) (repositories.GeneratorRepository, error) {
	client, err := newClient(settings.Host)
	if err != nil {
		return nil, err
	}
	return &OllamaGeneratorRepository{
		client:      client,
		model:       settings.Name,
		temperature: settings.Temperature,
	}, nil
}

func newClient(host string) (*api.Client, error) {
	if host == "" {
		client, err := api.ClientFromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return client, nil
	}

	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}
	return api.NewClient(base, http.DefaultClient), nil
}

func (it *OllamaGeneratorRepository) Name() string { return backendName + ":" + it.model }

// Generate runs a single non-streaming completion.
func (it *OllamaGeneratorRepository) Generate(ctx context.Context, prompt string) (string, error) {
	stream := false
	request := &api.GenerateRequest{
		Model:  it.model,
		Prompt: prompt,
		Stream: &stream,
		Options: map[string]any{
			"temperature": it.temperature,
		},
	}

	var builder strings.Builder
	err := it.client.Generate(ctx, request, func(response api.GenerateResponse) error {
		builder.WriteString(response.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama generate with model %q: %w", it.model, err)
	}

	return builder.String(), nil
}
