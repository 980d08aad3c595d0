package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/rios0rios0/localguide/internal/domain/entities"
	"github.com/rios0rios0/localguide/internal/domain/repositories"
)

const backendName = "gemini"

// ErrEmptyResponse is returned when the model produced no text.
var ErrEmptyResponse = errors.New("gemini: empty response from model")

// GeminiGeneratorRepository implements repositories.GeneratorRepository on the
// Gemini API.
type GeminiGeneratorRepository struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGeneratorRepository creates the client. An empty APIKey falls back to the
// GOOGLE_API_KEY / GEMINI_API_KEY environment variables read by genai.
// settings.Host overrides the API base URL.
func NewGeneratorRepository(
	ctx context.Context,
	settings entities.ModelSettings,
) (repositories.GeneratorRepository, error) {
	config := &genai.ClientConfig{
		APIKey:  settings.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if settings.Host != "" {
		config.HTTPOptions = genai.HTTPOptions{BaseURL: settings.Host}
	}

	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiGeneratorRepository{
		client:      client,
		model:       settings.Name,
		temperature: float32(settings.Temperature),
	}, nil
}

func (it *GeminiGeneratorRepository) Name() string { return backendName + ":" + it.model }

func (it *GeminiGeneratorRepository) Generate(ctx context.Context, prompt string) (string, error) {
	temperature := it.temperature
	resp, err := it.client.Models.GenerateContent(ctx, it.model,
		[]*genai.Content{{Role: "user", Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{Temperature: &temperature},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate with model %q: %w", it.model, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		builder.WriteString(part.Text)
	}
	if builder.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return builder.String(), nil
}
