//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/localguide/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	token   string
	model   entities.ModelSettings
	sampler entities.SamplerSettings
}

// NewSettingsBuilder creates a new settings builder with the stock defaults.
func NewSettingsBuilder() *SettingsBuilder {
	defaults := entities.DefaultSettings()
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		model:       defaults.Model,
		sampler:     defaults.Sampler,
	}
}

// WithToken sets the GitHub token.
func (b *SettingsBuilder) WithToken(token string) *SettingsBuilder {
	b.token = token
	return b
}

// WithBackend sets the generation backend name.
func (b *SettingsBuilder) WithBackend(backend string) *SettingsBuilder {
	b.model.Backend = backend
	return b
}

// WithModel sets the model identifier.
func (b *SettingsBuilder) WithModel(name string) *SettingsBuilder {
	b.model.Name = name
	return b
}

// WithMaxFiles sets the sampler file cap.
func (b *SettingsBuilder) WithMaxFiles(maxFiles int) *SettingsBuilder {
	b.sampler.MaxFiles = maxFiles
	return b
}

// WithMaxChars sets the per-file character cap.
func (b *SettingsBuilder) WithMaxChars(maxChars int) *SettingsBuilder {
	b.sampler.MaxChars = maxChars
	return b
}

// WithExtensions replaces the sampler allow-list.
func (b *SettingsBuilder) WithExtensions(extensions ...string) *SettingsBuilder {
	b.sampler.Extensions = extensions
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		GitHubToken: b.token,
		Model:       b.model,
		Sampler: entities.SamplerSettings{
			Extensions: append([]string(nil), b.sampler.Extensions...),
			MaxFiles:   b.sampler.MaxFiles,
			MaxChars:   b.sampler.MaxChars,
		},
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	defaults := entities.DefaultSettings()
	b.token = ""
	b.model = defaults.Model
	b.sampler = defaults.Sampler
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		token:       b.token,
		model:       b.model,
		sampler: entities.SamplerSettings{
			Extensions: append([]string(nil), b.sampler.Extensions...),
			MaxFiles:   b.sampler.MaxFiles,
			MaxChars:   b.sampler.MaxChars,
		},
	}
}
