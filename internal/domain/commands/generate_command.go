package commands

import (
	"context"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/localguide/internal/domain/entities"
	infraRepos "github.com/rios0rios0/localguide/internal/infrastructure/repositories"
)

const hostingGitHub = "github"

// Generate is the interface for the guide generation command.
type Generate interface {
	Execute(ctx context.Context, settings *entities.Settings, opts GenerateOptions) (*entities.Guide, error)
}

// GenerateOptions holds the input of a single guide request.
type GenerateOptions struct {
	URL string
}

// GenerateCommand runs the whole pipeline for one repository URL:
// resolve -> open repository -> sample files -> generate guide.
type GenerateCommand struct {
	hostingRegistry   *infraRepos.HostingRegistry
	generatorRegistry *infraRepos.GeneratorRegistry
	sampler           Sample
}

// NewGenerateCommand creates a new GenerateCommand.
func NewGenerateCommand(
	hostingRegistry *infraRepos.HostingRegistry,
	generatorRegistry *infraRepos.GeneratorRegistry,
	sampler Sample,
) *GenerateCommand {
	return &GenerateCommand{
		hostingRegistry:   hostingRegistry,
		generatorRegistry: generatorRegistry,
		sampler:           sampler,
	}
}

// Execute returns the generated guide or one of ErrEmptyRepositoryURL,
// ErrInvalidRepositoryURL, *RepositoryAccessError, ErrEmptySample or
// *GenerationError. Nothing is contacted before the URL is resolved.
func (it *GenerateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts GenerateOptions,
) (*entities.Guide, error) {
	repoURL := strings.TrimSpace(opts.URL)
	if repoURL == "" {
		return nil, entities.ErrEmptyRepositoryURL
	}

	ref, err := entities.ParseRepositoryURL(repoURL)
	if err != nil {
		return nil, err
	}
	logger.Infof("Analyzing repository %s", ref.FullName())
	if settings.IsAnonymous() {
		logger.Debug("No GitHub token configured, using anonymous access")
	}

	hosting, err := it.hostingRegistry.Get(hostingGitHub, settings.GitHubToken)
	if err != nil {
		return nil, err
	}

	content, err := hosting.OpenRepository(ctx, ref)
	if err != nil {
		logger.Warnf("File access issue: %v", err)
		return nil, &entities.RepositoryAccessError{Reference: ref, Err: err}
	}

	sample, err := it.sampler.Execute(ctx, content, settings.Sampler)
	if err != nil {
		logger.Warnf("File access issue: %v", err)
		return nil, &entities.RepositoryAccessError{Reference: ref, Err: err}
	}
	for _, warning := range sample.Warnings {
		logger.Warnf("File access issue: %v", warning)
	}
	if sample.IsEmpty() {
		return nil, entities.ErrEmptySample
	}
	logger.Infof("Sampled %d files from %s", sample.Len(), ref.FullName())

	generator, err := it.generatorRegistry.Get(ctx, settings.Model)
	if err != nil {
		return nil, &entities.GenerationError{Backend: settings.Model.Backend, Err: err}
	}

	prompt := entities.NewGuidePrompt(repoURL, sample.Content())
	text, err := generator.Generate(ctx, prompt.String())
	if err != nil {
		return nil, &entities.GenerationError{Backend: generator.Name(), Err: err}
	}

	return &entities.Guide{
		Reference: ref,
		URL:       repoURL,
		Content:   text,
	}, nil
}
