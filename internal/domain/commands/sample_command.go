package commands

import (
	"context"
	"fmt"
	"unicode/utf8"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/localguide/internal/domain/entities"
	"github.com/rios0rios0/localguide/internal/domain/repositories"
)

// Sample is the interface for the content sampling command.
type Sample interface {
	Execute(
		ctx context.Context,
		repo repositories.ContentRepository,
		settings entities.SamplerSettings,
	) (*entities.Sample, error)
}

// SampleCommand walks a repository breadth-first and collects excerpts of the
// files whose extension is allowed.
type SampleCommand struct{}

// NewSampleCommand creates a new SampleCommand.
func NewSampleCommand() *SampleCommand {
	return &SampleCommand{}
}

// Execute returns an error only when the repository root cannot be listed or
// the context is done. Failures below the root are recorded as warnings on
// the sample and the walk continues.
func (it *SampleCommand) Execute(
	ctx context.Context,
	repo repositories.ContentRepository,
	settings entities.SamplerSettings,
) (*entities.Sample, error) {
	sample := &entities.Sample{}

	queue, err := repo.ListRoot(ctx)
	if err != nil {
		return sample, fmt.Errorf("failed to list repository root: %w", err)
	}

	for len(queue) > 0 && sample.Len() < settings.MaxFiles {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return sample, ctxErr
		}

		entry := queue[0]
		queue = queue[1:]

		switch {
		case entry.IsDir():
			children, listErr := repo.ListChildren(ctx, entry)
			if listErr != nil {
				sample.Warnings = append(sample.Warnings,
					fmt.Errorf("failed to list %q: %w", entry.Path, listErr))
				continue
			}
			queue = append(queue, children...)

		case entry.IsFile():
			if !settings.Allows(entry.Path) {
				continue
			}
			file, fetchErr := fetchCandidate(ctx, repo, entry, settings.MaxChars)
			if fetchErr != nil {
				sample.Warnings = append(sample.Warnings, fetchErr)
				continue
			}
			logger.Debugf("Sampled %s", entry.Path)
			sample.Files = append(sample.Files, file)

		default:
			logger.Debugf("Skipping %s entry %s", entry.Type, entry.Path)
		}
	}

	return sample, nil
}

func fetchCandidate(
	ctx context.Context,
	repo repositories.ContentRepository,
	entry entities.ContentEntry,
	maxChars int,
) (entities.CandidateFile, error) {
	data, err := repo.FetchContent(ctx, entry)
	if err != nil {
		return entities.CandidateFile{}, fmt.Errorf("failed to fetch %q: %w", entry.Path, err)
	}
	if !utf8.Valid(data) {
		return entities.CandidateFile{}, fmt.Errorf("skipped %q: %w", entry.Path, entities.ErrBinaryContent)
	}
	return entities.NewCandidateFile(entry.Path, string(data), maxChars), nil
}
