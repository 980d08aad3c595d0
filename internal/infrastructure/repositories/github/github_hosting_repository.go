package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v66/github"

	"github.com/rios0rios0/localguide/internal/domain/entities"
	"github.com/rios0rios0/localguide/internal/domain/repositories"
)

const (
	hostingName = "github"
	rootPath    = ""
)

// GitHubHostingRepository implements repositories.HostingRepository for GitHub.
type GitHubHostingRepository struct {
	client *gh.Client
}

// NewHostingRepository creates a GitHub hosting with the given token.
// An empty token keeps the client anonymous, which has lower rate limits.
func NewHostingRepository(token string) repositories.HostingRepository {
	client := gh.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return NewHostingRepositoryWithClient(client)
}

// NewHostingRepositoryWithClient wraps an already configured client.
func NewHostingRepositoryWithClient(client *gh.Client) *GitHubHostingRepository {
	return &GitHubHostingRepository{client: client}
}

func (it *GitHubHostingRepository) Name() string { return hostingName }

// OpenRepository checks that the repository exists and is readable.
func (it *GitHubHostingRepository) OpenRepository(
	ctx context.Context,
	ref entities.RepositoryReference,
) (repositories.ContentRepository, error) {
	repo, _, err := it.client.Repositories.Get(ctx, ref.Owner, ref.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository %q: %w", ref.FullName(), err)
	}

	return &contentRepository{
		client: it.client,
		owner:  ref.Owner,
		name:   ref.Name,
		branch: repo.GetDefaultBranch(),
	}, nil
}

// contentRepository reads one repository through the contents API.
type contentRepository struct {
	client *gh.Client
	owner  string
	name   string
	branch string
}

func (it *contentRepository) ListRoot(ctx context.Context) ([]entities.ContentEntry, error) {
	return it.listDirectory(ctx, rootPath)
}

func (it *contentRepository) ListChildren(
	ctx context.Context,
	entry entities.ContentEntry,
) ([]entities.ContentEntry, error) {
	if !entry.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", entry.Path)
	}
	return it.listDirectory(ctx, entry.Path)
}

func (it *contentRepository) FetchContent(
	ctx context.Context,
	entry entities.ContentEntry,
) ([]byte, error) {
	fileContent, _, _, err := it.client.Repositories.GetContents(
		ctx, it.owner, it.name, entry.Path, it.contentOptions(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get file %q: %w", entry.Path, err)
	}
	if fileContent == nil {
		return nil, fmt.Errorf("path %q is a directory, not a file", entry.Path)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode file content: %w", err)
	}

	return []byte(content), nil
}

func (it *contentRepository) listDirectory(
	ctx context.Context,
	path string,
) ([]entities.ContentEntry, error) {
	_, dirContent, _, err := it.client.Repositories.GetContents(
		ctx, it.owner, it.name, path, it.contentOptions(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list %q: %w", path, err)
	}

	entries := make([]entities.ContentEntry, 0, len(dirContent))
	for _, item := range dirContent {
		entries = append(entries, entities.ContentEntry{
			Path: item.GetPath(),
			Type: entities.EntryType(item.GetType()),
		})
	}
	return entries, nil
}

func (it *contentRepository) contentOptions() *gh.RepositoryContentGetOptions {
	if it.branch == "" {
		return nil
	}
	return &gh.RepositoryContentGetOptions{Ref: it.branch}
}
