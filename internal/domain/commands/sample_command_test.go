//go:build unit

package commands_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/localguide/internal/domain/commands"
	"github.com/rios0rios0/localguide/internal/domain/entities"
	doubles "github.com/rios0rios0/localguide/test/infrastructure/repositorydoubles"
)

func samplePaths(sample *entities.Sample) []string {
	paths := make([]string, 0, sample.Len())
	for _, file := range sample.Files {
		paths = append(paths, file.Path)
	}
	return paths
}

func TestSampleCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should keep allowed files and truncate large ones", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyContentRepository().
			AddFile("", "README.md", []byte(strings.Repeat("r", 500))).
			AddFile("", "main.py", []byte(strings.Repeat("p", 4000))).
			AddFile("", "image.png", []byte{0x89, 'P', 'N', 'G'})
		cmd := commands.NewSampleCommand()

		// when
		sample, err := cmd.Execute(context.Background(), repo, entities.DefaultSamplerSettings())

		// then
		require.NoError(t, err)
		require.Equal(t, 2, sample.Len())
		assert.Equal(t, []string{"README.md", "main.py"}, samplePaths(sample))
		assert.Len(t, sample.Files[0].Excerpt, 500)
		assert.Len(t, sample.Files[1].Excerpt, entities.DefaultMaxChars)
		assert.NotContains(t, repo.FetchedPaths, "image.png")
		assert.NotContains(t, sample.Content(), "image.png")
	})

	t.Run("should walk directories breadth-first", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyContentRepository().
			AddDir("", "docs").
			AddFile("", "README.md", []byte("readme")).
			AddDir("docs", "docs/deep").
			AddFile("docs", "docs/intro.md", []byte("intro")).
			AddFile("docs/deep", "docs/deep/notes.txt", []byte("notes")).
			AddFile("", "setup.py", []byte("setup"))
		cmd := commands.NewSampleCommand()

		// when
		sample, err := cmd.Execute(context.Background(), repo, entities.DefaultSamplerSettings())

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"README.md", "setup.py", "docs/intro.md", "docs/deep/notes.txt"}, samplePaths(sample))
		assert.Equal(t, []string{"", "docs", "docs/deep"}, repo.ListedPaths)
	})

	t.Run("should stop after the file cap", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyContentRepository()
		for i := range 25 {
			repo.AddFile("", fmt.Sprintf("file%02d.md", i), []byte("content"))
		}
		repo.AddDir("", "never")
		cmd := commands.NewSampleCommand()

		// when
		sample, err := cmd.Execute(context.Background(), repo, entities.DefaultSamplerSettings())

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.DefaultMaxFiles, sample.Len())
		assert.Len(t, repo.FetchedPaths, entities.DefaultMaxFiles)
		assert.NotContains(t, repo.ListedPaths, "never")
	})

	t.Run("should return empty sample without error when nothing matches", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyContentRepository().
			AddFile("", "main.go", []byte("package main")).
			AddFile("", "logo.svg", []byte("<svg/>"))
		cmd := commands.NewSampleCommand()

		// when
		sample, err := cmd.Execute(context.Background(), repo, entities.DefaultSamplerSettings())

		// then
		require.NoError(t, err)
		assert.True(t, sample.IsEmpty())
		assert.Empty(t, sample.Content())
	})

	t.Run("should skip non-text files with a warning", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyContentRepository().
			AddFile("", "data.txt", []byte{0xff, 0xfe, 0x00}).
			AddFile("", "README.md", []byte("ok"))
		cmd := commands.NewSampleCommand()

		// when
		sample, err := cmd.Execute(context.Background(), repo, entities.DefaultSamplerSettings())

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"README.md"}, samplePaths(sample))
		require.Len(t, sample.Warnings, 1)
		assert.ErrorIs(t, sample.Warnings[0], entities.ErrBinaryContent)
	})

	t.Run("should keep earlier files and continue when a subtree fails", func(t *testing.T) {
		t.Parallel()

		// given
		listErr := errors.New("403 Forbidden")
		repo := doubles.NewSpyContentRepository().
			AddFile("", "README.md", []byte("readme")).
			AddDir("", "private").
			AddDir("", "public").
			AddFile("public", "public/app.js", []byte("app"))
		repo.ListErrs["private"] = listErr
		cmd := commands.NewSampleCommand()

		// when
		sample, err := cmd.Execute(context.Background(), repo, entities.DefaultSamplerSettings())

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"README.md", "public/app.js"}, samplePaths(sample))
		require.Len(t, sample.Warnings, 1)
		assert.ErrorIs(t, sample.Warnings[0], listErr)
	})

	t.Run("should skip files that fail to fetch", func(t *testing.T) {
		t.Parallel()

		// given
		fetchErr := errors.New("rate limited")
		repo := doubles.NewSpyContentRepository().
			AddFile("", "a.md", []byte("a")).
			AddFile("", "b.md", []byte("b"))
		repo.FetchErrs["a.md"] = fetchErr
		cmd := commands.NewSampleCommand()

		// when
		sample, err := cmd.Execute(context.Background(), repo, entities.DefaultSamplerSettings())

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"b.md"}, samplePaths(sample))
		require.Len(t, sample.Warnings, 1)
		assert.ErrorIs(t, sample.Warnings[0], fetchErr)
	})

	t.Run("should return empty sample and error when the root cannot be listed", func(t *testing.T) {
		t.Parallel()

		// given
		rootErr := errors.New("404 Not Found")
		repo := doubles.NewSpyContentRepository()
		repo.ListErrs[""] = rootErr
		cmd := commands.NewSampleCommand()

		// when
		sample, err := cmd.Execute(context.Background(), repo, entities.DefaultSamplerSettings())

		// then
		require.ErrorIs(t, err, rootErr)
		require.NotNil(t, sample)
		assert.True(t, sample.IsEmpty())
	})

	t.Run("should skip entries that are neither files nor directories", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyContentRepository().AddFile("", "README.md", []byte("ok"))
		repo.Tree[""] = append(repo.Tree[""], entities.ContentEntry{Path: "vendor/lib.md", Type: "submodule"})
		cmd := commands.NewSampleCommand()

		// when
		sample, err := cmd.Execute(context.Background(), repo, entities.DefaultSamplerSettings())

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"README.md"}, samplePaths(sample))
		assert.NotContains(t, repo.FetchedPaths, "vendor/lib.md")
	})

	t.Run("should honor custom limits", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyContentRepository().
			AddFile("", "a.md", []byte("ààààà")).
			AddFile("", "b.md", []byte("bbbbb"))
		settings := entities.SamplerSettings{Extensions: []string{".md"}, MaxFiles: 1, MaxChars: 2}
		cmd := commands.NewSampleCommand()

		// when
		sample, err := cmd.Execute(context.Background(), repo, settings)

		// then
		require.NoError(t, err)
		require.Equal(t, 1, sample.Len())
		assert.Equal(t, 2, utf8.RuneCountInString(sample.Files[0].Excerpt))
	})

	t.Run("should stop when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyContentRepository().AddFile("", "README.md", []byte("ok"))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		cmd := commands.NewSampleCommand()

		// when
		sample, err := cmd.Execute(ctx, repo, entities.DefaultSamplerSettings())

		// then
		require.ErrorIs(t, err, context.Canceled)
		assert.True(t, sample.IsEmpty())
	})
}
