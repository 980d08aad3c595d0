//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/localguide/internal/domain/entities"
)

func TestParseRepositoryURL(t *testing.T) {
	t.Parallel()

	t.Run("should extract owner and name from supported forms", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name  string
			url   string
			owner string
			repo  string
		}{
			{name: "https", url: "https://github.com/octocat/Hello-World", owner: "octocat", repo: "Hello-World"},
			{name: "http with www", url: "http://www.github.com/octocat/Hello-World", owner: "octocat", repo: "Hello-World"},
			{name: "git suffix", url: "https://github.com/octocat/Hello-World.git", owner: "octocat", repo: "Hello-World"},
			{name: "trailing slash", url: "https://github.com/octocat/Hello-World/", owner: "octocat", repo: "Hello-World"},
			{name: "no scheme with trailing slash", url: "github.com/foo/bar/", owner: "foo", repo: "bar"},
			{name: "deep link", url: "https://github.com/foo/bar/tree/main/docs", owner: "foo", repo: "bar"},
			{name: "surrounding whitespace", url: "  https://github.com/foo/bar  ", owner: "foo", repo: "bar"},
			{name: "dotted name", url: "https://github.com/foo/bar.js", owner: "foo", repo: "bar.js"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				// given
				raw := tt.url

				// when
				ref, err := entities.ParseRepositoryURL(raw)

				// then
				require.NoError(t, err)
				assert.Equal(t, tt.owner, ref.Owner)
				assert.Equal(t, tt.repo, ref.Name)
				assert.False(t, ref.IsZero())
			})
		}
	})

	t.Run("should return not found for unrecognized input", func(t *testing.T) {
		t.Parallel()

		tests := []string{
			"not a url",
			"ftp://example.com/foo",
			"https://gitlab.com/foo/bar",
			"https://github.com/foo",
			"",
		}

		for _, raw := range tests {
			t.Run(raw, func(t *testing.T) {
				t.Parallel()

				// when
				ref, err := entities.ParseRepositoryURL(raw)

				// then
				require.ErrorIs(t, err, entities.ErrInvalidRepositoryURL)
				assert.True(t, ref.IsZero())
			})
		}
	})

	t.Run("should format full name", func(t *testing.T) {
		t.Parallel()

		// given
		ref := entities.RepositoryReference{Owner: "octocat", Name: "Hello-World"}

		// when
		fullName := ref.FullName()

		// then
		assert.Equal(t, "octocat/Hello-World", fullName)
	})
}
