//go:build unit

package server_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/localguide/internal/domain/entities"
	"github.com/rios0rios0/localguide/internal/infrastructure/server"
	"github.com/rios0rios0/localguide/test/domain/commanddoubles"
)

func postForm(t *testing.T, handler http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestServerIndex(t *testing.T) {
	t.Parallel()

	t.Run("should render the form without running the pipeline", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubGenerateCommand{}
		handler := server.NewServer(stub, entities.DefaultSettings()).Handler()
		recorder := httptest.NewRecorder()

		// when
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		// then
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Generate Guide")
		assert.Equal(t, 0, stub.ExecuteCallCount)
	})

	t.Run("should answer health checks", func(t *testing.T) {
		t.Parallel()

		// given
		handler := server.NewServer(&commanddoubles.StubGenerateCommand{}, entities.DefaultSettings()).Handler()
		recorder := httptest.NewRecorder()

		// when
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

		// then
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "ok", recorder.Body.String())
	})
}

func TestServerGuide(t *testing.T) {
	t.Parallel()

	t.Run("should render the generated guide as html", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		stub := &commanddoubles.StubGenerateCommand{Guide: &entities.Guide{
			Reference: entities.RepositoryReference{Owner: "octocat", Name: "Hello-World"},
			URL:       "https://github.com/octocat/Hello-World",
			Content:   "# Setup\n\nRun it.",
		}}
		handler := server.NewServer(stub, settings).Handler()

		// when
		recorder := postForm(t, handler, "/guide", url.Values{"url": {"https://github.com/octocat/Hello-World"}})

		// then
		require.Equal(t, http.StatusOK, recorder.Code)
		body := recorder.Body.String()
		assert.Contains(t, body, "Guide Generated!")
		assert.Contains(t, body, "<h1>Setup</h1>")
		assert.Contains(t, body, "Hello-World_guide.md")
		assert.Equal(t, "https://github.com/octocat/Hello-World", stub.LastOpts.URL)
		assert.Same(t, settings, stub.LastSettings)
	})

	t.Run("should map pipeline errors to messages and statuses", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			name    string
			err     error
			status  int
			message string
		}{
			{"empty url", entities.ErrEmptyRepositoryURL, http.StatusBadRequest, "Please enter a GitHub URL"},
			{
				"invalid url", entities.ErrInvalidRepositoryURL, http.StatusBadRequest,
				"Invalid GitHub URL. Please use format: https://github.com/owner/repo",
			},
			{
				"access failure",
				&entities.RepositoryAccessError{Err: errors.New("404 Not Found")},
				http.StatusUnprocessableEntity,
				"File access issue: 404 Not Found. No processable files found",
			},
			{"empty sample", entities.ErrEmptySample, http.StatusUnprocessableEntity, "No processable files found"},
			{
				"backend failure",
				&entities.GenerationError{Backend: "ollama:mistral", Err: errors.New("connection refused")},
				http.StatusBadGateway,
				"Processing error: ",
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				// given
				stub := &commanddoubles.StubGenerateCommand{ExecuteErr: tc.err}
				handler := server.NewServer(stub, entities.DefaultSettings()).Handler()

				// when
				recorder := postForm(t, handler, "/guide", url.Values{"url": {"whatever"}})

				// then
				assert.Equal(t, tc.status, recorder.Code)
				assert.Contains(t, recorder.Body.String(), tc.message)
				assert.NotContains(t, recorder.Body.String(), "Guide Generated!")
			})
		}
	})
}

func TestServerDownload(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		fileName string
		expected string
	}{
		{"guide file name", "Hello-World_guide.md", "Hello-World_guide.md"},
		{"path traversal", "../../etc/Hello-World_guide.md", "Hello-World_guide.md"},
		{"quotes are stripped", `a"b_guide.md`, "ab_guide.md"},
		{"unexpected name", "passwd", "guide.md"},
		{"bare suffix", "_guide.md", "guide.md"},
	}

	for _, tc := range cases {
		t.Run("should serve the guide as an attachment: "+tc.name, func(t *testing.T) {
			t.Parallel()

			// given
			handler := server.NewServer(&commanddoubles.StubGenerateCommand{}, entities.DefaultSettings()).Handler()
			form := url.Values{"name": {tc.fileName}, "guide": {"# Setup"}}

			// when
			recorder := postForm(t, handler, "/download", form)

			// then
			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, `attachment; filename="`+tc.expected+`"`, recorder.Header().Get("Content-Disposition"))
			assert.Equal(t, "# Setup", recorder.Body.String())
		})
	}
}
