// Package server exposes the guide pipeline as a single HTML page.
package server

import (
	"errors"
	"html/template"
	"net/http"
	"path"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/localguide/internal/domain/commands"
	"github.com/rios0rios0/localguide/internal/domain/entities"
	"github.com/rios0rios0/localguide/internal/infrastructure/markdown"
)

const (
	defaultFileName = "guide.md"
	guideSuffix     = "_guide.md"
	maxFormBytes    = 1 << 20
)

// Server is the HTTP transport for the guide pipeline.
type Server struct {
	command  commands.Generate
	settings *entities.Settings
}

// NewServer creates a server that runs every request with the same settings.
func NewServer(command commands.Generate, settings *entities.Settings) *Server {
	return &Server{command: command, settings: settings}
}

func (it *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /{$}", it.handleIndex)
	mux.HandleFunc("POST /guide", it.handleGuide)
	mux.HandleFunc("POST /download", it.handleDownload)
	return mux
}

func (it *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	it.render(w, http.StatusOK, pageData{})
}

func (it *Server) handleGuide(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		it.render(w, http.StatusBadRequest, pageData{Error: "Invalid form submission", ErrorClass: "error"})
		return
	}

	repoURL := r.PostFormValue("url")
	data := pageData{URL: repoURL}

	guide, err := it.command.Execute(r.Context(), it.settings, commands.GenerateOptions{URL: repoURL})
	if err != nil {
		logger.Errorf("Guide generation failed: %v", err)
		data.Error = entities.UserMessage(err)
		data.ErrorClass = errorClass(err)
		it.render(w, statusFor(err), data)
		return
	}

	rendered, err := markdown.ToHTML(guide.Content)
	if err != nil {
		logger.Warnf("Falling back to plain text: %v", err)
		rendered = "<pre>" + template.HTMLEscapeString(guide.Content) + "</pre>"
	}

	data.Guide = guide.Content
	data.GuideHTML = template.HTML(rendered) //nolint:gosec // goldmark escapes raw HTML by default
	data.FileName = guide.FileName()
	it.render(w, http.StatusOK, data)
}

func (it *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+downloadName(r.PostFormValue("name"))+`"`)
	_, _ = w.Write([]byte(r.PostFormValue("guide")))
}

func (it *Server) render(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		logger.Errorf("Failed to render page: %v", err)
	}
}

// downloadName keeps only a safe base name ending in _guide.md.
func downloadName(raw string) string {
	name := path.Base(strings.ReplaceAll(raw, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		if r == '"' || r < ' ' {
			return -1
		}
		return r
	}, name)
	if !strings.HasSuffix(name, guideSuffix) || name == guideSuffix {
		return defaultFileName
	}
	return name
}

func errorClass(err error) string {
	if errors.Is(err, entities.ErrEmptyRepositoryURL) {
		return "warning"
	}
	return "error"
}

func statusFor(err error) int {
	var accessErr *entities.RepositoryAccessError

	switch {
	case errors.Is(err, entities.ErrEmptyRepositoryURL),
		errors.Is(err, entities.ErrInvalidRepositoryURL):
		return http.StatusBadRequest
	case errors.As(err, &accessErr), errors.Is(err, entities.ErrEmptySample):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
