package files

import (
	"fmt"
	"html"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/localguide/internal/domain/entities"
	"github.com/rios0rios0/localguide/internal/domain/repositories"
	"github.com/rios0rios0/localguide/internal/infrastructure/markdown"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

// GuideFileRepository writes guides as {name}_guide.md into a directory,
// optionally next to a rendered {name}_guide.html.
type GuideFileRepository struct {
	dir      string
	withHTML bool
}

// NewGuideFileRepository creates a writer rooted at dir.
func NewGuideFileRepository(dir string, withHTML bool) repositories.GuideWriterRepository {
	return &GuideFileRepository{dir: dir, withHTML: withHTML}
}

// Write returns the path of the markdown file.
func (it *GuideFileRepository) Write(guide *entities.Guide) (string, error) {
	if err := os.MkdirAll(it.dir, dirMode); err != nil {
		return "", fmt.Errorf("failed to create output directory %q: %w", it.dir, err)
	}

	mdPath := filepath.Join(it.dir, guide.FileName())
	if err := os.WriteFile(mdPath, []byte(guide.Content), fileMode); err != nil {
		return "", fmt.Errorf("writing %s: %w", mdPath, err)
	}
	logger.Infof("Wrote guide to %s", mdPath)

	if !it.withHTML {
		return mdPath, nil
	}

	body, err := markdown.ToHTML(guide.Content)
	if err != nil {
		return "", err
	}
	htmlPath := filepath.Join(it.dir, guide.HTMLFileName())
	page := "<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>" +
		html.EscapeString(guide.Reference.FullName()) + "</title></head><body>\n" + body + "</body></html>\n"
	if err = os.WriteFile(htmlPath, []byte(page), fileMode); err != nil {
		return "", fmt.Errorf("writing %s: %w", htmlPath, err)
	}
	logger.Infof("Wrote rendered guide to %s", htmlPath)

	return mdPath, nil
}
