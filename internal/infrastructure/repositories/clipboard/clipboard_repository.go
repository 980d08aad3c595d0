package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/rios0rios0/localguide/internal/domain/entities"
	"github.com/rios0rios0/localguide/internal/domain/repositories"
)

const destination = "clipboard"

// ErrClipboardUnsupported is returned when no clipboard utility is installed.
var ErrClipboardUnsupported = errors.New("no clipboard utility available on this system")

// ClipboardRepository copies guides to the system clipboard.
type ClipboardRepository struct {
	writeAll func(text string) error
}

// NewClipboardRepository creates a writer backed by the OS clipboard.
func NewClipboardRepository() repositories.GuideWriterRepository {
	return &ClipboardRepository{writeAll: clipboard.WriteAll}
}

func (it *ClipboardRepository) Write(guide *entities.Guide) (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnsupported
	}
	if err := it.writeAll(guide.Content); err != nil {
		return "", fmt.Errorf("failed to copy guide to clipboard: %w", err)
	}
	return destination, nil
}
