package entities

import (
	"errors"
	"fmt"
)

const urlFormatHint = "https://github.com/owner/repo"

var (
	// ErrEmptyRepositoryURL is returned when no URL was supplied.
	ErrEmptyRepositoryURL = errors.New("repository URL is empty")
	// ErrInvalidRepositoryURL is returned when no owner/name could be extracted.
	ErrInvalidRepositoryURL = errors.New("invalid GitHub repository URL")
	// ErrEmptySample is returned when no file matched the allow-list or decoded as text.
	ErrEmptySample = errors.New("no processable files found")
	// ErrBinaryContent marks a sampled file whose content is not UTF-8 text.
	ErrBinaryContent = errors.New("content is not valid UTF-8 text")
)

// RepositoryAccessError wraps a hosting failure (not found, forbidden, rate limited).
type RepositoryAccessError struct {
	Reference RepositoryReference
	Err       error
}

func (e *RepositoryAccessError) Error() string {
	return fmt.Sprintf("failed to access repository %q: %v", e.Reference.FullName(), e.Err)
}

func (e *RepositoryAccessError) Unwrap() error { return e.Err }

// GenerationError wraps a failure of the text-generation backend.
type GenerationError struct {
	Backend string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("guide generation with %s failed: %v", e.Backend, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// UserMessage converts a pipeline error into the message shown to the user.
func UserMessage(err error) string {
	var accessErr *RepositoryAccessError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyRepositoryURL):
		return "Please enter a GitHub URL"
	case errors.Is(err, ErrInvalidRepositoryURL):
		return "Invalid GitHub URL. Please use format: " + urlFormatHint
	case errors.As(err, &accessErr):
		return fmt.Sprintf("File access issue: %v. No processable files found", accessErr.Err)
	case errors.Is(err, ErrEmptySample):
		return "No processable files found"
	default:
		return "Processing error: " + err.Error()
	}
}
