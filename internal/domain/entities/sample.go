package entities

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultMaxFiles caps the number of files folded into a sample.
	DefaultMaxFiles = 10
	// DefaultMaxChars caps the characters kept from each sampled file.
	DefaultMaxChars = 3000

	blockSeparator = "\n\n"
)

// DefaultExtensions returns the file extensions sampled when none are configured.
func DefaultExtensions() []string {
	return []string{".py", ".js", ".md", ".txt", ".yaml", ".yml"}
}

// SamplerSettings bounds what the content sampler collects.
type SamplerSettings struct {
	Extensions []string `yaml:"extensions"`
	MaxFiles   int      `yaml:"max_files"`
	MaxChars   int      `yaml:"max_chars"`
}

// DefaultSamplerSettings returns the standard allow-list and limits.
func DefaultSamplerSettings() SamplerSettings {
	return SamplerSettings{
		Extensions: DefaultExtensions(),
		MaxFiles:   DefaultMaxFiles,
		MaxChars:   DefaultMaxChars,
	}
}

// Allows reports whether the path ends with one of the allowed extensions,
// compared case-insensitively.
func (s SamplerSettings) Allows(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range s.Extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// CandidateFile is a sampled file with its excerpt already truncated.
type CandidateFile struct {
	Path    string
	Excerpt string
}

// NewCandidateFile keeps at most maxChars characters of content.
func NewCandidateFile(path, content string, maxChars int) CandidateFile {
	return CandidateFile{
		Path:    path,
		Excerpt: TruncateChars(content, maxChars),
	}
}

// Block renders the file as a labeled, fenced excerpt.
func (f CandidateFile) Block() string {
	return "## " + f.Path + "\n```\n" + f.Excerpt + "\n```"
}

// Sample is the ordered set of files collected for one guide request.
// Warnings holds the per-subtree and per-file failures that were skipped.
type Sample struct {
	Files    []CandidateFile
	Warnings []error
}

// Content joins the rendered blocks in discovery order.
func (s *Sample) Content() string {
	blocks := make([]string, 0, len(s.Files))
	for _, file := range s.Files {
		blocks = append(blocks, file.Block())
	}
	return strings.Join(blocks, blockSeparator)
}

func (s *Sample) IsEmpty() bool { return len(s.Files) == 0 }

func (s *Sample) Len() int { return len(s.Files) }

// TruncateChars returns the first n characters (runes) of s.
func TruncateChars(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for pos := range s {
		if count == n {
			return s[:pos]
		}
		count++
	}
	return s
}
