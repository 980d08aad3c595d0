package entities

import (
	"regexp"
	"strings"
)

// repositoryURLPatterns are tried in order; the first match wins.
//
//nolint:gochecknoglobals // compiled once
var repositoryURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https?://(?:www\.)?github\.com/([^/]+)/([^/]+?)(?:\.git)?$`),
	regexp.MustCompile(`github\.com/([^/]+)/([^/]+?)(?:\.git)?(?:/|$)`),
}

// RepositoryReference identifies a repository hosted on GitHub.
type RepositoryReference struct {
	Owner string
	Name  string
}

// FullName returns the "owner/name" form used by the hosting API.
func (r RepositoryReference) FullName() string {
	return r.Owner + "/" + r.Name
}

// IsZero reports whether the reference is the "not found" value.
func (r RepositoryReference) IsZero() bool {
	return r.Owner == "" || r.Name == ""
}

// ParseRepositoryURL extracts the owner and repository name from a GitHub URL.
// Accepted forms include:
//   - https://github.com/owner/name
//   - http://www.github.com/owner/name.git
//   - github.com/owner/name/
//   - https://github.com/owner/name/tree/main/docs
//
// Any other input yields ErrInvalidRepositoryURL and the zero reference.
func ParseRepositoryURL(raw string) (RepositoryReference, error) {
	cleaned := strings.TrimSuffix(strings.TrimSpace(raw), "/")

	for _, pattern := range repositoryURLPatterns {
		match := pattern.FindStringSubmatch(cleaned)
		if match == nil {
			continue
		}
		ref := RepositoryReference{Owner: match[1], Name: match[2]}
		if ref.IsZero() {
			continue
		}
		return ref, nil
	}

	return RepositoryReference{}, ErrInvalidRepositoryURL
}
