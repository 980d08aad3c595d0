// Package markdown renders generated guides to HTML.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//nolint:gochecknoglobals // goldmark renderers are safe for concurrent use
var renderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// ToHTML converts a markdown document into an HTML fragment. Raw HTML in the
// source is not passed through.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}
