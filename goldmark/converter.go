// Package goldmark renders Markdown reply text as HTML.
package goldmark

import (
	"bytes"
	"strings"

	"github.com/fwojciec/roster"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Ensure Converter implements roster.Converter at compile time.
var _ roster.Converter = (*Converter)(nil)

// Converter wraps goldmark to convert Markdown to HTML.
// Raw HTML in the source is omitted from the output.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter creates a new Converter with GitHub flavored Markdown.
func NewConverter() *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	return &Converter{md: md}
}

// Convert renders markdown as an HTML fragment.
func (c *Converter) Convert(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "", roster.Errorf(roster.EINTERNAL, "render markdown: %v", err)
	}
	return buf.String(), nil
}
