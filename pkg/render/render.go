// Package render is the stand-in rendering collaborator: it turns
// per-section content into HTML the host's web view can display. The
// actual KaTeX templating runs in the host; inline math spans ($...$) are
// passed through as text for its auto-render pass.
package render

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Section pairs a rendered-output index with the content handed to the
// renderer. Placeholder units have already been substituted by the
// session.
type Section struct {
	Index   int
	Content string
}

// Rendered is one section's HTML output.
type Rendered struct {
	Index int
	HTML  string
}

// HTMLRenderer converts section content to HTML fragments with goldmark.
type HTMLRenderer struct {
	md goldmark.Markdown
}

// NewHTML creates a GFM renderer.
func NewHTML() *HTMLRenderer {
	return &HTMLRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

// Render converts one section's content to an HTML fragment.
func (r *HTMLRenderer) Render(content string) (string, error) {
	var sb strings.Builder
	if err := r.md.Convert([]byte(content), &sb); err != nil {
		return "", fmt.Errorf("render section: %w", err)
	}
	return sb.String(), nil
}

// RenderSections converts a render plan to HTML fragments, one per
// section, preserving section order.
func (r *HTMLRenderer) RenderSections(sections []Section) ([]Rendered, error) {
	out := make([]Rendered, 0, len(sections))
	for _, s := range sections {
		fragment, err := r.Render(s.Content)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", s.Index, err)
		}
		out = append(out, Rendered{Index: s.Index, HTML: fragment})
	}
	return out, nil
}
