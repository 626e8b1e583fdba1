package session

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/scratchpaper/textsync/pkg/textrange"
)

// OutlineEntry is one section's row in the host's outline panel.
type OutlineEntry struct {
	// Title is the section's first line with placeholders substituted,
	// truncated to the configured grapheme limit.
	Title string

	// LineRange is the section's line span in the document.
	LineRange textrange.LineRange

	// SelectableRange is the source range the host selects when the entry
	// is activated. Empty sections keep a zero-length range so the caret
	// can still land on them.
	SelectableRange textrange.Range
}

// Outline builds the outline rows for the current sections.
func (s *Session) Outline() []OutlineEntry {
	entries := make([]OutlineEntry, 0, len(s.sections))
	for _, sec := range s.sections {
		entries = append(entries, OutlineEntry{
			Title:           s.outlineTitle(sec.Content, sec.SourceRange.Location),
			LineRange:       sec.LineRange,
			SelectableRange: sec.SourceRange,
		})
	}
	return entries
}

func (s *Session) outlineTitle(content string, base int) string {
	first := content
	if idx := strings.IndexByte(first, '\n'); idx >= 0 {
		first = first[:idx]
	}

	title := s.substitute(first, base)
	return truncateGraphemes(title, s.opts.TitleLimit)
}

// truncateGraphemes cuts a string after limit grapheme clusters, never
// splitting a cluster, and appends an ellipsis when anything was cut.
func truncateGraphemes(text string, limit int) string {
	if uniseg.GraphemeClusterCount(text) <= limit {
		return text
	}

	var sb strings.Builder
	gr := uniseg.NewGraphemes(text)
	for i := 0; i < limit && gr.Next(); i++ {
		sb.WriteString(gr.Str())
	}
	sb.WriteString("…")
	return sb.String()
}
