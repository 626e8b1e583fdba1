// Package highlight renders syntax-highlighted section content with
// chroma. It keeps a per-section cache so a highlight pass only pays for
// the sections the dirty tracker hands it.
package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// LanguageAuto asks the highlighter to detect the language per section.
const LanguageAuto = "auto"

// Options configures a SectionHighlighter.
type Options struct {
	// Language is a chroma lexer name, or LanguageAuto to detect per
	// section content.
	Language string

	// Theme is a chroma style name; unknown names fall back to chroma's
	// default style.
	Theme string

	// Formatter is a chroma formatter name ("terminal256", "html",
	// "noop", ...).
	Formatter string
}

// SectionHighlighter highlights sections one at a time and caches the
// result by section index. It implements the session.Highlighter contract.
type SectionHighlighter struct {
	language  string
	style     *chroma.Style
	formatter chroma.Formatter
	rendered  map[int]string
}

// New creates a highlighter. Unknown theme or formatter names fall back to
// chroma's defaults rather than failing.
func New(opts Options) *SectionHighlighter {
	style := styles.Get(opts.Theme)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get(opts.Formatter)
	if formatter == nil {
		formatter = formatters.Fallback
	}

	return &SectionHighlighter{
		language:  opts.Language,
		style:     style,
		formatter: formatter,
		rendered:  make(map[int]string),
	}
}

// Highlight tokenizes and formats one section's content and caches the
// output under the section index.
func (h *SectionHighlighter) Highlight(index int, content string) error {
	lexer := h.lexerFor(content)

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return fmt.Errorf("tokenise section %d: %w", index, err)
	}

	var sb strings.Builder
	if err := h.formatter.Format(&sb, h.style, iterator); err != nil {
		return fmt.Errorf("format section %d: %w", index, err)
	}

	h.rendered[index] = sb.String()
	return nil
}

// Rendered returns the cached output for a section.
func (h *SectionHighlighter) Rendered(index int) (string, bool) {
	out, ok := h.rendered[index]
	return out, ok
}

// Invalidate drops the cached output for the given sections.
func (h *SectionHighlighter) Invalidate(indices ...int) {
	for _, idx := range indices {
		delete(h.rendered, idx)
	}
}

// Reset drops the whole cache.
func (h *SectionHighlighter) Reset() {
	h.rendered = make(map[int]string)
}

func (h *SectionHighlighter) lexerFor(content string) chroma.Lexer {
	name := h.language
	if name == LanguageAuto {
		name = DetectLanguage(content)
	}

	lexer := lexers.Get(name)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}
