// Package section segments buffer text into paragraph-like sections.
// A section is the atomic granularity for outline entries and for mapping
// source ranges onto rendered-output indices.
package section

import (
	"strings"
	"unicode/utf8"

	"github.com/scratchpaper/textsync/pkg/textrange"
)

// Separator is the literal blank-line delimiter between sections.
const Separator = "\n\n"

// separatorLen is the rune length of Separator.
const separatorLen = 2

// Section is one blank-line-delimited unit of source text.
type Section struct {
	// Index is the zero-based position of the section in the document.
	Index int

	// SourceRange is the rune range of the section content, excluding
	// the separators around it.
	SourceRange textrange.Range

	// LineRange is the half-open range of zero-based line numbers the
	// section content occupies.
	LineRange textrange.LineRange

	// Content is the section's source text.
	Content string
}

// Segment splits text into ordered, contiguous sections.
//
// Consecutive separators produce zero-length sections at the correct
// offset, so empty paragraphs still occupy a navigable outline slot. When
// the text itself ends with a separator, the single trailing synthetic
// empty component is trimmed. Segment is a pure function of text and never
// fails; the empty string yields a single empty section.
func Segment(text string) []Section {
	components := strings.Split(text, Separator)

	// Trim exactly one trailing empty component introduced by a final
	// separator.
	if len(components) > 1 && components[len(components)-1] == "" {
		components = components[:len(components)-1]
	}

	lines := textrange.BuildLineTable(text)

	sections := make([]Section, 0, len(components))
	offset := 0

	for i, content := range components {
		length := utf8.RuneCountInString(content)

		first := lines.LineAt(offset)
		last := first
		if length > 0 {
			last = lines.LineAt(offset + length - 1)
		}

		sections = append(sections, Section{
			Index:       i,
			SourceRange: textrange.New(offset, length),
			LineRange: textrange.LineRange{
				First:         first,
				LastExclusive: last + 1,
			},
			Content: content,
		})

		offset += length + separatorLen
	}

	return sections
}

// CoveredLength returns the total text length reconstructed from sections
// and the separators between them. For any text, CoveredLength(Segment(text))
// equals the rune length of text, except when a trailing separator was
// trimmed, in which case it is shorter by exactly the separator length.
func CoveredLength(sections []Section) int {
	if len(sections) == 0 {
		return 0
	}
	last := sections[len(sections)-1]
	return last.SourceRange.Max()
}
