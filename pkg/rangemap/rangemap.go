// Package rangemap maintains the bidirectional mapping between section
// source ranges and rendered-output indices. The host uses it to resolve a
// caret position to an outline entry (click-to-reveal) and a rendered index
// back to a source range (reveal-on-render).
package rangemap

import (
	"github.com/scratchpaper/textsync/pkg/ordered"
	"github.com/scratchpaper/textsync/pkg/section"
	"github.com/scratchpaper/textsync/pkg/textrange"
)

// Entry associates one section's source range with its rendered index.
type Entry struct {
	SourceRange   textrange.Range
	RenderedIndex int
}

// Map is the range↔index table. It is rebuilt wholesale whenever the
// segmenter reruns; entries are kept in section order.
type Map struct {
	entries *ordered.Map[textrange.Range, Entry]
}

// New creates an empty map.
func New() *Map {
	return &Map{entries: ordered.NewMap[textrange.Range, Entry]()}
}

// Rebuild replaces the table with one entry per section, in section order.
// Rendered indices equal section indices after a full rebuild.
func (m *Map) Rebuild(sections []section.Section) {
	m.entries.Clear()
	for _, s := range sections {
		m.entries.Set(s.SourceRange, Entry{
			SourceRange:   s.SourceRange,
			RenderedIndex: s.Index,
		})
	}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return m.entries.Len()
}

// RangeForIndex returns the source range of the section with the given
// rendered index.
func (m *Map) RangeForIndex(index int) (textrange.Range, bool) {
	key, _, ok := m.entries.At(index)
	if !ok {
		return textrange.Range{}, false
	}
	return key, true
}

// IndexForLocation resolves a caret position to the nearest enclosing or
// preceding section index.
//
// Scanning in section order: a location strictly inside a section's range
// or exactly at its upper bound matches that section; a location past the
// current section's upper bound moves the scan on; a location before the
// current section's lower bound means the caret sits in the separator gap,
// which belongs to the *preceding* section. This tie-break governs which
// outline entry is highlighted while the caret sits in inter-paragraph
// whitespace and must not change.
func (m *Map) IndexForLocation(location int) (int, bool) {
	if location < 0 {
		return 0, false
	}

	found := -1
	position := 0
	exhausted := true
	m.entries.Each(func(key textrange.Range, _ Entry) bool {
		switch {
		case key.ContainsClosed(location):
			found = position
			exhausted = false
			return false
		case location < key.Location:
			// Overshot: the location lies in the gap before this
			// section, so the previous section wins.
			found = position - 1
			exhausted = false
			return false
		default:
			position++
			return true
		}
	})

	// Past the last section: a trailing gap belongs to the last section,
	// consistent with the inter-section tie-break.
	if exhausted && m.entries.Len() > 0 {
		return m.entries.Len() - 1, true
	}

	if found < 0 {
		return 0, false
	}
	return found, true
}

// IndexForRange resolves a selection range to a section index using the
// range's location, with the same gap tie-break as IndexForLocation.
func (m *Map) IndexForRange(r textrange.Range) (int, bool) {
	return m.IndexForLocation(r.Location)
}

// SectionsNearRange returns the indices of every section whose source
// range intersects or is directly adjacent to the query range, in section
// order. Edits at a section boundary must dirty the section on both sides.
func (m *Map) SectionsNearRange(r textrange.Range) []int {
	var out []int
	position := 0
	m.entries.Each(func(key textrange.Range, _ Entry) bool {
		if key.Touches(r) {
			out = append(out, position)
		} else if key.Location > r.Max() {
			return false
		}
		position++
		return true
	})
	return out
}

// Entries returns the entries in section order.
func (m *Map) Entries() []Entry {
	out := make([]Entry, 0, m.entries.Len())
	m.entries.Each(func(_ textrange.Range, e Entry) bool {
		out = append(out, e)
		return true
	})
	return out
}
