// Package session coordinates the synchronization core for one editor
// document: it owns the buffer, keeps section ranges, the range↔index
// map, the placeholder index and the dirty tracker consistent, and
// exposes the event-style entry points the host editor drives.
//
// Everything here runs synchronously on the caller's goroutine; the model
// is single-threaded and event-driven, like the editor it serves.
package session

import (
	"github.com/scratchpaper/textsync/pkg/dirty"
	"github.com/scratchpaper/textsync/pkg/placeholder"
	"github.com/scratchpaper/textsync/pkg/rangemap"
	"github.com/scratchpaper/textsync/pkg/render"
	"github.com/scratchpaper/textsync/pkg/section"
	"github.com/scratchpaper/textsync/pkg/textbuf"
	"github.com/scratchpaper/textsync/pkg/textrange"
)

// DefaultPlaceholderMarker is shown in rendered output for a placeholder
// with no replacement content.
const DefaultPlaceholderMarker = "□"

// DefaultTitleLimit bounds outline titles, in grapheme clusters.
const DefaultTitleLimit = 60

// Options configures a session.
type Options struct {
	// Syntax selects the placeholder delimiters recognized when parsing.
	Syntax placeholder.Syntax

	// PlaceholderMarker substitutes unfilled placeholders in rendered
	// content. Empty selects DefaultPlaceholderMarker.
	PlaceholderMarker string

	// TitleLimit bounds outline titles in grapheme clusters. Zero
	// selects DefaultTitleLimit.
	TitleLimit int
}

// Highlighter consumes one section's content during a highlight pass.
type Highlighter interface {
	Highlight(index int, content string) error
}

// Session is the synchronization engine for one document.
type Session struct {
	opts Options

	buf          *textbuf.Buffer
	placeholders *placeholder.Index
	sections     []section.Section
	ranges       *rangemap.Map
	tracker      *dirty.Tracker
	lines        *textrange.LineTable

	selection textrange.Range
	viewport  textrange.Range
	lastEdit  textrange.Range
}

// New creates an empty session.
func New(opts Options) *Session {
	if opts.PlaceholderMarker == "" {
		opts.PlaceholderMarker = DefaultPlaceholderMarker
	}
	if opts.TitleLimit <= 0 {
		opts.TitleLimit = DefaultTitleLimit
	}

	s := &Session{
		opts:    opts,
		buf:     textbuf.New(""),
		ranges:  rangemap.New(),
		tracker: dirty.NewTracker(),
	}
	s.placeholders = placeholder.NewIndex(s.buf)
	s.resync()
	return s
}

// OnTextChanged replaces the document wholesale: the buffer is rebuilt,
// placeholder tokens are parsed into units, and every section is dirtied.
func (s *Session) OnTextChanged(fullText string) error {
	s.buf = textbuf.New(fullText)
	s.placeholders = placeholder.NewIndex(s.buf)

	if _, err := placeholder.ParseIntoBuffer(s.buf, s.opts.Syntax); err != nil {
		return err
	}

	s.resync()
	s.tracker.InvalidateAll()
	s.lastEdit = textrange.New(0, s.buf.Len())
	return nil
}

// OnEdit applies one edit delta and recomputes the structures that depend
// on the text. Sections the edit touches are re-dirtied; when the edit
// changes the paragraph structure itself every section is dirtied, since
// indices shift.
func (s *Session) OnEdit(edit textbuf.Edit) error {
	touched := s.ranges.SectionsNearRange(textrange.New(edit.Location, edit.RemovedLength))

	if _, err := s.buf.Apply(edit); err != nil {
		return err
	}

	before := len(s.sections)
	s.resync()

	if len(s.sections) != before {
		s.tracker.InvalidateAll()
	} else {
		s.tracker.Invalidate(touched)
	}

	s.lastEdit = edit.EditedRange()
	return nil
}

// OnSelectionChanged records the host's selection.
func (s *Session) OnSelectionChanged(r textrange.Range) {
	s.selection = r
}

// OnViewportChanged records the visible range used to scope highlight
// passes.
func (s *Session) OnViewportChanged(r textrange.Range) {
	s.viewport = r
}

// Buffer exposes the session's buffer for placeholder mutations and host
// inspection.
func (s *Session) Buffer() *textbuf.Buffer {
	return s.buf
}

// Placeholders exposes the placeholder index.
func (s *Session) Placeholders() *placeholder.Index {
	return s.placeholders
}

// Sections returns the current section list.
func (s *Session) Sections() []section.Section {
	return s.sections
}

// RevealTarget resolves the current selection to the rendered index the
// host should scroll its renderer to.
func (s *Session) RevealTarget() (int, bool) {
	return s.ranges.IndexForRange(s.selection)
}

// SectionForLocation resolves a caret position to a section index, with
// the separator-gap tie-break.
func (s *Session) SectionForLocation(location int) (int, bool) {
	return s.ranges.IndexForLocation(location)
}

// RangeForIndex returns the source range for a rendered index, for
// reveal-on-render.
func (s *Session) RangeForIndex(index int) (textrange.Range, bool) {
	return s.ranges.RangeForIndex(index)
}

// LineForLocation resolves a caret position to its zero-based line number,
// for hosts that sync an outline or gutter against the caret.
func (s *Session) LineForLocation(location int) (int, bool) {
	if location < 0 || location > s.buf.Len() {
		return 0, false
	}
	return s.lines.LineAt(location), true
}

// RenderPlan returns the (index, content) pairs the rendering collaborator
// consumes. Placeholder units are substituted with their replacement
// content, or the configured marker when unfilled.
func (s *Session) RenderPlan() []render.Section {
	plan := make([]render.Section, 0, len(s.sections))
	for _, sec := range s.sections {
		plan = append(plan, render.Section{
			Index:   sec.Index,
			Content: s.substitute(sec.Content, sec.SourceRange.Location),
		})
	}
	return plan
}

// DirtySections returns the sections needing highlighting for the last
// edit, scoped to the current viewport.
func (s *Session) DirtySections() []int {
	return s.tracker.ComputeDirty(s.ranges, s.lastEdit, s.viewport)
}

// HighlightPass runs the dirty set through the highlighter and marks the
// processed sections clean. Returns the indices highlighted.
func (s *Session) HighlightPass(h Highlighter) ([]int, error) {
	indices := s.DirtySections()

	for _, idx := range indices {
		if err := h.Highlight(idx, s.sections[idx].Content); err != nil {
			return nil, err
		}
	}

	s.tracker.MarkHighlighted(indices)
	return indices, nil
}

// RefreshStructure recomputes sections after mutations applied directly
// to the buffer, such as placeholder insertion, deletion, or
// materialization through the index.
func (s *Session) RefreshStructure() {
	s.resync()
	s.tracker.InvalidateAll()
	s.lastEdit = textrange.New(0, s.buf.Len())
}

// ForceRefresh makes the next highlight pass repaint every touched
// section regardless of the cache, for appearance changes.
func (s *Session) ForceRefresh() {
	s.tracker.ForceRefresh()
	s.lastEdit = textrange.New(0, s.buf.Len())
}

// resync recomputes sections, the range map and the line table from the
// buffer text. Re-segmentation is a full pass; it is cheap enough to run
// on every structural edit.
func (s *Session) resync() {
	text := s.buf.Text()
	s.sections = section.Segment(text)
	s.ranges.Rebuild(s.sections)
	s.lines = textrange.BuildLineTable(text)
}

// substitute replaces placeholder unit runes in content with their
// replacement text or the marker. base is the content's offset in the
// buffer.
func (s *Session) substitute(content string, base int) string {
	runes := []rune(content)
	out := make([]rune, 0, len(runes))

	for i, r := range runes {
		if r != textbuf.AttachmentRune {
			out = append(out, r)
			continue
		}

		a, ok := s.buf.AttachmentAt(base + i)
		if !ok {
			out = append(out, r)
			continue
		}

		if a.Replacement() != "" {
			out = append(out, []rune(a.Replacement())...)
		} else {
			out = append(out, []rune(s.opts.PlaceholderMarker)...)
		}
	}
	return string(out)
}
