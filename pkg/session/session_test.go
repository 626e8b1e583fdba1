package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scratchpaper/textsync/pkg/placeholder"
	"github.com/scratchpaper/textsync/pkg/session"
	"github.com/scratchpaper/textsync/pkg/textbuf"
	"github.com/scratchpaper/textsync/pkg/textrange"
)

// recordingHighlighter captures the indices handed to a highlight pass.
type recordingHighlighter struct {
	indices []int
}

func (r *recordingHighlighter) Highlight(index int, _ string) error {
	r.indices = append(r.indices, index)
	return nil
}

// The document used throughout: two separators, one placeholder token.
// After parsing, the token collapses to a single unit rune at offset 14.
const sampleDoc = "# Notes\n\nfill <#name#> here\n\nlast"

func newSampleSession(t *testing.T) *session.Session {
	t.Helper()

	s := session.New(session.Options{})
	require.NoError(t, s.OnTextChanged(sampleDoc))
	return s
}

func TestSession_OnTextChanged(t *testing.T) {
	t.Parallel()

	s := newSampleSession(t)

	sections := s.Sections()
	require.Len(t, sections, 3)
	assert.Equal(t, "# Notes", sections[0].Content)
	assert.Equal(t, "fill ￼ here", sections[1].Content)
	assert.Equal(t, textrange.New(9, 11), sections[1].SourceRange)
	assert.Equal(t, "last", sections[2].Content)

	require.Equal(t, 1, s.Placeholders().Count())
	p := s.Placeholders().All()[0]
	assert.Equal(t, "name", p.Label)

	r, ok := s.Placeholders().RangeOf(p)
	require.True(t, ok)
	assert.Equal(t, textrange.New(14, 1), r)
}

func TestSession_Outline(t *testing.T) {
	t.Parallel()

	s := newSampleSession(t)

	entries := s.Outline()
	require.Len(t, entries, 3)

	assert.Equal(t, "# Notes", entries[0].Title)
	assert.Equal(t, textrange.LineRange{First: 0, LastExclusive: 1}, entries[0].LineRange)
	assert.Equal(t, textrange.New(0, 7), entries[0].SelectableRange)

	// Unfilled placeholders show the marker in titles.
	assert.Equal(t, "fill "+session.DefaultPlaceholderMarker+" here", entries[1].Title)
	assert.Equal(t, textrange.LineRange{First: 2, LastExclusive: 3}, entries[1].LineRange)

	assert.Equal(t, "last", entries[2].Title)
	assert.Equal(t, textrange.LineRange{First: 4, LastExclusive: 5}, entries[2].LineRange)
}

func TestSession_LineForLocation(t *testing.T) {
	t.Parallel()

	s := newSampleSession(t)

	line, ok := s.LineForLocation(0)
	require.True(t, ok)
	assert.Equal(t, 0, line)

	// Offset 8 is the blank separator line, offset 9 starts section 1.
	line, ok = s.LineForLocation(8)
	require.True(t, ok)
	assert.Equal(t, 1, line)

	line, ok = s.LineForLocation(9)
	require.True(t, ok)
	assert.Equal(t, 2, line)

	// End of buffer is still resolvable; past it is absence.
	line, ok = s.LineForLocation(s.Buffer().Len())
	require.True(t, ok)
	assert.Equal(t, 4, line)

	_, ok = s.LineForLocation(-1)
	assert.False(t, ok)
	_, ok = s.LineForLocation(s.Buffer().Len() + 1)
	assert.False(t, ok)
}

func TestSession_OutlineTitleTruncation(t *testing.T) {
	t.Parallel()

	s := session.New(session.Options{TitleLimit: 4})
	require.NoError(t, s.OnTextChanged("# Notes"))

	entries := s.Outline()
	require.Len(t, entries, 1)
	assert.Equal(t, "# No…", entries[0].Title)
}

func TestSession_RevealTarget_GapBelongsToPreceding(t *testing.T) {
	t.Parallel()

	s := newSampleSession(t)

	// Caret inside the separator after section 0 resolves to section 0.
	s.OnSelectionChanged(textrange.New(8, 0))
	idx, ok := s.RevealTarget()
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	// Caret at the start of section 1 resolves to section 1.
	s.OnSelectionChanged(textrange.New(9, 0))
	idx, ok = s.RevealTarget()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestSession_RenderPlan_SubstitutesPlaceholders(t *testing.T) {
	t.Parallel()

	s := newSampleSession(t)

	plan := s.RenderPlan()
	require.Len(t, plan, 3)
	assert.Equal(t, "fill "+session.DefaultPlaceholderMarker+" here", plan[1].Content)
}

func TestSession_RenderPlan_PreFilledShowsReplacement(t *testing.T) {
	t.Parallel()

	s := session.New(session.Options{Syntax: placeholder.SyntaxWithLegacy})
	require.NoError(t, s.OnTextChanged("greet <@Alice@>!"))

	plan := s.RenderPlan()
	require.Len(t, plan, 1)
	assert.Equal(t, "greet Alice", plan[0].Content)
}

func TestSession_HighlightPassConverges(t *testing.T) {
	t.Parallel()

	s := newSampleSession(t)

	first := &recordingHighlighter{}
	indices, err := s.HighlightPass(first)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, indices)

	// Nothing changed: the second pass is a no-op.
	second := &recordingHighlighter{}
	indices, err = s.HighlightPass(second)
	require.NoError(t, err)
	assert.Empty(t, indices)
	assert.Empty(t, second.indices)
}

func TestSession_OnEdit_DirtiesTouchedSection(t *testing.T) {
	t.Parallel()

	s := newSampleSession(t)

	_, err := s.HighlightPass(&recordingHighlighter{})
	require.NoError(t, err)

	// Insert inside section 2 ("last" spans [22,26)).
	require.NoError(t, s.OnEdit(textbuf.Edit{Location: 25, Inserted: "x"}))

	indices, err := s.HighlightPass(&recordingHighlighter{})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, indices)
}

func TestSession_OnEdit_StructuralChangeDirtiesAll(t *testing.T) {
	t.Parallel()

	s := newSampleSession(t)

	_, err := s.HighlightPass(&recordingHighlighter{})
	require.NoError(t, err)

	// Appending a separator plus content adds a fourth section.
	require.NoError(t, s.OnEdit(textbuf.Edit{Location: 26, Inserted: "\n\nnew"}))
	require.Len(t, s.Sections(), 4)

	// The cache was cleared; the edited range touches sections 2 and 3.
	assert.Equal(t, []int{2, 3}, s.DirtySections())
}

func TestSession_OnEdit_OutOfBounds(t *testing.T) {
	t.Parallel()

	s := newSampleSession(t)

	err := s.OnEdit(textbuf.Edit{Location: 1000, RemovedLength: 1})
	require.ErrorIs(t, err, textbuf.ErrRangeOutOfBounds)

	// The failed edit left the session unchanged.
	assert.Len(t, s.Sections(), 3)
}

func TestSession_ForceRefresh(t *testing.T) {
	t.Parallel()

	s := newSampleSession(t)

	_, err := s.HighlightPass(&recordingHighlighter{})
	require.NoError(t, err)

	s.ForceRefresh()

	indices, err := s.HighlightPass(&recordingHighlighter{})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, indices)

	// One-shot: the pass after the forced one is clean again.
	indices, err = s.HighlightPass(&recordingHighlighter{})
	require.NoError(t, err)
	assert.Empty(t, indices)
}

func TestSession_ViewportScopesHighlighting(t *testing.T) {
	t.Parallel()

	s := newSampleSession(t)

	// Only section 0 is visible.
	s.OnViewportChanged(textrange.New(0, 5))

	indices, err := s.HighlightPass(&recordingHighlighter{})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, indices)

	// Scrolling reveals the rest; sections 1 and 2 are still dirty.
	s.OnViewportChanged(textrange.New(0, 26))

	indices, err = s.HighlightPass(&recordingHighlighter{})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, indices)
}

func TestSession_RefreshStructureAfterPlaceholderMutation(t *testing.T) {
	t.Parallel()

	s := newSampleSession(t)

	p := s.Placeholders().All()[0]
	require.NoError(t, s.Placeholders().Materialize(p))
	s.RefreshStructure()

	sections := s.Sections()
	require.Len(t, sections, 3)
	assert.Equal(t, "fill name here", sections[1].Content)
	assert.Equal(t, 0, s.Placeholders().Count())
}
