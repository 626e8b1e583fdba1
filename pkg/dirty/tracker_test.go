package dirty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scratchpaper/textsync/pkg/dirty"
	"github.com/scratchpaper/textsync/pkg/rangemap"
	"github.com/scratchpaper/textsync/pkg/section"
	"github.com/scratchpaper/textsync/pkg/textrange"
)

// Three sections: (0,3), (5,3), (10,3).
func threeSections(t *testing.T) *rangemap.Map {
	t.Helper()

	m := rangemap.New()
	m.Rebuild(section.Segment("abc\n\ndef\n\nghi"))
	return m
}

func TestComputeDirty_EditedSectionsOnly(t *testing.T) {
	t.Parallel()

	m := threeSections(t)
	tracker := dirty.NewTracker()

	got := tracker.ComputeDirty(m, textrange.New(6, 1), textrange.Range{})
	assert.Equal(t, []int{1}, got)
}

func TestComputeDirty_EditSpanningSeparator(t *testing.T) {
	t.Parallel()

	m := threeSections(t)
	tracker := dirty.NewTracker()

	got := tracker.ComputeDirty(m, textrange.New(2, 4), textrange.Range{})
	assert.Equal(t, []int{0, 1}, got)
}

func TestComputeDirty_ScopedToViewport(t *testing.T) {
	t.Parallel()

	m := threeSections(t)
	tracker := dirty.NewTracker()

	// Edit touches everything, but only section 2 is in view.
	got := tracker.ComputeDirty(m, textrange.New(0, 13), textrange.New(10, 3))
	assert.Equal(t, []int{2}, got)
}

func TestComputeDirty_Convergence(t *testing.T) {
	t.Parallel()

	m := threeSections(t)
	tracker := dirty.NewTracker()

	edited := textrange.New(0, 13)
	visible := textrange.Range{}

	first := tracker.ComputeDirty(m, edited, visible)
	require.Equal(t, []int{0, 1, 2}, first)
	tracker.MarkHighlighted(first)

	second := tracker.ComputeDirty(m, edited, visible)
	assert.Empty(t, second, "applying the result must converge to an empty set")
}

func TestComputeDirty_CleanSectionsSkippedInView(t *testing.T) {
	t.Parallel()

	m := threeSections(t)
	tracker := dirty.NewTracker()

	tracker.MarkHighlighted([]int{0, 1})

	// Scrolling sections 0-2 into view only highlights the unseen one.
	got := tracker.ComputeDirty(m, textrange.New(0, 13), textrange.New(0, 13))
	assert.Equal(t, []int{2}, got)
	assert.True(t, tracker.IsClean(0))
	assert.False(t, tracker.IsClean(2))
}

func TestTracker_Invalidate(t *testing.T) {
	t.Parallel()

	m := threeSections(t)
	tracker := dirty.NewTracker()

	tracker.MarkHighlighted([]int{0, 1, 2})
	tracker.Invalidate([]int{1})

	got := tracker.ComputeDirty(m, textrange.New(0, 13), textrange.Range{})
	assert.Equal(t, []int{1}, got)
}

func TestTracker_InvalidateAll(t *testing.T) {
	t.Parallel()

	m := threeSections(t)
	tracker := dirty.NewTracker()

	tracker.MarkHighlighted([]int{0, 1, 2})
	tracker.InvalidateAll()

	got := tracker.ComputeDirty(m, textrange.New(0, 13), textrange.Range{})
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestTracker_ForceRefreshIgnoresCacheOnce(t *testing.T) {
	t.Parallel()

	m := threeSections(t)
	tracker := dirty.NewTracker()

	tracker.MarkHighlighted([]int{0, 1, 2})
	tracker.ForceRefresh()

	edited := textrange.New(0, 13)

	got := tracker.ComputeDirty(m, edited, textrange.Range{})
	assert.Equal(t, []int{0, 1, 2}, got, "forced pass ignores the cache")

	got = tracker.ComputeDirty(m, edited, textrange.Range{})
	assert.Empty(t, got, "the pass after a forced one caches normally again")
}
