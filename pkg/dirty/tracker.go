// Package dirty decides which sections need re-highlighting after an
// edit. Each section is conceptually clean or dirty with respect to its
// highlighted presentation: edits dirty the sections they touch, a
// highlight pass moves the processed sections back to clean, and clean
// sections are skipped even when they scroll back into view.
package dirty

import (
	"github.com/scratchpaper/textsync/pkg/rangemap"
	"github.com/scratchpaper/textsync/pkg/textrange"
)

// Tracker maintains the cache of already-highlighted sections.
type Tracker struct {
	highlighted  map[int]struct{}
	forceRefresh bool
}

// NewTracker creates a tracker with an empty highlight cache: every
// section starts dirty.
func NewTracker() *Tracker {
	return &Tracker{highlighted: make(map[int]struct{})}
}

// ComputeDirty returns the section indices needing a highlight pass: the
// sections the edited range touches, narrowed to the ones the visible
// range also touches, minus the already-highlighted cache. A zero-length
// visible range disables viewport scoping (full-document pass).
//
// When a forced refresh is pending the cache is ignored for this one
// call, then normal caching resumes.
func (t *Tracker) ComputeDirty(m *rangemap.Map, edited, visible textrange.Range) []int {
	candidates := m.SectionsNearRange(edited)

	if !visible.IsEmpty() {
		inView := make(map[int]struct{})
		for _, idx := range m.SectionsNearRange(visible) {
			inView[idx] = struct{}{}
		}

		filtered := candidates[:0]
		for _, idx := range candidates {
			if _, ok := inView[idx]; ok {
				filtered = append(filtered, idx)
			}
		}
		candidates = filtered
	}

	ignoreCache := t.forceRefresh
	t.forceRefresh = false

	var out []int
	for _, idx := range candidates {
		if _, done := t.highlighted[idx]; done && !ignoreCache {
			continue
		}
		out = append(out, idx)
	}
	return out
}

// MarkHighlighted records that highlighting was applied to the given
// sections, moving them back to clean.
func (t *Tracker) MarkHighlighted(indices []int) {
	for _, idx := range indices {
		t.highlighted[idx] = struct{}{}
	}
}

// Invalidate re-dirties the given sections.
func (t *Tracker) Invalidate(indices []int) {
	for _, idx := range indices {
		delete(t.highlighted, idx)
	}
}

// InvalidateAll re-dirties every section.
func (t *Tracker) InvalidateAll() {
	t.highlighted = make(map[int]struct{})
}

// ForceRefresh makes the next ComputeDirty ignore the cache once, for
// passes that must repaint regardless (an appearance change, say). The
// cache itself is kept and repopulated by the following MarkHighlighted.
func (t *Tracker) ForceRefresh() {
	t.forceRefresh = true
}

// IsClean reports whether the section's highlighting is current.
func (t *Tracker) IsClean(index int) bool {
	_, ok := t.highlighted[index]
	return ok
}
