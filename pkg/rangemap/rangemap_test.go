package rangemap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scratchpaper/textsync/pkg/rangemap"
	"github.com/scratchpaper/textsync/pkg/section"
	"github.com/scratchpaper/textsync/pkg/textrange"
)

func buildMap(t *testing.T, text string) (*rangemap.Map, []section.Section) {
	t.Helper()

	sections := section.Segment(text)
	m := rangemap.New()
	m.Rebuild(sections)
	return m, sections
}

func TestMap_RangeForIndex(t *testing.T) {
	t.Parallel()

	m, sections := buildMap(t, "abc\n\ndef\n\nghi")

	for _, s := range sections {
		r, ok := m.RangeForIndex(s.Index)
		require.True(t, ok)
		assert.Equal(t, s.SourceRange, r)
	}

	_, ok := m.RangeForIndex(3)
	assert.False(t, ok)
	_, ok = m.RangeForIndex(-1)
	assert.False(t, ok)
}

func TestMap_IndexForLocation_RoundTrip(t *testing.T) {
	t.Parallel()

	m, sections := buildMap(t, "abc\n\ndef\n\nghi")

	for _, s := range sections {
		idx, ok := m.IndexForLocation(s.SourceRange.Location)
		require.True(t, ok)
		assert.Equal(t, s.Index, idx)
	}
}

func TestMap_IndexForLocation_GapBelongsToPrecedingSection(t *testing.T) {
	t.Parallel()

	// Sections: "abc" at (0,3), "def" at (5,3); separator occupies 3-4.
	m, _ := buildMap(t, "abc\n\ndef")

	tests := []struct {
		name     string
		location int
		expected int
	}{
		{"inside first", 1, 0},
		{"upper bound of first", 3, 0},
		{"inside gap", 4, 0},
		{"start of second", 5, 1},
		{"inside second", 6, 1},
		{"upper bound of second", 8, 1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			idx, ok := m.IndexForLocation(testCase.location)
			require.True(t, ok)
			assert.Equal(t, testCase.expected, idx)
		})
	}
}

func TestMap_IndexForLocation_ExplicitGapTieBreak(t *testing.T) {
	t.Parallel()

	// Adjacent sections A (0,5) and B (7,10) with a 2-rune gap: a caret at
	// location 6 resolves to A, never B.
	m := rangemap.New()
	m.Rebuild(section.Segment("aaaaa\n\nbbb"))

	idx, ok := m.IndexForLocation(6)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestMap_IndexForLocation_TrailingGap(t *testing.T) {
	t.Parallel()

	// "abc\n\n" segments to a single section (0,3); the caret can still sit
	// at locations 4-5 inside the trailing separator.
	m, _ := buildMap(t, "abc\n\n")

	idx, ok := m.IndexForLocation(5)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestMap_IndexForLocation_Misses(t *testing.T) {
	t.Parallel()

	empty := rangemap.New()
	_, ok := empty.IndexForLocation(0)
	assert.False(t, ok)

	m, _ := buildMap(t, "abc")
	_, ok = m.IndexForLocation(-1)
	assert.False(t, ok)
}

func TestMap_IndexForRange(t *testing.T) {
	t.Parallel()

	m, _ := buildMap(t, "abc\n\ndef")

	idx, ok := m.IndexForRange(textrange.New(6, 2))
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestMap_SectionsNearRange(t *testing.T) {
	t.Parallel()

	// Sections: (0,3), (5,3), (10,3).
	m, _ := buildMap(t, "abc\n\ndef\n\nghi")

	tests := []struct {
		name     string
		query    textrange.Range
		expected []int
	}{
		{"inside one section", textrange.New(1, 1), []int{0}},
		{"spanning separator", textrange.New(2, 4), []int{0, 1}},
		{"adjacent to section start", textrange.New(3, 2), []int{0, 1}},
		{"whole buffer", textrange.New(0, 13), []int{0, 1, 2}},
		{"insertion point at section end", textrange.New(3, 0), []int{0}},
		{"insertion point at section start", textrange.New(5, 0), []int{1}},
		{"second separator rune only", textrange.New(4, 1), []int{1}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, m.SectionsNearRange(testCase.query))
		})
	}
}

func TestMap_RebuildReplacesEntries(t *testing.T) {
	t.Parallel()

	m, _ := buildMap(t, "abc\n\ndef")
	require.Equal(t, 2, m.Len())

	m.Rebuild(section.Segment("xyz"))
	assert.Equal(t, 1, m.Len())

	entries := m.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, textrange.New(0, 3), entries[0].SourceRange)
	assert.Equal(t, 0, entries[0].RenderedIndex)
}
