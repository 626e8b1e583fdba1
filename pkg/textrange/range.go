// Package textrange defines the range and line primitives shared by the
// section, placeholder and dirty-tracking layers. All offsets are rune
// offsets into the buffer text.
package textrange

// Range is a half-open span of buffer text: [Location, Location+Length).
type Range struct {
	// Location is the rune offset where the range begins (inclusive).
	Location int

	// Length is the number of runes covered by the range.
	Length int
}

// New constructs a range from a location and length.
func New(location, length int) Range {
	return Range{Location: location, Length: length}
}

// Max returns the exclusive upper bound of the range.
func (r Range) Max() int {
	return r.Location + r.Length
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Length == 0
}

// Contains returns true if the given rune offset lies inside the range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Location && offset < r.Max()
}

// ContainsClosed returns true if the offset lies inside the range or exactly
// at its upper bound. Caret positions sit between runes, so a caret at the
// end of a section still belongs to it.
func (r Range) ContainsClosed(offset int) bool {
	return offset >= r.Location && offset <= r.Max()
}

// Intersects returns true if the two ranges share at least one offset.
// An empty range behaves as a point: it intersects a range that contains
// its location, and another empty range at the same location.
func (r Range) Intersects(other Range) bool {
	if r.IsEmpty() && other.IsEmpty() {
		return r.Location == other.Location
	}
	if r.IsEmpty() {
		return other.Contains(r.Location)
	}
	if other.IsEmpty() {
		return r.Contains(other.Location)
	}
	return r.Location < other.Max() && other.Location < r.Max()
}

// Touches returns true if the ranges intersect or are directly adjacent
// (one begins exactly where the other ends).
func (r Range) Touches(other Range) bool {
	return r.Location <= other.Max() && other.Location <= r.Max()
}

// Intersection returns the overlapping part of two ranges. The boolean is
// false when they do not overlap.
func (r Range) Intersection(other Range) (Range, bool) {
	start := max(r.Location, other.Location)
	end := min(r.Max(), other.Max())
	if start > end {
		return Range{}, false
	}
	return Range{Location: start, Length: end - start}, true
}

// Shift returns the range moved by delta runes.
func (r Range) Shift(delta int) Range {
	return Range{Location: r.Location + delta, Length: r.Length}
}

// LineRange is a half-open span of line numbers: [First, LastExclusive).
// Line numbers are zero-based.
type LineRange struct {
	First         int
	LastExclusive int
}

// Count returns the number of lines in the range.
func (lr LineRange) Count() int {
	return lr.LastExclusive - lr.First
}
