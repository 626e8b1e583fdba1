package textrange

import "sort"

// LineInfo describes one line of buffer text in rune offsets.
type LineInfo struct {
	// StartOffset is the rune offset of the first rune of the line.
	StartOffset int

	// EndOffset is the rune offset one past the line's newline, or the
	// buffer length for the final line.
	EndOffset int
}

// LineTable maps between rune offsets and zero-based line numbers for a
// fixed text snapshot. Rebuild it whenever the text changes.
type LineTable struct {
	lines []LineInfo
}

// BuildLineTable constructs line metadata from text.
func BuildLineTable(text string) *LineTable {
	runes := []rune(text)

	var lines []LineInfo
	lineStart := 0

	for idx, r := range runes {
		if r == '\n' {
			lines = append(lines, LineInfo{
				StartOffset: lineStart,
				EndOffset:   idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Final line, which may be empty and has no trailing newline.
	lines = append(lines, LineInfo{
		StartOffset: lineStart,
		EndOffset:   len(runes),
	})

	return &LineTable{lines: lines}
}

// LineCount returns the number of lines in the snapshot.
func (t *LineTable) LineCount() int {
	return len(t.lines)
}

// LineAt returns the zero-based line number containing the given rune
// offset. Offsets at or past the end of text map to the last line.
// Returns -1 for negative offsets.
func (t *LineTable) LineAt(offset int) int {
	if offset < 0 || len(t.lines) == 0 {
		return -1
	}

	idx := sort.Search(len(t.lines), func(i int) bool {
		return t.lines[i].EndOffset > offset
	})
	if idx >= len(t.lines) {
		return len(t.lines) - 1
	}
	return idx
}

// Line returns the metadata for a zero-based line number.
func (t *LineTable) Line(n int) (LineInfo, bool) {
	if n < 0 || n >= len(t.lines) {
		return LineInfo{}, false
	}
	return t.lines[n], true
}
