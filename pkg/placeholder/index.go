package placeholder

import (
	"github.com/scratchpaper/textsync/pkg/textbuf"
	"github.com/scratchpaper/textsync/pkg/textrange"
)

// Placeholder is a non-owning handle to one placeholder unit, resolved
// through the buffer on every use. Its range is never cached here.
type Placeholder struct {
	ID          textbuf.AttachmentID
	Label       string
	Replacement string
}

// Index answers positional and navigation queries over the placeholders
// currently embedded in a buffer. All range answers come from a live scan
// of the buffer's attachment table, so the index can never diverge from
// the text. Misses are absence, not errors.
type Index struct {
	buf      *textbuf.Buffer
	selected textbuf.AttachmentID
}

// NewIndex creates an index over the given buffer.
func NewIndex(buf *textbuf.Buffer) *Index {
	return &Index{buf: buf}
}

func fromAttachment(a *textbuf.Attachment) Placeholder {
	return Placeholder{ID: a.ID(), Label: a.Label(), Replacement: a.Replacement()}
}

// Count returns the number of placeholders in the buffer.
func (ix *Index) Count() int {
	return len(ix.buf.Attachments())
}

// All returns the placeholders in document order.
func (ix *Index) All() []Placeholder {
	attachments := ix.buf.Attachments()
	out := make([]Placeholder, 0, len(attachments))
	for _, a := range attachments {
		out = append(out, fromAttachment(a))
	}
	return out
}

// At returns the placeholder whose unit sits exactly at the given rune
// offset. The unit occupies exactly one rune, so only its own position is
// a hit.
func (ix *Index) At(location int) (Placeholder, bool) {
	a, ok := ix.buf.AttachmentAt(location)
	if !ok {
		return Placeholder{}, false
	}
	return fromAttachment(a), true
}

// RangeOf returns the current single-rune range of the placeholder, or
// absence when the unit no longer exists in the buffer.
func (ix *Index) RangeOf(p Placeholder) (textrange.Range, bool) {
	a, ok := ix.buf.Attachment(p.ID)
	if !ok {
		return textrange.Range{}, false
	}
	return a.Range(), true
}

// NearestFrom searches forward for the first placeholder at or after
// location-lookahead. When none is found and loop is set, the search wraps
// to the buffer start and runs up to the original start point.
func (ix *Index) NearestFrom(location, lookahead int, loop bool) (Placeholder, bool) {
	start := location - lookahead
	attachments := ix.buf.Attachments()

	for _, a := range attachments {
		if a.Position() >= start {
			return fromAttachment(a), true
		}
	}

	// Wrap: retry from the buffer start, up to the original start point.
	if loop && len(attachments) > 0 && attachments[0].Position() < start {
		return fromAttachment(attachments[0]), true
	}

	return Placeholder{}, false
}

// Next returns the placeholder following the given one in document order.
// With loop set, it wraps to the first placeholder overall; it never
// returns the given placeholder itself, so a lone placeholder has no next.
func (ix *Index) Next(after Placeholder, loop bool) (Placeholder, bool) {
	attachments := ix.buf.Attachments()
	if len(attachments) < 2 {
		return Placeholder{}, false
	}

	current, ok := ix.buf.Attachment(after.ID)
	if !ok {
		return Placeholder{}, false
	}

	for _, a := range attachments {
		if a.Position() > current.Position() {
			return fromAttachment(a), true
		}
	}

	if loop {
		return fromAttachment(attachments[0]), true
	}
	return Placeholder{}, false
}

// Prev returns the placeholder preceding the given one in document order,
// wrapping to the last overall when loop is set.
func (ix *Index) Prev(before Placeholder, loop bool) (Placeholder, bool) {
	attachments := ix.buf.Attachments()
	if len(attachments) < 2 {
		return Placeholder{}, false
	}

	current, ok := ix.buf.Attachment(before.ID)
	if !ok {
		return Placeholder{}, false
	}

	for i := len(attachments) - 1; i >= 0; i-- {
		if attachments[i].Position() < current.Position() {
			return fromAttachment(attachments[i]), true
		}
	}

	if loop {
		return fromAttachment(attachments[len(attachments)-1]), true
	}
	return Placeholder{}, false
}

// Insert creates a new placeholder unit at the given offset as one atomic
// buffer edit.
func (ix *Index) Insert(location int, label, replacement string) (Placeholder, error) {
	a, err := ix.buf.InsertAttachment(location, label, replacement)
	if err != nil {
		return Placeholder{}, err
	}
	return fromAttachment(a), nil
}

// Delete removes the placeholder unit from the buffer. The selection is
// cleared first when it refers to the removed unit, so no dangling
// selection reference survives the edit.
func (ix *Index) Delete(p Placeholder) error {
	if ix.selected == p.ID {
		ix.selected = 0
	}
	_, err := ix.buf.DeleteAttachment(p.ID)
	return err
}

// Materialize replaces the placeholder unit with its plain-text content,
// permanently removing the placeholder. Clears the selection the same way
// Delete does.
func (ix *Index) Materialize(p Placeholder) error {
	if ix.selected == p.ID {
		ix.selected = 0
	}
	_, err := ix.buf.MaterializeAttachment(p.ID)
	return err
}

// Select marks the placeholder as selected, replacing any previous
// selection. At most one placeholder is selected at a time. Returns false
// when the unit no longer exists.
func (ix *Index) Select(p Placeholder) bool {
	if _, ok := ix.buf.Attachment(p.ID); !ok {
		return false
	}
	ix.selected = p.ID
	return true
}

// ClearSelection drops the current selection, if any.
func (ix *Index) ClearSelection() {
	ix.selected = 0
}

// Selected returns the currently selected placeholder. A selection whose
// unit has since been removed by a buffer edit reads as no selection.
func (ix *Index) Selected() (Placeholder, bool) {
	if ix.selected == 0 {
		return Placeholder{}, false
	}
	a, ok := ix.buf.Attachment(ix.selected)
	if !ok {
		ix.selected = 0
		return Placeholder{}, false
	}
	return fromAttachment(a), true
}

// HasSelection reports whether a live placeholder is selected.
func (ix *Index) HasSelection() bool {
	_, ok := ix.Selected()
	return ok
}
