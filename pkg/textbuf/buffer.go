// Package textbuf provides the in-memory text buffer the synchronization
// core operates on. The buffer stores runes plus an attachment table: a
// placeholder occupies exactly one rune (U+FFFC) and the buffer is the
// single source of truth for attachment positions, which shift as the
// surrounding text mutates. Higher layers re-derive placeholder ranges by
// scanning this table rather than keeping their own bookkeeping.
package textbuf

import (
	"errors"
	"fmt"
	"sort"

	"github.com/scratchpaper/textsync/pkg/textrange"
)

// AttachmentRune is the object-replacement character an attachment unit
// occupies in the rune storage.
const AttachmentRune = '￼'

// ErrRangeOutOfBounds reports an edit or insertion outside the buffer.
// This is a caller contract violation: the host failed to keep its
// selection or viewport state consistent with the buffer.
var ErrRangeOutOfBounds = errors.New("textbuf: range out of bounds")

// AttachmentID identifies one attachment for the lifetime of the buffer.
type AttachmentID uint64

// Attachment is an atomic single-rune unit embedded in the buffer text.
type Attachment struct {
	id          AttachmentID
	label       string
	replacement string
	position    int
}

// ID returns the attachment's identity.
func (a *Attachment) ID() AttachmentID { return a.id }

// Label returns the display label.
func (a *Attachment) Label() string { return a.label }

// Replacement returns the plain-text content the unit materializes to.
// Empty means the label itself is used.
func (a *Attachment) Replacement() string { return a.replacement }

// Position returns the current rune offset of the unit.
func (a *Attachment) Position() int { return a.position }

// MaterializedText returns the text the unit turns into when materialized.
func (a *Attachment) MaterializedText() string {
	if a.replacement != "" {
		return a.replacement
	}
	return a.label
}

// Range returns the single-rune range the unit occupies.
func (a *Attachment) Range() textrange.Range {
	return textrange.New(a.position, 1)
}

// Buffer is a rune buffer with an attachment table. It is not safe for
// concurrent use; the core model is single-threaded and event-driven.
type Buffer struct {
	runes       []rune
	attachments map[AttachmentID]*Attachment
	nextID      AttachmentID
	version     uint64
}

// New creates a buffer holding the given text and no attachments.
func New(text string) *Buffer {
	return &Buffer{
		runes:       []rune(text),
		attachments: make(map[AttachmentID]*Attachment),
		nextID:      1,
	}
}

// Text returns the buffer content as a string.
func (b *Buffer) Text() string {
	return string(b.runes)
}

// Len returns the buffer length in runes.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// Version increments on every successful mutation.
func (b *Buffer) Version() uint64 {
	return b.version
}

// Slice returns the text of the given range.
func (b *Buffer) Slice(r textrange.Range) (string, error) {
	if r.Location < 0 || r.Length < 0 || r.Max() > len(b.runes) {
		return "", fmt.Errorf("slice %d+%d in buffer of %d: %w",
			r.Location, r.Length, len(b.runes), ErrRangeOutOfBounds)
	}
	return string(b.runes[r.Location:r.Max()]), nil
}

// AttachmentAt returns the attachment whose unit sits exactly at the given
// rune offset. A miss is absence, not an error.
func (b *Buffer) AttachmentAt(position int) (*Attachment, bool) {
	for _, a := range b.attachments {
		if a.position == position {
			return a, true
		}
	}
	return nil, false
}

// Attachment returns the attachment with the given identity.
func (b *Buffer) Attachment(id AttachmentID) (*Attachment, bool) {
	a, ok := b.attachments[id]
	return a, ok
}

// Attachments returns all attachments ordered by position. This scan is
// the ground truth placeholder navigation is derived from.
func (b *Buffer) Attachments() []*Attachment {
	out := make([]*Attachment, 0, len(b.attachments))
	for _, a := range b.attachments {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].position < out[j].position
	})
	return out
}

// InsertAttachment inserts a new single-rune attachment unit at the given
// offset as one atomic edit.
func (b *Buffer) InsertAttachment(position int, label, replacement string) (*Attachment, error) {
	if position < 0 || position > len(b.runes) {
		return nil, fmt.Errorf("insert attachment at %d in buffer of %d: %w",
			position, len(b.runes), ErrRangeOutOfBounds)
	}

	return b.SpliceAttachment(textrange.New(position, 0), label, replacement)
}

// SpliceAttachment replaces the given text range with a new single-rune
// attachment unit as one atomic edit. Parsing uses this to turn a matched
// placeholder token into its unit.
func (b *Buffer) SpliceAttachment(r textrange.Range, label, replacement string) (*Attachment, error) {
	if _, err := b.Apply(Edit{
		Location:      r.Location,
		RemovedLength: r.Length,
		Inserted:      string(AttachmentRune),
	}); err != nil {
		return nil, err
	}

	a := &Attachment{
		id:          b.nextID,
		label:       label,
		replacement: replacement,
		position:    r.Location,
	}
	b.nextID++
	b.attachments[a.id] = a
	return a, nil
}

// DeleteAttachment removes the attachment unit and its rune as one atomic
// edit.
func (b *Buffer) DeleteAttachment(id AttachmentID) (Delta, error) {
	a, ok := b.attachments[id]
	if !ok {
		return Delta{}, fmt.Errorf("delete attachment %d: %w", id, ErrRangeOutOfBounds)
	}
	return b.Apply(Edit{Location: a.position, RemovedLength: 1})
}

// MaterializeAttachment replaces the attachment unit with its plain-text
// content as one atomic edit, permanently removing the attachment.
func (b *Buffer) MaterializeAttachment(id AttachmentID) (Delta, error) {
	a, ok := b.attachments[id]
	if !ok {
		return Delta{}, fmt.Errorf("materialize attachment %d: %w", id, ErrRangeOutOfBounds)
	}
	return b.Apply(Edit{
		Location:      a.position,
		RemovedLength: 1,
		Inserted:      a.MaterializedText(),
	})
}
