package textbuf

import (
	"fmt"
	"unicode/utf8"

	"github.com/scratchpaper/textsync/pkg/textrange"
)

// Edit describes one buffer mutation: RemovedLength runes at Location are
// replaced by Inserted.
type Edit struct {
	Location      int
	RemovedLength int
	Inserted      string
}

// InsertedLength returns the rune length of the inserted text.
func (e Edit) InsertedLength() int {
	return utf8.RuneCountInString(e.Inserted)
}

// Delta returns the net change in buffer length caused by the edit.
func (e Edit) Delta() int {
	return e.InsertedLength() - e.RemovedLength
}

// EditedRange returns the range the edit occupies after application: the
// inserted text, or the collapsed insertion point for a pure deletion.
func (e Edit) EditedRange() textrange.Range {
	return textrange.New(e.Location, e.InsertedLength())
}

// Delta reports the outcome of one applied edit, for hosts that keep a
// command log.
type Delta struct {
	Edit Edit

	// RemovedText is the text the edit removed.
	RemovedText string

	// RemovedAttachments lists attachments whose units fell inside the
	// removed range and were destroyed.
	RemovedAttachments []*Attachment
}

// Apply performs the edit as one atomic mutation, shifting attachment
// positions to follow the text. Attachments whose unit falls inside the
// removed range are destroyed.
func (b *Buffer) Apply(edit Edit) (Delta, error) {
	if edit.Location < 0 || edit.RemovedLength < 0 ||
		edit.Location+edit.RemovedLength > len(b.runes) {
		return Delta{}, fmt.Errorf("edit %d+%d in buffer of %d: %w",
			edit.Location, edit.RemovedLength, len(b.runes), ErrRangeOutOfBounds)
	}

	removedEnd := edit.Location + edit.RemovedLength
	removedText := string(b.runes[edit.Location:removedEnd])
	inserted := []rune(edit.Inserted)

	next := make([]rune, 0, len(b.runes)+len(inserted)-edit.RemovedLength)
	next = append(next, b.runes[:edit.Location]...)
	next = append(next, inserted...)
	next = append(next, b.runes[removedEnd:]...)
	b.runes = next

	delta := Delta{Edit: edit, RemovedText: removedText}
	shift := len(inserted) - edit.RemovedLength

	for id, a := range b.attachments {
		switch {
		case a.position < edit.Location:
			// Before the edit: untouched.
		case a.position < removedEnd:
			delta.RemovedAttachments = append(delta.RemovedAttachments, a)
			delete(b.attachments, id)
		default:
			a.position += shift
		}
	}

	b.version++
	return delta, nil
}
