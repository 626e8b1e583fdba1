package textbuf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scratchpaper/textsync/pkg/textbuf"
	"github.com/scratchpaper/textsync/pkg/textrange"
)

func TestEdit_Derived(t *testing.T) {
	t.Parallel()

	e := textbuf.Edit{Location: 3, RemovedLength: 2, Inserted: "héllo"}

	assert.Equal(t, 5, e.InsertedLength())
	assert.Equal(t, 3, e.Delta())
	assert.Equal(t, textrange.New(3, 5), e.EditedRange())
}

func TestApply_InsertAndDelete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		initial  string
		edit     textbuf.Edit
		expected string
		removed  string
	}{
		{"insert at start", "bc", textbuf.Edit{Location: 0, Inserted: "a"}, "abc", ""},
		{"insert at end", "ab", textbuf.Edit{Location: 2, Inserted: "c"}, "abc", ""},
		{"delete middle", "abc", textbuf.Edit{Location: 1, RemovedLength: 1}, "ac", "b"},
		{"replace", "abc", textbuf.Edit{Location: 0, RemovedLength: 3, Inserted: "xyz"}, "xyz", "abc"},
		{"noop", "abc", textbuf.Edit{Location: 1}, "abc", ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			b := textbuf.New(testCase.initial)
			delta, err := b.Apply(testCase.edit)
			require.NoError(t, err)

			assert.Equal(t, testCase.expected, b.Text())
			assert.Equal(t, testCase.removed, delta.RemovedText)
		})
	}
}

func TestApply_OutOfBounds(t *testing.T) {
	t.Parallel()

	b := textbuf.New("abc")

	_, err := b.Apply(textbuf.Edit{Location: 2, RemovedLength: 5})
	assert.ErrorIs(t, err, textbuf.ErrRangeOutOfBounds)

	_, err = b.Apply(textbuf.Edit{Location: -1, Inserted: "x"})
	assert.ErrorIs(t, err, textbuf.ErrRangeOutOfBounds)

	assert.Equal(t, "abc", b.Text(), "failed edits must not mutate the buffer")
	assert.Equal(t, uint64(0), b.Version())
}

func TestApply_ShiftsAttachments(t *testing.T) {
	t.Parallel()

	b := textbuf.New("abcdef")
	a, err := b.InsertAttachment(3, "n", "")
	require.NoError(t, err)

	// Insert before the unit: it shifts right.
	_, err = b.Apply(textbuf.Edit{Location: 0, Inserted: "xx"})
	require.NoError(t, err)
	assert.Equal(t, 5, a.Position())

	// Delete before the unit: it shifts left.
	_, err = b.Apply(textbuf.Edit{Location: 0, RemovedLength: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, a.Position())

	// Edits after the unit leave it alone.
	_, err = b.Apply(textbuf.Edit{Location: 5, Inserted: "yy"})
	require.NoError(t, err)
	assert.Equal(t, 3, a.Position())
}

func TestApply_InsertAtAttachmentPositionPushesUnit(t *testing.T) {
	t.Parallel()

	b := textbuf.New("ab")
	a, err := b.InsertAttachment(1, "n", "")
	require.NoError(t, err)

	_, err = b.Apply(textbuf.Edit{Location: 1, Inserted: "zz"})
	require.NoError(t, err)

	assert.Equal(t, 3, a.Position())
	got, ok := b.AttachmentAt(3)
	require.True(t, ok)
	assert.Equal(t, a.ID(), got.ID())
}

func TestApply_RemovesCoveredAttachments(t *testing.T) {
	t.Parallel()

	b := textbuf.New("abcdef")
	inside, err := b.InsertAttachment(2, "in", "")
	require.NoError(t, err)
	after, err := b.InsertAttachment(6, "out", "")
	require.NoError(t, err)

	delta, err := b.Apply(textbuf.Edit{Location: 1, RemovedLength: 3})
	require.NoError(t, err)

	require.Len(t, delta.RemovedAttachments, 1)
	assert.Equal(t, inside.ID(), delta.RemovedAttachments[0].ID())

	_, ok := b.Attachment(inside.ID())
	assert.False(t, ok)

	got, ok := b.Attachment(after.ID())
	require.True(t, ok)
	assert.Equal(t, 3, got.Position())
}
