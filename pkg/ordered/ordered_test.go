package ordered_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scratchpaper/textsync/pkg/ordered"
)

func TestMap_InsertionOrder(t *testing.T) {
	t.Parallel()

	m := ordered.NewMap[string, int]()
	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)

	assert.Equal(t, []string{"c", "a", "b"}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestMap_SetReplacesInPlace(t *testing.T) {
	t.Parallel()

	m := ordered.NewMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10)

	assert.Equal(t, []string{"a", "b"}, m.Keys())

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, 0, m.IndexOf("a"))
}

func TestMap_At(t *testing.T) {
	t.Parallel()

	m := ordered.NewMap[string, int]()
	m.Set("x", 7)
	m.Set("y", 8)

	key, value, ok := m.At(1)
	require.True(t, ok)
	assert.Equal(t, "y", key)
	assert.Equal(t, 8, value)

	_, _, ok = m.At(2)
	assert.False(t, ok)
	_, _, ok = m.At(-1)
	assert.False(t, ok)
}

func TestMap_Delete(t *testing.T) {
	t.Parallel()

	m := ordered.NewMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	assert.True(t, m.Delete("b"))
	assert.False(t, m.Delete("b"))

	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.Equal(t, 1, m.IndexOf("c"))
	assert.Equal(t, -1, m.IndexOf("b"))

	_, ok := m.Get("b")
	assert.False(t, ok)
}

func TestMap_Each(t *testing.T) {
	t.Parallel()

	m := ordered.NewMap[int, string]()
	m.Set(3, "three")
	m.Set(1, "one")
	m.Set(2, "two")

	var seen []int
	m.Each(func(key int, _ string) bool {
		seen = append(seen, key)
		return true
	})
	assert.Equal(t, []int{3, 1, 2}, seen)

	seen = nil
	m.Each(func(key int, _ string) bool {
		seen = append(seen, key)
		return len(seen) < 2
	})
	assert.Equal(t, []int{3, 1}, seen)
}

func TestMap_Clear(t *testing.T) {
	t.Parallel()

	m := ordered.NewMap[string, int]()
	m.Set("a", 1)
	m.Clear()

	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Keys())
}
