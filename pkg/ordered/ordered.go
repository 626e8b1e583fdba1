// Package ordered provides an insertion-ordered key→value container.
// Section and placeholder order is semantically meaningful (it drives
// outline row order and tab-navigation order), so iteration must never
// fall back to map iteration order.
package ordered

// Map is a key→value store that preserves insertion order while keeping
// O(1) average key lookup. The zero value is not usable; call NewMap.
type Map[K comparable, V any] struct {
	keys    []K
	indexOf map[K]int
	values  map[K]V
}

// NewMap creates an empty ordered map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		indexOf: make(map[K]int),
		values:  make(map[K]V),
	}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// Get returns the value for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set inserts key at the end, or replaces the value in place when the key
// already exists, preserving its position.
func (m *Map[K, V]) Set(key K, value V) {
	if _, ok := m.values[key]; !ok {
		m.indexOf[key] = len(m.keys)
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// At returns the key and value at a zero-based position.
func (m *Map[K, V]) At(position int) (K, V, bool) {
	if position < 0 || position >= len(m.keys) {
		var k K
		var v V
		return k, v, false
	}
	key := m.keys[position]
	return key, m.values[key], true
}

// IndexOf returns the position of key, or -1 when absent.
func (m *Map[K, V]) IndexOf(key K) int {
	if idx, ok := m.indexOf[key]; ok {
		return idx
	}
	return -1
}

// Delete removes key and closes the positional gap. Returns true if the
// key was present.
func (m *Map[K, V]) Delete(key K) bool {
	idx, ok := m.indexOf[key]
	if !ok {
		return false
	}

	m.keys = append(m.keys[:idx], m.keys[idx+1:]...)
	delete(m.indexOf, key)
	delete(m.values, key)

	for i := idx; i < len(m.keys); i++ {
		m.indexOf[m.keys[i]] = i
	}
	return true
}

// Keys returns the keys in insertion order. The slice is a copy.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Each calls fn for every entry in insertion order until fn returns false.
func (m *Map[K, V]) Each(fn func(key K, value V) bool) {
	for _, key := range m.keys {
		if !fn(key, m.values[key]) {
			return
		}
	}
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.keys = m.keys[:0]
	m.indexOf = make(map[K]int)
	m.values = make(map[K]V)
}
