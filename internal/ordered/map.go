// Package ordered provides an insertion-ordered map that refuses
// duplicate keys.
package ordered

import (
	"errors"
	"iter"
)

// ErrDuplicateKey is returned by Insert when the key is already present.
var ErrDuplicateKey = errors.New("ordered: duplicate key")

// Map is a map that remembers insertion order. The zero value is ready to use.
type Map[K comparable, V any] struct {
	index map[K]int
	keys  []K
	vals  []V
}

// New returns an empty map with room for n entries.
func New[K comparable, V any](n int) *Map[K, V] {
	return &Map[K, V]{
		index: make(map[K]int, n),
		keys:  make([]K, 0, n),
		vals:  make([]V, 0, n),
	}
}

// Insert adds key with value v. It fails with ErrDuplicateKey if key is
// already present; the existing entry is left untouched.
func (m *Map[K, V]) Insert(key K, v V) error {
	if m.index == nil {
		m.index = make(map[K]int)
	}
	if _, ok := m.index[key]; ok {
		return ErrDuplicateKey
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, v)
	return nil
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	i, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return m.vals[i], true
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// All returns an iterator over entries in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, k := range m.keys {
			if !yield(k, m.vals[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over values in insertion order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.vals {
			if !yield(v) {
				return
			}
		}
	}
}
