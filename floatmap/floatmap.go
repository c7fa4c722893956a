// Package floatmap provides a hash map keyed by floating-point values.
//
// Built-in Go maps accept float keys but inherit native float equality: every
// NaN inserted becomes a new, unreachable entry. Map keys entries by
// [orderedfloat.OrderedFloat.Key] instead, so all NaNs share one slot and
// +0.0/-0.0 share another.
//
// Map is not safe for concurrent use.
package floatmap

import (
	"iter"
	"slices"

	"github.com/amp-labs/orderedfloat/orderedfloat"
	"github.com/dolthub/swiss"
)

type entry[T orderedfloat.Float, V any] struct {
	key   orderedfloat.OrderedFloat[T]
	value V
}

// Map associates values with float keys under OrderedFloat equality.
type Map[T orderedfloat.Float, V any] struct {
	table *swiss.Map[uint64, entry[T, V]]
}

// New returns a map with room for at least size entries.
func New[T orderedfloat.Float, V any](size int) *Map[T, V] {
	if size < 0 {
		size = 0
	}

	return &Map[T, V]{
		table: swiss.NewMap[uint64, entry[T, V]](uint32(size)), //nolint:gosec
	}
}

// Put stores value under key. If an equal key exists, both the stored key
// and the value are replaced, as a built-in map does for float keys.
func (m *Map[T, V]) Put(key T, value V) {
	k := orderedfloat.New(key)

	m.table.Put(k.Key(), entry[T, V]{key: k, value: value})
}

// Get returns the value stored under a key equal to key.
func (m *Map[T, V]) Get(key T) (V, bool) {
	e, ok := m.table.Get(orderedfloat.New(key).Key())

	return e.value, ok
}

// Has reports whether a key equal to key is present.
func (m *Map[T, V]) Has(key T) bool {
	return m.table.Has(orderedfloat.New(key).Key())
}

// Delete removes the entry for key and reports whether it existed.
func (m *Map[T, V]) Delete(key T) bool {
	return m.table.Delete(orderedfloat.New(key).Key())
}

// Len returns the number of entries.
func (m *Map[T, V]) Len() int {
	return m.table.Count()
}

// Clear removes every entry, keeping the allocated capacity.
func (m *Map[T, V]) Clear() {
	m.table.Clear()
}

// All iterates over the entries in no particular order, yielding each stored
// key exactly as it was last Put.
func (m *Map[T, V]) All() iter.Seq2[T, V] {
	return func(yield func(T, V) bool) {
		m.table.Iter(func(_ uint64, e entry[T, V]) bool {
			return !yield(e.key.Value(), e.value)
		})
	}
}

// Keys returns the stored keys in ascending order, NaN last.
func (m *Map[T, V]) Keys() []T {
	keys := make([]orderedfloat.OrderedFloat[T], 0, m.table.Count())

	m.table.Iter(func(_ uint64, e entry[T, V]) bool {
		keys = append(keys, e.key)

		return false
	})

	slices.SortFunc(keys, orderedfloat.Cmp[T])

	return orderedfloat.Unwrap(keys)
}
