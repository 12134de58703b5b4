package model

import (
	"cmp"
	"iter"
	"slices"
)

// SortedMap is a map kept as parallel key and value slices in ascending key
// order, so iteration order is the write order. The zero value is empty and
// ready to use.
type SortedMap[K cmp.Ordered, V any] struct {
	keys []K
	vals []V
}

func (m *SortedMap[K, V]) Len() int { return len(m.keys) }

func (m *SortedMap[K, V]) Get(k K) (v V, ok bool) {
	if i, found := slices.BinarySearch(m.keys, k); found {
		return m.vals[i], true
	}
	return v, false
}

func (m *SortedMap[K, V]) Has(k K) bool {
	_, found := slices.BinarySearch(m.keys, k)
	return found
}

// Set inserts or replaces the value at k
func (m *SortedMap[K, V]) Set(k K, v V) {
	i, found := slices.BinarySearch(m.keys, k)
	if found {
		m.vals[i] = v
		return
	}
	m.keys = slices.Insert(m.keys, i, k)
	m.vals = slices.Insert(m.vals, i, v)
}

// Update replaces the value at k with fn(old, present).
func (m *SortedMap[K, V]) Update(k K, fn func(old V, present bool) V) {
	old, ok := m.Get(k)
	m.Set(k, fn(old, ok))
}

func (m *SortedMap[K, V]) Delete(k K) bool {
	i, found := slices.BinarySearch(m.keys, k)
	if !found {
		return false
	}
	m.keys = slices.Delete(m.keys, i, i+1)
	m.vals = slices.Delete(m.vals, i, i+1)
	return true
}

// Keys returns a copy of the keys in ascending order
func (m *SortedMap[K, V]) Keys() []K { return slices.Clone(m.keys) }

// All iterates the entries in ascending key order
func (m *SortedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, k := range m.keys {
			if !yield(k, m.vals[i]) {
				return
			}
		}
	}
}

// Values iterates the values in ascending key order
func (m *SortedMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.vals {
			if !yield(v) {
				return
			}
		}
	}
}
