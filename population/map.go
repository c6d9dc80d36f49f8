package population

import (
	"iter"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Pair is a key/value entry of a map population.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is an unordered map population whose elements are key/value pairs, unique by key.
type Map[K comparable, V any] struct {
	items map[K]V
}

var _ UniqueKeyed[Pair[string, int]] = (*Map[string, int])(nil)

// NewMap returns a map population containing the entries of the given map.
func NewMap[M ~map[K]V, K comparable, V any](m M) *Map[K, V] {
	items := make(map[K]V, len(m))
	for k, v := range m {
		items[k] = v
	}

	return &Map[K, V]{items: items}
}

// Insert adds the pair if the key isn't already present, existing values are never overwritten.
func (m *Map[K, V]) Insert(p Pair[K, V]) bool {
	if _, ok := m.items[p.Key]; ok {
		return false
	}

	m.items[p.Key] = p.Value

	return true
}

// Get returns the value stored for the given key.
func (m *Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.items[k]
	return v, ok
}

func (m *Map[K, V]) Len() int {
	return len(m.items)
}

func (m *Map[K, V]) All() iter.Seq[Pair[K, V]] {
	return func(yield func(Pair[K, V]) bool) {
		for k, v := range m.items {
			if !yield(Pair[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}

// OrderedMap is a map population which iterates in ascending key order.
type OrderedMap[K constraints.Ordered, V any] struct {
	keys  []K
	items map[K]V
}

var _ UniqueKeyed[Pair[int, string]] = (*OrderedMap[int, string])(nil)

// NewOrderedMap returns an ordered map population containing the entries of the given map.
func NewOrderedMap[M ~map[K]V, K constraints.Ordered, V any](m M) *OrderedMap[K, V] {
	om := &OrderedMap[K, V]{keys: make([]K, 0, len(m)), items: make(map[K]V, len(m))}

	for k, v := range m {
		om.Insert(Pair[K, V]{Key: k, Value: v})
	}

	return om
}

// Insert adds the pair if the key isn't already present, existing values are never overwritten.
func (m *OrderedMap[K, V]) Insert(p Pair[K, V]) bool {
	idx, found := slices.BinarySearch(m.keys, p.Key)
	if found {
		return false
	}

	m.keys = slices.Insert(m.keys, idx, p.Key)
	m.items[p.Key] = p.Value

	return true
}

// Get returns the value stored for the given key.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.items[k]
	return v, ok
}

func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

func (m *OrderedMap[K, V]) All() iter.Seq[Pair[K, V]] {
	return func(yield func(Pair[K, V]) bool) {
		for _, k := range m.keys {
			if !yield(Pair[K, V]{Key: k, Value: m.items[k]}) {
				return
			}
		}
	}
}
