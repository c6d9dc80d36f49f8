package population

import (
	"iter"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Set is an unordered set, iteration follows Go's map ordering which may differ between passes.
type Set[T comparable] struct {
	items map[T]struct{}
}

var _ UniqueKeyed[int] = (*Set[int])(nil)

// NewSet returns a set containing the given values, duplicates are ignored.
func NewSet[T comparable](values ...T) *Set[T] {
	s := &Set[T]{items: make(map[T]struct{}, len(values))}

	for _, v := range values {
		s.Insert(v)
	}

	return s
}

func (s *Set[T]) Insert(v T) bool {
	if _, ok := s.items[v]; ok {
		return false
	}

	s.items[v] = struct{}{}

	return true
}

// Contains returns a boolean indicating whether v is in the set.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.items[v]
	return ok
}

func (s *Set[T]) Len() int {
	return len(s.items)
}

func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// OrderedSet is a set which iterates in ascending order.
type OrderedSet[T constraints.Ordered] struct {
	items []T
}

var _ UniqueKeyed[int] = (*OrderedSet[int])(nil)

// NewOrderedSet returns an ordered set containing the given values, duplicates are ignored.
func NewOrderedSet[T constraints.Ordered](values ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{items: make([]T, 0, len(values))}

	for _, v := range values {
		s.Insert(v)
	}

	return s
}

func (s *OrderedSet[T]) Insert(v T) bool {
	idx, found := slices.BinarySearch(s.items, v)
	if found {
		return false
	}

	s.items = slices.Insert(s.items, idx, v)

	return true
}

// Contains returns a boolean indicating whether v is in the set.
func (s *OrderedSet[T]) Contains(v T) bool {
	_, found := slices.BinarySearch(s.items, v)
	return found
}

func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

func (s *OrderedSet[T]) All() iter.Seq[T] {
	return Slice[T](s.items).All()
}
