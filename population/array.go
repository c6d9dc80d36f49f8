package population

import "iter"

// Array is a fixed capacity population, typically viewing the storage of a Go array.
//
//	var buf [8]int
//	dst := population.ArrayOf(buf[:])
//
// Writes through the Array are visible in the underlying array, it never reallocates.
type Array[T any] struct {
	items []T
}

var _ Fixed[int] = Array[int]{}

// ArrayOf returns a fixed capacity view over the given storage.
func ArrayOf[T any](items []T) Array[T] {
	return Array[T]{items: items[:len(items):len(items)]}
}

func (a Array[T]) Len() int {
	return len(a.items)
}

func (a Array[T]) All() iter.Seq[T] {
	return Slice[T](a.items).All()
}

func (a Array[T]) At(i int) T {
	return a.items[i]
}

func (a Array[T]) Swap(i, j int) {
	a.items[i], a.items[j] = a.items[j], a.items[i]
}

func (a Array[T]) Set(i int, v T) {
	a.items[i] = v
}
