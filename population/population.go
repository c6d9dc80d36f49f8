// Package population defines the container capabilities which the selection functions in the 'random' package are
// able to work with, along with adapters for the common container shapes.
//
// Capabilities form a small hierarchy:
//
//	Sequential  - Len and forward iteration, every population provides this
//	Indexable   - Sequential plus constant time positional reads
//	Swappable   - Indexable plus in-place swaps, required for shuffling
//	Fixed       - Swappable plus positional writes, the length is the capacity
//	Resizable   - Fixed plus appending
//	UniqueKeyed - Sequential plus insertion, iteration order is owned by the container
//
// The selection functions only rely on the capabilities a type declares by implementing these interfaces.
package population

import "iter"

// Sequential is a population which can only be iterated from the front.
type Sequential[T any] interface {
	// Len returns the number of elements in the population.
	Len() int

	// All yields every element once, in the order defined by the container.
	All() iter.Seq[T]
}

// Indexable is a population with constant time access by position.
type Indexable[T any] interface {
	Sequential[T]

	// At returns the element at position i, where 0 <= i < Len().
	At(i int) T
}

// Swappable is an indexable population whose elements may be permuted in place.
type Swappable[T any] interface {
	Indexable[T]

	// Swap exchanges the elements at positions i and j.
	Swap(i, j int)
}

// Fixed is a population with positional writes whose length can't change, it's used as a destination with a capacity
// known up front.
type Fixed[T any] interface {
	Swappable[T]

	// Set overwrites the element at position i.
	Set(i int, v T)
}

// Resizable is a population which may also grow.
type Resizable[T any] interface {
	Fixed[T]

	// Append adds v to the end of the population.
	Append(v T)
}

// UniqueKeyed is an associative population (set or map like) where insertion is the only mutation and the container
// decides the iteration order.
type UniqueKeyed[T any] interface {
	Sequential[T]

	// Insert adds v, returning false if an element with the same key was already present.
	Insert(v T) bool
}

// Collect copies the elements of the given population into a new slice, in iteration order.
func Collect[T any](s Sequential[T]) []T {
	collected := make([]T, 0, s.Len())

	for v := range s.All() {
		collected = append(collected, v)
	}

	return collected
}
