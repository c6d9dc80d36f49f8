package random

import (
	"fmt"

	"github.com/couchbase/tools-random/population"
)

// Sample returns 'k' unique elements chosen from the population, in the order they were drawn. Elements are unique by
// position, a population containing duplicate values may yield repeated values.
func Sample[T any](r *Rand, pop population.Sequential[T], k int) ([]T, error) {
	src, err := sampleSource(pop, k)
	if err != nil {
		return nil, err
	}

	sample := make([]T, 0, k)

	drawUnique(resolve(r), src.Len(), k, func(_, idx int) {
		sample = append(sample, src.At(idx))
	})

	return sample, nil
}

// SampleSlice returns 'k' unique elements chosen from the given slice.
func SampleSlice[S ~[]E, E any](r *Rand, s S, k int) (S, error) {
	sample, err := Sample[E](r, population.Slice[E](s), k)
	if err != nil {
		return nil, err
	}

	return S(sample), nil
}

// SampleAppend appends 'k' unique elements chosen from the population to the destination, in the order they were
// drawn.
func SampleAppend[T any](r *Rand, pop population.Sequential[T], k int, dst population.Resizable[T]) error {
	src, err := sampleSource(pop, k)
	if err != nil {
		return err
	}

	drawUnique(resolve(r), src.Len(), k, func(_, idx int) {
		dst.Append(src.At(idx))
	})

	return nil
}

// SampleInto fills the fixed size destination with unique elements chosen from the population, the sample size is the
// length of the destination.
func SampleInto[T any](r *Rand, pop population.Sequential[T], dst population.Fixed[T]) error {
	src, err := sampleSource(pop, dst.Len())
	if err != nil {
		return err
	}

	drawUnique(resolve(r), src.Len(), dst.Len(), func(n, idx int) {
		dst.Set(n, src.At(idx))
	})

	return nil
}

// SampleInsert inserts 'k' unique elements chosen from the population into the destination.
//
// NOTE: The destination decides its own ordering, so the order in which elements were drawn is lost.
func SampleInsert[T any](r *Rand, pop population.Sequential[T], k int, dst population.UniqueKeyed[T]) error {
	src, err := sampleSource(pop, k)
	if err != nil {
		return err
	}

	drawUnique(resolve(r), src.Len(), k, func(_, idx int) {
		dst.Insert(src.At(idx))
	})

	return nil
}

// sampleSource validates a request for 'k' elements from the population, returning an indexable view of it.
func sampleSource[T any](pop population.Sequential[T], k int) (population.Indexable[T], error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: sample size must be non-negative, got %d", ErrInvalidParameter, k)
	}

	size := pop.Len()

	if size == 0 {
		return nil, ErrEmptySequence
	}

	if k > size {
		return nil, &SampleSizeError{K: k, Size: size}
	}

	return indexed(pop), nil
}

// drawUnique draws 'k' distinct indexes in [0, size), rejecting repeats, and passes each to 'fn' along with the number
// of indexes drawn before it.
func drawUnique(r *Rand, size, k int, fn func(n, idx int)) {
	selected := make(map[int]struct{}, k)

	for len(selected) < k {
		idx := r.below(size)
		if _, ok := selected[idx]; ok {
			continue
		}

		fn(len(selected), idx)

		selected[idx] = struct{}{}
	}
}
