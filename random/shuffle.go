package random

import "github.com/couchbase/tools-random/population"

// Shuffle permutes the given population in place using the Fisher-Yates algorithm.
//
// NOTE: For large populations the number of permutations exceeds the period of the engine, so most permutations can't
// be produced.
func Shuffle[T any](r *Rand, pop population.Swappable[T]) error {
	n := pop.Len()
	if n == 0 {
		return ErrEmptySequence
	}

	rnd := resolve(r)

	for i := n - 1; i > 0; i-- {
		pop.Swap(i, rnd.below(i+1))
	}

	return nil
}

// ShuffleSlice permutes the given slice in place.
func ShuffleSlice[S ~[]E, E any](r *Rand, s S) error {
	return Shuffle[E](r, population.Slice[E](s))
}
