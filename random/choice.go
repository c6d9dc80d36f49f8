package random

import (
	"fmt"
	"math/bits"

	"github.com/couchbase/tools-random/population"
)

// Choice returns a random element from the given population. Indexable populations are accessed directly, otherwise
// the population is walked up to the chosen position.
func Choice[T any](r *Rand, pop population.Sequential[T]) (T, error) {
	size := pop.Len()
	if size == 0 {
		return *new(T), ErrEmptySequence
	}

	return elementAt(pop, resolve(r).below(size)), nil
}

// ChoiceSlice returns a random element from the given slice.
func ChoiceSlice[S ~[]E, E any](r *Rand, s S) (E, error) {
	return Choice[E](r, population.Slice[E](s))
}

// Choices returns 'k' elements chosen independently from the given population, so elements may be repeated.
func Choices[T any](r *Rand, pop population.Sequential[T], k int) ([]T, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: number of choices must be non-negative, got %d", ErrInvalidParameter, k)
	}

	if k == 0 {
		return []T{}, nil
	}

	if pop.Len() == 0 {
		return nil, ErrEmptySequence
	}

	var (
		rnd     = resolve(r)
		src     = indexed(pop)
		choices = make([]T, 0, k)
	)

	for i := 0; i < k; i++ {
		choices = append(choices, src.At(rnd.below(src.Len())))
	}

	return choices, nil
}

// WeightedChoiceOption pairs a type with a weight.
type WeightedChoiceOption[T any] struct {
	// Weight of the option, a higher weight means it's more likely to be selected.
	//
	// NOTE: The sum of the overall weights must fit in a uint64.
	Weight uint

	// Option that may be picked.
	Option T
}

// WeightedChoice returns an element from the given slice of options where each option is selected with probability
// proportional to its weight. Options with a zero weight are never selected.
func WeightedChoice[T any](r *Rand, s []WeightedChoiceOption[T]) (T, error) {
	if len(s) == 0 {
		return *new(T), ErrEmptySequence
	}

	var total uint64

	for _, e := range s {
		var carry uint64

		total, carry = bits.Add64(total, uint64(e.Weight), 0)
		if carry != 0 {
			return *new(T), fmt.Errorf("%w: the sum of the weights overflows a uint64", ErrInvalidParameter)
		}
	}

	if total == 0 {
		return *new(T), fmt.Errorf("%w: at least one option must have a positive weight", ErrInvalidParameter)
	}

	n := resolve(r).gen.Below(total)

	for _, e := range s {
		if n < uint64(e.Weight) {
			return e.Option, nil
		}

		n -= uint64(e.Weight)
	}

	// Unreachable, 'n' is always less than the total weight.
	return s[len(s)-1].Option, nil
}

// elementAt returns the element at position 'idx' of the population, which must be less than 'pop.Len()'.
func elementAt[T any](pop population.Sequential[T], idx int) T {
	if indexable, ok := pop.(population.Indexable[T]); ok {
		return indexable.At(idx)
	}

	var i int

	for v := range pop.All() {
		if i == idx {
			return v
		}

		i++
	}

	panic(fmt.Sprintf("population yielded %d elements but reported a length of %d", i, pop.Len()))
}

// indexed returns the population as an 'Indexable', sequential-only populations are copied in iteration order so that
// positions remain stable across draws.
func indexed[T any](pop population.Sequential[T]) population.Indexable[T] {
	if indexable, ok := pop.(population.Indexable[T]); ok {
		return indexable
	}

	return population.Slice[T](population.Collect(pop))
}
