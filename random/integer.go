package random

import (
	"fmt"
	"math"

	"github.com/couchbase/tools-random/maths"
)

// Randrange returns a random integer in [0, stop).
func (r *Rand) Randrange(stop int) (int, error) {
	return r.RandrangeStep(0, stop, 1)
}

// RandrangeBetween returns a random integer in [start, stop).
func (r *Rand) RandrangeBetween(start, stop int) (int, error) {
	return r.RandrangeStep(start, stop, 1)
}

// RandrangeStep returns a random element of the arithmetic progression start, start+step, ... which stops before
// reaching stop. A negative step counts down. The arguments are validated before anything is drawn, so a failed call
// leaves the generator untouched.
func (r *Rand) RandrangeStep(start, stop, step int) (int, error) {
	var n uint64

	switch {
	case step > 0:
		if stop <= start {
			return 0, newRangeError(start, stop, step, ErrEmptyRange)
		}

		n = maths.CeilDiv(maths.Span(start, stop), uint64(step))
	case step < 0:
		if stop >= start {
			return 0, newRangeError(start, stop, step, ErrEmptyRange)
		}

		n = maths.CeilDiv(maths.Span(stop, start), maths.Magnitude(step))
	default:
		return 0, newRangeError(start, stop, step, ErrZeroStep)
	}

	// The offset always lands inside [MinInt, MaxInt], so wrapping arithmetic yields the exact element.
	return start + step*int(r.gen.Below(n)), nil
}

// Randint returns a random integer in [a, b], both bounds included.
func (r *Rand) Randint(a, b int) (int, error) {
	if a > b {
		return 0, newRangeError(a, b+1, 1, ErrEmptyRange)
	}

	return r.between(a, b), nil
}

// between returns an integer in [a, b], a must not be greater than b.
func (r *Rand) between(a, b int) int {
	span := maths.Span(a, b)

	// Every int is in range, the span plus one would wrap to zero.
	if span == math.MaxUint64 {
		return int(r.gen.Uint64())
	}

	return a + int(r.gen.Below(span+1))
}

// Probability returns true with probability p, values of p outside [0, 1] saturate.
func (r *Rand) Probability(p float64) bool {
	return r.Uniform(0, 1) <= p
}

// SampleRange draws k integers from [a, b]. When unique is set no value is repeated, which requires the range to be
// wide enough; note that the check mirrors the historical behaviour of comparing b-a against k.
func (r *Rand) SampleRange(a, b, k int, unique bool) ([]int, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: sample size must be non-negative, got %d", ErrInvalidParameter, k)
	}

	if k == 0 {
		return []int{}, nil
	}

	if a > b {
		return nil, newRangeError(a, b+1, 1, ErrEmptyRange)
	}

	if unique && maths.Span(a, b) < uint64(k) {
		return nil, fmt.Errorf("%w: cannot draw %d unique values from [%d, %d]", ErrRangeTooSmall, k, a, b)
	}

	var (
		values = make([]int, 0, k)
		seen   = make(map[int]struct{}, k)
	)

	for len(values) < k {
		v := r.between(a, b)

		if unique {
			if _, ok := seen[v]; ok {
				continue
			}

			seen[v] = struct{}{}
		}

		values = append(values, v)
	}

	return values, nil
}
