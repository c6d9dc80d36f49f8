// Package maths provides generic integer helpers used when computing random ranges.
package maths

import "golang.org/x/exp/constraints"

// Span returns hi - lo as an unsigned 64-bit value, hi must not be less than lo.
//
// The difference between two signed integers may not fit in their own type, for example MaxInt - MinInt, however it
// always fits in a uint64 since conversion sign extends and the subtraction wraps modulo 2^64.
func Span[T constraints.Integer](lo, hi T) uint64 {
	return uint64(hi) - uint64(lo)
}

// Magnitude returns the absolute value of the given integer as a uint64.
//
// Unlike negation the result is correct for the minimum value of T, i.e. the magnitude of MinInt64 is 2^63.
func Magnitude[T constraints.Integer](a T) uint64 {
	if a < 0 {
		return -uint64(a)
	}

	return uint64(a)
}

// CeilDiv returns numerator / denominator rounded towards positive infinity, the denominator must be non-zero.
func CeilDiv[T constraints.Unsigned](numerator, denominator T) T {
	q := numerator / denominator
	if numerator%denominator != 0 {
		q++
	}

	return q
}
