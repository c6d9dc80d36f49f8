package random

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySequence is returned if the user attempts to choose from, shuffle or sample an empty population.
	ErrEmptySequence = errors.New("cannot choose from an empty sequence")

	// ErrEmptyRange is returned when the arguments to a range function describe a range with no elements.
	ErrEmptyRange = errors.New("empty range for randrange")

	// ErrZeroStep is returned when a range is requested with a step of zero.
	ErrZeroStep = errors.New("zero step for randrange")

	// ErrInvalidParameter is returned when a parameter is outside of the domain of the function, for example a
	// non-positive shape parameter for the gamma distribution.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInsufficientPopulation is returned when sampling more unique elements than the population contains.
	ErrInsufficientPopulation = errors.New("sample larger than population")

	// ErrRangeTooSmall is returned when sampling unique integers from a range which is too small.
	ErrRangeTooSmall = errors.New("unique sample requested but range is smaller than count")
)

// RangeError is returned when the arguments to one of the range functions are invalid, unwrapping the error returns
// either 'ErrEmptyRange' or 'ErrZeroStep'.
type RangeError struct {
	Start, Stop, Step int
	err               error
}

func newRangeError(start, stop, step int, err error) *RangeError {
	return &RangeError{Start: start, Stop: stop, Step: step, err: err}
}

func (r *RangeError) Error() string {
	return fmt.Sprintf("%s (%d, %d, %d)", r.err, r.Start, r.Stop, r.Step)
}

func (r *RangeError) Unwrap() error {
	return r.err
}

// IsRangeError returns a boolean indicating whether the given error is a 'RangeError'.
func IsRangeError(err error) bool {
	var rangeError *RangeError
	return errors.As(err, &rangeError)
}

// SampleSizeError is returned when more unique elements are requested than the population holds, unwrapping the error
// returns 'ErrInsufficientPopulation'.
type SampleSizeError struct {
	K, Size int
}

func (s *SampleSizeError) Error() string {
	return fmt.Sprintf("%s: requested %d elements from a population of %d", ErrInsufficientPopulation, s.K, s.Size)
}

func (s *SampleSizeError) Unwrap() error {
	return ErrInsufficientPopulation
}

// IsSampleSizeError returns a boolean indicating whether the given error is a 'SampleSizeError'.
func IsSampleSizeError(err error) bool {
	var sampleSize *SampleSizeError
	return errors.As(err, &sampleSize)
}
