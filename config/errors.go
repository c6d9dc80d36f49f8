package config

import (
	"strings"
)

// ValidationError aggregates every problem found while reading the configuration so that they can all be reported at
// once.
//
// The zero value of ValidationError is ready for use.
type ValidationError struct {
	errs []error
}

// Add adds a new error, <nil> errors are ignored.
func (v *ValidationError) Add(err error) {
	if err == nil {
		return
	}

	v.errs = append(v.errs, err)
}

func (v *ValidationError) Error() string {
	if len(v.errs) == 0 {
		return ""
	}

	var errStr strings.Builder

	errStr.WriteString("invalid random configuration: ")

	for i, err := range v.errs {
		if i > 0 {
			errStr.WriteString("; ")
		}

		errStr.WriteString(err.Error())
	}

	return errStr.String()
}

// Unwrap returns the accumulated errors, allowing 'errors.Is' to match any of them.
//
// NOTE: Callers must not modify the returned slice.
func (v *ValidationError) Unwrap() []error {
	return v.errs
}

// ErrOrNil returns this ValidationError if it has at least one error, or nil otherwise.
func (v *ValidationError) ErrOrNil() error {
	if len(v.errs) > 0 {
		return v
	}

	return nil
}
