// Package timeprovider abstracts access to the wall clock so that time-seeded generators can be tested.
package timeprovider

import "time"

// TimeProvider returns the current time.
type TimeProvider interface {
	Now() time.Time
}

// CurrentTimeProvider implements 'TimeProvider' using the system clock.
type CurrentTimeProvider struct{}

var _ TimeProvider = (*CurrentTimeProvider)(nil)

func (tp CurrentTimeProvider) Now() time.Time {
	return time.Now()
}
