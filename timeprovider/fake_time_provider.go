package timeprovider

import (
	"time"
)

// FakeTimeProvider implements 'TimeProvider' and allows the time to be advanced manually.
type FakeTimeProvider struct {
	Time time.Time
}

var _ TimeProvider = &FakeTimeProvider{}

func NewFakeTimeProvider(start time.Time) *FakeTimeProvider {
	return &FakeTimeProvider{Time: start}
}

func (f *FakeTimeProvider) Now() time.Time {
	return f.Time
}

// AdvanceTimeTo sets the time to 't'.
func (f *FakeTimeProvider) AdvanceTimeTo(t time.Time) {
	f.Time = t
}

// AdvanceTimeBy advances the time by 'd'.
func (f *FakeTimeProvider) AdvanceTimeBy(d time.Duration) {
	f.AdvanceTimeTo(f.Time.Add(d))
}
