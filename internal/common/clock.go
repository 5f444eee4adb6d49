package common

import "time"

// Clock abstracts time for components that would otherwise depend on the
// wall clock. The session registry's eviction policy and the handoff
// composer's timestamps use it so tests can drive time explicitly.
type Clock interface {
	Now() time.Time
}

// RealClock is the production clock.
type RealClock struct{}

// Now returns the current wall-clock time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FakeClock is a manually advanced clock for tests.
type FakeClock struct {
	Current time.Time
}

// NewFakeClock creates a fake clock starting at the given instant.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{Current: start}
}

// Now returns the fake clock's current instant.
func (c *FakeClock) Now() time.Time {
	return c.Current
}

// Advance moves the fake clock forward.
func (c *FakeClock) Advance(d time.Duration) {
	c.Current = c.Current.Add(d)
}
