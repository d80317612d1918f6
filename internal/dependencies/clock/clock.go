package clock

import "time"

// Clock stamps game creation and update times
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time in UTC with the monotonic reading stripped,
// so a timestamp compares equal after a JSON round trip through storage
func (c *RealClock) Now() time.Time {
	return time.Now().UTC().Round(0)
}
