package server

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The handler reads it on every request to render the current decimal time.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
