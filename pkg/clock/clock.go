// pkg/clock/clock.go
package clock

import "time"

// Clock abstracts time capture so lifecycle transitions can be tested
// against exact instants.
type Clock interface {
	Now() time.Time
}

// System is the wall clock.
type System struct{}

// Now returns the current time.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed struct {
	Instant time.Time
}

// Now returns the configured instant.
func (f Fixed) Now() time.Time {
	return f.Instant
}

// NewFixed creates a Fixed clock pinned to the given instant.
func NewFixed(t time.Time) Fixed {
	return Fixed{Instant: t}
}
