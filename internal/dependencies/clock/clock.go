package clock

import "time"

// Clock supplies event timestamps and command timings
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// SystemClock reads the wall clock. Times are in UTC so stored events
// don't depend on the server's zone.
type SystemClock struct{}

// New creates a SystemClock
func New() *SystemClock {
	return &SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

func (SystemClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}
