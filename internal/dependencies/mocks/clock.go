package mocks

import (
	"sync"
	"time"

	"github.com/mcoot/connectfour/internal/dependencies/clock"
)

// MockClock returns a fixed time, optionally stepping forward on every read
type MockClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock starting at t
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// Now returns the mocked time, then advances it by the configured step
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.current
	c.current = c.current.Add(c.step)
	return now
}

// Since measures against the mocked time without stepping it
func (c *MockClock) Since(t time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current.Sub(t)
}

// Advance moves the clock forward by d
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// StepEach makes every Now call advance the clock by d, so successive
// events get distinct timestamps
func (c *MockClock) StepEach(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.step = d
}
