// Package clock supplies the logical height the ledger engine accrues staking
// yield against. Heights are monotonically non-decreasing across operations.
package clock

import (
	"sync"
	"time"
)

// Clock reports the current logical height
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	Now() uint64
}

// Manual is a Clock advanced explicitly by the host or by tests.
type Manual struct {
	mu     sync.RWMutex
	height uint64
}

// NewManual creates a manual clock starting at the given height
func NewManual(height uint64) *Manual {
	return &Manual{height: height}
}

// Now returns the current height
func (c *Manual) Now() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.height
}

// Advance moves the clock forward by delta heights
func (c *Manual) Advance(delta uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.height += delta
}

// Set moves the clock to height if it is not behind the current one.
// Regressions are ignored to keep the clock monotonic.
func (c *Manual) Set(height uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if height > c.height {
		c.height = height
	}
}

// Interval derives the height from wall time: one tick per fixed interval
// since a genesis instant. Monotonic as long as wall time is.
type Interval struct {
	genesis  time.Time
	interval time.Duration
}

// NewInterval creates a wall-time derived clock
func NewInterval(genesis time.Time, interval time.Duration) *Interval {
	return &Interval{genesis: genesis, interval: interval}
}

// Now returns the number of whole intervals elapsed since genesis
func (c *Interval) Now() uint64 {
	elapsed := time.Since(c.genesis)
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed / c.interval)
}
