package application

import (
	"sync"
	"time"
)

// Clock interface supaya gampang ditest
type Clock interface {
	Now() time.Time
}

// SystemClock implementasi default, pakai time.Now()
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when read or set. Every Now call advances it by
// Step, so two consecutive reads never return the same instant when Step > 0.
type ManualClock struct {
	mu   sync.Mutex
	now  time.Time
	Step time.Duration
}

func NewManualClock(start time.Time, step time.Duration) *ManualClock {
	return &ManualClock{now: start, Step: step}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.Step)
	return t
}

// Set moves the clock to t.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}
