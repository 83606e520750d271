package core

import "time"

// FrameClock turns per-frame timestamps into delta times in seconds.
//
// The first call to Delta after construction, Reset or Resume only records
// the timestamp and returns 0, so a run never starts with a huge jump.
type FrameClock struct {
	last    time.Time
	seeded  bool
	stopped bool
}

// NewFrameClock creates an unseeded clock.
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Delta returns the seconds elapsed since the previous call.
// A stopped clock always returns 0.
func (c *FrameClock) Delta(now time.Time) float64 {
	if c.stopped {
		return 0
	}
	if !c.seeded {
		c.last = now
		c.seeded = true
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// Reset forgets the previous timestamp. The next Delta returns 0.
func (c *FrameClock) Reset() {
	c.seeded = false
	c.last = time.Time{}
}

// Stop marks the clock as torn down. The owning driver must not schedule
// any further frames once Stopped reports true.
func (c *FrameClock) Stop() {
	c.stopped = true
	c.Reset()
}

// Resume restarts a stopped clock; the next Delta re-seeds.
func (c *FrameClock) Resume() {
	c.stopped = false
	c.Reset()
}

// Stopped reports whether Stop has been called.
func (c *FrameClock) Stopped() bool {
	return c.stopped
}
