package game

import "time"

// MaxDeltaTime is the default cap on one frame step, in seconds.
const MaxDeltaTime = 0.1

// FrameClock turns monotonic frame timestamps into capped deltas.
type FrameClock struct {
	MaxDelta float64

	last    time.Duration
	started bool
}

// NewFrameClock creates a clock capping deltas at maxDelta seconds.
func NewFrameClock(maxDelta float64) *FrameClock {
	if maxDelta <= 0 {
		maxDelta = MaxDeltaTime
	}
	return &FrameClock{MaxDelta: maxDelta}
}

// Tick returns the seconds elapsed since the previous timestamp, capped at
// MaxDelta. The first tick after Reset returns 0, as does a timestamp that
// goes backwards.
func (c *FrameClock) Tick(ts time.Duration) float64 {
	if !c.started {
		c.started = true
		c.last = ts
		return 0
	}
	dt := (ts - c.last).Seconds()
	c.last = ts
	return min(max(dt, 0), c.MaxDelta)
}

// Reset forgets the previous timestamp.
func (c *FrameClock) Reset() {
	c.started = false
}
