// Package frame turns the host's per-frame timestamps into elapsed-time steps for
// the animation simulators.
package frame

// MaxStep caps a single step so a backgrounded tab does not produce a large jump.
const MaxStep = 1.0 / 30

// Clock derives the elapsed seconds between successive frame timestamps.
// Timestamps are milliseconds, as delivered by requestAnimationFrame.
type Clock struct {
	last    float64
	started bool
}

// Advance records ts and returns the seconds elapsed since the previous call,
// clamped to [0, MaxStep]. The first call after construction or Reset returns 0.
func (c *Clock) Advance(ts float64) float64 {
	if !c.started {
		c.last = ts
		c.started = true
		return 0
	}
	dt := Clamp((ts - c.last) / 1000)
	c.last = ts
	return dt
}

// Reset forgets the last timestamp.
func (c *Clock) Reset() {
	c.started = false
	c.last = 0
}

// Clamp bounds a step in seconds to [0, MaxStep].
func Clamp(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > MaxStep {
		return MaxStep
	}
	return dt
}
