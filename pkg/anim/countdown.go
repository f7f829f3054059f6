// Package anim provides small tick-driven timing primitives: countdowns,
// fade transitions, and easing helpers. Everything is counted in logical
// ticks (one per frame); nothing in this package touches wall-clock time,
// so callers decide the tick rate.
package anim

// Countdown counts a fixed number of ticks down to zero. The zero value is
// an elapsed, inactive countdown.
type Countdown struct {
	remaining int
}

// Start arms the countdown for the given number of ticks. Non-positive
// values leave it inactive.
func (c *Countdown) Start(ticks int) {
	if ticks < 0 {
		ticks = 0
	}
	c.remaining = ticks
}

// Tick advances the countdown by one tick and reports true exactly once,
// on the tick where it reaches zero.
func (c *Countdown) Tick() bool {
	if c.remaining == 0 {
		return false
	}
	c.remaining--
	return c.remaining == 0
}

// Active reports whether ticks remain.
func (c *Countdown) Active() bool {
	return c.remaining > 0
}

// Remaining returns the ticks left before the countdown elapses.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Stop clears the countdown without firing.
func (c *Countdown) Stop() {
	c.remaining = 0
}
