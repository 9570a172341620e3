package systems

import "time"

// Clock measures a round in simulated time. Each tick advances it by one frame
// at the configured fps, so rounds are reproducible regardless of wall time.
type Clock struct {
	fps     int
	ttl     time.Duration
	elapsed time.Duration
	ticks   int
}

// NewClock creates a clock running at fps with a time-to-live in milliseconds.
func NewClock(fps int, ttlMillis int64) *Clock {
	c := &Clock{}
	c.SetFPS(fps)
	c.SetTTL(ttlMillis)
	return c
}

// Tick advances the clock by one frame.
func (c *Clock) Tick() {
	c.elapsed += time.Second / time.Duration(c.fps)
	c.ticks++
}

// StillValid reports whether the round is still under its time-to-live.
func (c *Clock) StillValid() bool {
	return c.elapsed < c.ttl
}

// Reset rewinds the clock to zero.
func (c *Clock) Reset() {
	c.elapsed = 0
	c.ticks = 0
}

// SetTTL sets the round length in milliseconds.
func (c *Clock) SetTTL(ms int64) {
	c.ttl = time.Duration(ms) * time.Millisecond
}

// SetFPS sets the number of ticks per simulated second. Values below 1 are clamped.
func (c *Clock) SetFPS(fps int) {
	c.fps = max(fps, 1)
}

func (c *Clock) Ticks() int             { return c.ticks }
func (c *Clock) Elapsed() time.Duration { return c.elapsed }

// Remaining returns the time left in the round, never negative.
func (c *Clock) Remaining() time.Duration {
	return max(c.ttl-c.elapsed, 0)
}
