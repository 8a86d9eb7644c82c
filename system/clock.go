package system

import "time"

// Clock measures wall-clock time between update ticks.
type Clock struct {
	MaxDt    float64 // longest step handed out; stalls are clamped to it
	Fallback float64 // step used for the first tick after a reset

	last time.Time
}

// Tick returns the seconds elapsed since the previous tick, clamped to
// MaxDt. The first tick after Reset returns Fallback.
func (c *Clock) Tick(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return c.clamp(c.Fallback)
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		dt = 0
	}
	return c.clamp(dt)
}

// Reset forgets the previous tick, so time spent paused is never replayed.
func (c *Clock) Reset() {
	c.last = time.Time{}
}

func (c *Clock) clamp(dt float64) float64 {
	if c.MaxDt > 0 && dt > c.MaxDt {
		return c.MaxDt
	}
	return dt
}
