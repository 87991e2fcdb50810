package effects

import (
	"math/bits"
	"time"
)

// DefaultCounterDuration is how long a counter takes to reach its target.
const DefaultCounterDuration = 2 * time.Second

// Counter animates an integer from zero to Target once started.
type Counter struct {
	Target   int
	Duration time.Duration

	elapsed time.Duration
	started bool
}

// NewCounter returns an idle counter.
func NewCounter(target int, duration time.Duration) Counter {
	if duration <= 0 {
		duration = DefaultCounterDuration
	}
	return Counter{Target: max(target, 0), Duration: duration}
}

// Start begins the animation. Starting twice does not restart it.
func (c *Counter) Start() {
	c.started = true
}

// Advance moves a started counter forward by d.
func (c *Counter) Advance(d time.Duration) {
	if !c.started || d <= 0 {
		return
	}
	c.elapsed = min(c.elapsed+d, c.Duration)
}

// Value is floor(Target*elapsed/Duration), clamped to Target.
func (c Counter) Value() int {
	if !c.started || c.Duration <= 0 {
		return 0
	}
	if c.elapsed >= c.Duration {
		return c.Target
	}
	// 128-bit product; the quotient is below Target so it fits.
	hi, lo := bits.Mul64(uint64(c.Target), uint64(c.elapsed))
	q, _ := bits.Div64(hi, lo, uint64(c.Duration))
	return int(q)
}

// Running reports whether the counter is started and not yet at target.
func (c Counter) Running() bool {
	return c.started && c.elapsed < c.Duration
}

// Started reports whether Start has been called.
func (c Counter) Started() bool {
	return c.started
}
