package frame

import "time"

// Clock reports a monotonically increasing time in milliseconds.
type Clock interface {
	NowMillis() int64
}

// SystemClock measures time since its creation using the monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock reading zero now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

// StepClock advances one frame of a fixed rate each time Tick is called.
// Headless runs use it to make frame timing deterministic. The time is
// derived from the tick count, so rates that do not divide a second evenly
// do not accumulate rounding error.
type StepClock struct {
	ticks int64
	fps   int64
}

// NewStepClock returns a clock at zero ticking fps times a second.
// Rates below one are treated as one.
func NewStepClock(fps int) *StepClock {
	return &StepClock{fps: int64(max(fps, 1))}
}

func (c *StepClock) NowMillis() int64 { return c.ticks * 1000 / c.fps }

func (c *StepClock) Tick() { c.ticks++ }
