// Package clock provides the frame clock that drives update and draw passes.
package clock

// ElapsedTime describes where a frame sits on the game timeline.
// Both fields are in seconds.
type ElapsedTime struct {
	Step  float64 // time covered by this frame
	Total float64 // time since the clock started, including this frame
	Frame int     // zero-based frame counter
}

// Clock is a fixed-step frame clock. ebiten calls Update at a fixed TPS, so
// every tick advances by the same dt.
type Clock struct {
	dt      float64
	elapsed ElapsedTime
	started bool
}

// New creates a clock that advances by dt seconds per tick.
// A non-positive dt falls back to 1/60.
func New(dt float64) *Clock {
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	return &Clock{dt: dt}
}

// Tick advances the clock by one frame and returns the new elapsed time.
func (c *Clock) Tick() ElapsedTime {
	if c.started {
		c.elapsed.Frame++
	}
	c.started = true
	c.elapsed.Step = c.dt
	c.elapsed.Total += c.dt
	return c.elapsed
}

// Elapsed returns the elapsed time of the most recent tick.
func (c *Clock) Elapsed() ElapsedTime {
	return c.elapsed
}

// DT returns the fixed step.
func (c *Clock) DT() float64 {
	return c.dt
}

// SetDT changes the step used by subsequent ticks.
func (c *Clock) SetDT(dt float64) {
	if dt <= 0 {
		return
	}
	c.dt = dt
}

// Reset rewinds the clock to zero.
func (c *Clock) Reset() {
	c.elapsed = ElapsedTime{}
	c.started = false
}
