// Package clock advances simulation time, measured in days elapsed, from the
// host's wall-clock frame timestamps.
package clock

const (
	SpeedMin     = 0.01   // days of simulation per wall second
	SpeedMax     = 3650.0 // ten years per second
	SpeedDefault = 10.0

	// Frame deltas are capped so a backgrounded tab or debugger pause does
	// not skip the scene years ahead on the next frame.
	maxFrameMs = 100.0
)

// Clock converts wall-clock milliseconds into simulation days. ElapsedDays
// is monotonic while unpaused; pausing freezes it but the baseline keeps
// advancing, so resuming never replays missed time.
type Clock struct {
	ElapsedDays float64
	Paused      bool
	Speed       float64

	lastMs  float64
	started bool
}

// New returns an unpaused clock at day zero with the given speed, clamped to
// [SpeedMin, SpeedMax].
func New(speed float64) *Clock {
	c := &Clock{}
	c.SetSpeed(speed)
	return c
}

// Tick advances the clock to nowMs and returns the simulation days added this
// frame. The first call after New or Reset only records the baseline and
// returns 0, so startup latency never shows up as a time jump.
func (c *Clock) Tick(nowMs float64) float64 {
	if !c.started {
		c.started = true
		c.lastMs = nowMs
		return 0
	}

	dtMs := nowMs - c.lastMs
	if dtMs < 0 {
		dtMs = 0
	}
	if dtMs > maxFrameMs {
		dtMs = maxFrameMs
	}
	c.lastMs = nowMs

	if c.Paused {
		return 0
	}

	delta := dtMs / 1000 * c.Speed
	c.ElapsedDays += delta
	return delta
}

// SetSpeed clamps and applies a new speed without disturbing elapsed time.
func (c *Clock) SetSpeed(speed float64) {
	if speed < SpeedMin {
		speed = SpeedMin
	}
	if speed > SpeedMax {
		speed = SpeedMax
	}
	c.Speed = speed
}

// ScaleSpeed multiplies the current speed, saturating at the bounds.
func (c *Clock) ScaleSpeed(factor float64) {
	c.SetSpeed(c.Speed * factor)
}

// TogglePause flips the paused flag. The wall baseline still advances inside
// Tick while paused.
func (c *Clock) TogglePause() {
	c.Paused = !c.Paused
}

// Reset rewinds to day zero and drops the wall baseline, so the next Tick is
// treated as a first call.
func (c *Clock) Reset() {
	c.ElapsedDays = 0
	c.started = false
	c.Paused = false
}
