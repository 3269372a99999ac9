package camera

import "math"

// TransitionDurationMs is the fixed length of a focus animation.
const TransitionDurationMs = 500.0

// Transition animates the camera from one snapshot to another with a cosine
// ease, so motion decelerates into the target. At most one transition exists
// per camera; starting a new one replaces it, and any direct pan or zoom
// drops it.
type Transition struct {
	From     Snapshot
	To       Snapshot
	StartMs  float64
	Duration float64
}

// StartTransition begins animating toward the target snapshot, replacing any
// transition already in flight.
func (c *Camera) StartTransition(to Snapshot, nowMs float64) {
	c.transition = &Transition{
		From:     c.Snapshot(),
		To:       to,
		StartMs:  nowMs,
		Duration: TransitionDurationMs,
	}
}

// Transitioning reports whether a focus animation is in flight.
func (c *Camera) Transitioning() bool { return c.transition != nil }

// Advance resolves the active transition for this frame, overwriting the
// camera with interpolated values. Once elapsed time reaches the duration the
// camera equals the end snapshot exactly and the transition is cleared;
// further calls are no-ops.
func (c *Camera) Advance(nowMs float64) {
	tr := c.transition
	if tr == nil {
		return
	}

	t := (nowMs - tr.StartMs) / tr.Duration
	if t >= 1 {
		c.X, c.Y, c.Zoom = tr.To.X, tr.To.Y, tr.To.Zoom
		c.transition = nil
		return
	}
	if t < 0 {
		t = 0
	}

	k := easeCosine(t)
	c.X = tr.From.X + (tr.To.X-tr.From.X)*k
	c.Y = tr.From.Y + (tr.To.Y-tr.From.Y)*k
	c.Zoom = tr.From.Zoom + (tr.To.Zoom-tr.From.Zoom)*k
}

// easeCosine maps linear progress to a smooth ease-in-out curve.
func easeCosine(t float64) float64 {
	return (1 - math.Cos(math.Pi*t)) / 2
}
