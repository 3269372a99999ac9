// Package camera owns the mapping between orbit-plane world coordinates (AU)
// and device pixels, plus the animated focus transitions that drive it.
//
// The camera is mutated only from the host's frame and input callbacks, never
// concurrently. Out-of-range input saturates at the clamp bounds; no method
// fails at runtime.
package camera

import "math"

const (
	ZoomMin = 0.25
	ZoomMax = 5000.0

	// FitAll keeps this fraction of the shorter viewport dimension as margin
	// around the outermost apoapsis.
	fitPadding = 0.10

	// Preferred on-screen body radius after a focus, as a fraction of the
	// shorter viewport dimension.
	FocusFractionStar   = 0.22
	FocusFractionPlanet = 0.10
)

// Snapshot is an immutable copy of the interpolated camera fields, used as
// transition endpoints.
type Snapshot struct {
	X, Y float64
	Zoom float64
}

// Camera holds the mutable view state for one scene instance. X and Y are the
// world-space focus point in AU; BaseScale is pixels per AU at zoom 1.
type Camera struct {
	X, Y      float64
	Zoom      float64
	BaseScale float64

	ViewportW float64
	ViewportH float64

	transition *Transition
}

// New returns a camera centered on the origin, fitted so a system of radius
// maxApoapsisAU fills the viewport at the given initial zoom.
func New(viewportW, viewportH, maxApoapsisAU, zoom float64) *Camera {
	c := &Camera{
		Zoom:      clamp(zoom, ZoomMin, ZoomMax),
		ViewportW: viewportW,
		ViewportH: viewportH,
	}
	c.FitAll(maxApoapsisAU)
	return c
}

// Scale returns the effective pixels-per-AU for the current frame.
func (c *Camera) Scale() float64 { return c.BaseScale * c.Zoom }

// ToScreen maps a world point to device pixels with the focus point at the
// viewport center.
func (c *Camera) ToScreen(wx, wy float64) (px, py float64) {
	s := c.Scale()
	px = (wx-c.X)*s + c.ViewportW/2
	py = (wy-c.Y)*s + c.ViewportH/2
	return px, py
}

// ToWorld is the exact inverse of ToScreen for the same camera snapshot.
func (c *Camera) ToWorld(px, py float64) (wx, wy float64) {
	s := c.Scale()
	wx = (px-c.ViewportW/2)/s + c.X
	wy = (py-c.ViewportH/2)/s + c.Y
	return wx, wy
}

// Pan moves the focus point by a pixel delta. Dragging the scene right moves
// the camera left, so the delta is subtracted. Direct input cancels any
// running transition.
func (c *Camera) Pan(dxPx, dyPx float64) {
	s := c.Scale()
	c.X -= dxPx / s
	c.Y -= dyPx / s
	c.transition = nil
}

// ZoomBy multiplies the zoom by factor, clamped to [ZoomMin, ZoomMax], while
// keeping the world point under the anchor pixel fixed on screen.
func (c *Camera) ZoomBy(factor, anchorPx, anchorPy float64) {
	beforeX, beforeY := c.ToWorld(anchorPx, anchorPy)
	c.Zoom = clamp(c.Zoom*factor, ZoomMin, ZoomMax)
	afterX, afterY := c.ToWorld(anchorPx, anchorPy)
	c.X += beforeX - afterX
	c.Y += beforeY - afterY
	c.transition = nil
}

// SetZoom clamps and applies an absolute zoom, anchored at the viewport
// center.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = clamp(zoom, ZoomMin, ZoomMax)
	c.transition = nil
}

// FitAll recomputes BaseScale so a system of radius maxApoapsisAU fits the
// shorter viewport dimension with padding. Zoom and pan are left alone, and a
// running transition keeps its target: a resize mid-flight may land slightly
// off-frame, which is acceptable.
func (c *Camera) FitAll(maxApoapsisAU float64) {
	if maxApoapsisAU <= 0 {
		maxApoapsisAU = 1
	}
	short := math.Min(c.ViewportW, c.ViewportH)
	c.BaseScale = short * (1 - fitPadding) / (2 * maxApoapsisAU)
}

// Resize records a new viewport size. The caller follows with FitAll.
func (c *Camera) Resize(w, h float64) {
	c.ViewportW = w
	c.ViewportH = h
}

// Center snaps the camera to a world point and zoom immediately.
func (c *Camera) Center(x, y, zoom float64) {
	c.X, c.Y = x, y
	c.Zoom = clamp(zoom, ZoomMin, ZoomMax)
	c.transition = nil
}

// FocusZoom returns the zoom that renders a body of the given visual radius
// (AU) at fraction of the shorter viewport dimension.
func (c *Camera) FocusZoom(visualRadiusAU, fraction float64) float64 {
	if visualRadiusAU <= 0 || c.BaseScale <= 0 {
		return c.Zoom
	}
	wantPx := math.Min(c.ViewportW, c.ViewportH) * fraction
	return clamp(wantPx/(visualRadiusAU*c.BaseScale), ZoomMin, ZoomMax)
}

// Snapshot copies the interpolated fields.
func (c *Camera) Snapshot() Snapshot {
	return Snapshot{X: c.X, Y: c.Y, Zoom: c.Zoom}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
