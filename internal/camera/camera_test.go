package camera

import (
	"math"
	"testing"
)

func newTestCamera() *Camera {
	return New(1280, 720, 30, 1.0)
}

func TestRoundTrip(t *testing.T) {
	c := newTestCamera()
	c.X, c.Y = 3.7, -1.2
	c.Zoom = 42

	points := [][2]float64{{0, 0}, {1, 1}, {-5.5, 17.2}, {30, -30}}
	for _, p := range points {
		px, py := c.ToScreen(p[0], p[1])
		wx, wy := c.ToWorld(px, py)
		if math.Abs(wx-p[0]) > 1e-9 || math.Abs(wy-p[1]) > 1e-9 {
			t.Errorf("world round trip (%v,%v) -> (%v,%v)", p[0], p[1], wx, wy)
		}
	}

	pixels := [][2]float64{{0, 0}, {640, 360}, {1280, 720}, {-50, 900}}
	for _, p := range pixels {
		wx, wy := c.ToWorld(p[0], p[1])
		px, py := c.ToScreen(wx, wy)
		if math.Abs(px-p[0]) > 1e-9 || math.Abs(py-p[1]) > 1e-9 {
			t.Errorf("screen round trip (%v,%v) -> (%v,%v)", p[0], p[1], px, py)
		}
	}
}

func TestFocusPointMapsToCenter(t *testing.T) {
	c := newTestCamera()
	c.X, c.Y = 9.58, -2.3

	px, py := c.ToScreen(c.X, c.Y)
	if math.Abs(px-640) > 1e-9 || math.Abs(py-360) > 1e-9 {
		t.Errorf("focus point maps to (%v,%v), want viewport center", px, py)
	}
}

func TestZoomAnchor(t *testing.T) {
	c := newTestCamera()
	c.X, c.Y = 1.5, 0.5

	anchors := [][2]float64{{640, 360}, {100, 50}, {1200, 700}}
	factors := []float64{1.2, 0.8, 3.0, 0.1}

	for _, a := range anchors {
		for _, f := range factors {
			beforeX, beforeY := c.ToWorld(a[0], a[1])
			c.ZoomBy(f, a[0], a[1])
			afterX, afterY := c.ToWorld(a[0], a[1])
			if math.Abs(afterX-beforeX) > 1e-9 || math.Abs(afterY-beforeY) > 1e-9 {
				t.Errorf("anchor (%v,%v) factor %v: world point moved by (%g,%g)",
					a[0], a[1], f, afterX-beforeX, afterY-beforeY)
			}
		}
	}
}

func TestZoomClamping(t *testing.T) {
	c := newTestCamera()

	c.ZoomBy(1e12, 640, 360)
	if c.Zoom != ZoomMax {
		t.Errorf("extreme zoom in: got %v, want %v", c.Zoom, ZoomMax)
	}

	c.ZoomBy(1e-12, 640, 360)
	if c.Zoom != ZoomMin {
		t.Errorf("extreme zoom out: got %v, want %v", c.Zoom, ZoomMin)
	}

	c.SetZoom(-5)
	if c.Zoom != ZoomMin {
		t.Errorf("negative absolute zoom: got %v, want %v", c.Zoom, ZoomMin)
	}
}

func TestPanDirection(t *testing.T) {
	c := newTestCamera()
	x0 := c.X

	// Dragging the scene right moves the camera focus left.
	c.Pan(100, 0)
	if c.X >= x0 {
		t.Errorf("pan right should decrease camera.X: %v -> %v", x0, c.X)
	}
}

func TestFitAllKeepsApoapsisVisible(t *testing.T) {
	maxApo := 30.41
	c := New(1280, 720, maxApo, 1.0)

	// Worst case: apoapsis point straight up from the star along the short
	// dimension.
	_, py := c.ToScreen(0, maxApo)
	if py < 0 || py > 720 {
		t.Errorf("apoapsis at py=%v falls outside the viewport", py)
	}
	_, py = c.ToScreen(0, -maxApo)
	if py < 0 || py > 720 {
		t.Errorf("apoapsis at py=%v falls outside the viewport", py)
	}
}

func TestTransitionTermination(t *testing.T) {
	c := newTestCamera()
	target := Snapshot{X: 5.2, Y: -0.4, Zoom: 120}

	c.StartTransition(target, 1000)
	if !c.Transitioning() {
		t.Fatal("transition should be active")
	}

	c.Advance(1000 + TransitionDurationMs)
	if c.Transitioning() {
		t.Error("transition should be cleared after its duration")
	}
	if c.X != target.X || c.Y != target.Y || c.Zoom != target.Zoom {
		t.Errorf("camera = (%v,%v,%v), want exact end snapshot", c.X, c.Y, c.Zoom)
	}

	// Subsequent frames are no-ops.
	c.X = 99
	c.Advance(1000 + 2*TransitionDurationMs)
	if c.X != 99 {
		t.Error("cleared transition must not keep driving the camera")
	}
}

func TestTransitionEasesMonotonically(t *testing.T) {
	c := newTestCamera()
	c.Center(0, 0, 1)
	c.StartTransition(Snapshot{X: 10, Zoom: 100}, 0)

	prev := -math.MaxFloat64
	for ms := 0.0; ms <= TransitionDurationMs; ms += 50 {
		c.Advance(ms)
		if c.X < prev-1e-9 {
			t.Fatalf("interpolated X regressed at %vms: %v < %v", ms, c.X, prev)
		}
		prev = c.X
	}
	if math.Abs(c.X-10) > 1e-9 {
		t.Errorf("final X = %v, want 10", c.X)
	}
}

func TestDirectInputCancelsTransition(t *testing.T) {
	c := newTestCamera()
	c.StartTransition(Snapshot{X: 5, Zoom: 10}, 0)

	c.Pan(10, 10)
	if c.Transitioning() {
		t.Error("pan should drop the active transition")
	}

	c.StartTransition(Snapshot{X: 5, Zoom: 10}, 0)
	c.ZoomBy(1.5, 640, 360)
	if c.Transitioning() {
		t.Error("zoom should drop the active transition")
	}
}

func TestNewFocusReplacesTransition(t *testing.T) {
	c := newTestCamera()
	c.StartTransition(Snapshot{X: 5}, 0)
	first := c.transition

	c.StartTransition(Snapshot{X: -5}, 100)
	if c.transition == first {
		t.Error("second focus should replace the in-flight transition")
	}
	if c.transition.To.X != -5 {
		t.Errorf("active target X = %v, want -5", c.transition.To.X)
	}
}

func TestFocusZoomFraction(t *testing.T) {
	c := newTestCamera()
	visualRadius := 0.19 // roughly the star

	zoom := c.FocusZoom(visualRadius, FocusFractionStar)
	gotPx := visualRadius * c.BaseScale * zoom
	wantPx := 720 * FocusFractionStar
	if math.Abs(gotPx-wantPx) > 1e-6 {
		t.Errorf("focused pixel radius = %v, want %v", gotPx, wantPx)
	}
}
