// Package scene ties the body list, orbit solver, camera and clock into one
// simulation context owned by a single visualization instance. All mutation
// happens from the host's frame and input callbacks on one goroutine; within
// a frame the clock advances first, then the camera transition resolves, then
// body positions are computed, so renderers never see a stale mix.
package scene

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/clock"
	"github.com/san-kum/orrery/internal/orbit"
)

const (
	// OrbitSegments is the polyline resolution of a drawn orbit path.
	OrbitSegments = 256

	minHitRadiusPx = 8.0
	hitMarginPx    = 4.0
	minBodyPx      = 2.0
)

// Scene is the simulation context.
type Scene struct {
	Bodies []body.CelestialBody
	Camera *camera.Camera
	Clock  *clock.Clock

	Focused    int
	ShowOrbits bool
	ShowLabels bool
	ShowTrails bool

	trails      []Trail
	positions   [][2]float64
	starIndex   int
	initialZoom float64
	lastNowMs   float64
}

// New validates the body list and builds a scene fitted to the viewport.
// Invalid orbital elements are rejected here, never at solve time.
func New(bodies []body.CelestialBody, viewportW, viewportH, zoom, speed float64) (*Scene, error) {
	if err := body.ValidateAll(bodies); err != nil {
		return nil, fmt.Errorf("invalid body configuration: %w", err)
	}

	s := &Scene{
		Bodies:      bodies,
		Camera:      camera.New(viewportW, viewportH, body.MaxApoapsis(bodies), zoom),
		Clock:       clock.New(speed),
		ShowOrbits:  true,
		ShowLabels:  true,
		ShowTrails:  false,
		trails:      make([]Trail, len(bodies)),
		positions:   make([][2]float64, len(bodies)),
		initialZoom: zoom,
	}
	for i, b := range bodies {
		if b.IsStar() {
			s.starIndex = i
			break
		}
	}
	s.Focused = s.starIndex
	return s, nil
}

// Step advances the scene to nowMs: clock first, then the camera transition,
// then body positions and trails. Renderers read positions computed here.
func (s *Scene) Step(nowMs float64) {
	s.lastNowMs = nowMs
	s.Clock.Tick(nowMs)
	s.Camera.Advance(nowMs)

	for i, b := range s.Bodies {
		x, y := orbit.Position(b.SemiMajorAxisAU, b.Eccentricity,
			b.ArgPerihelionDeg, b.PeriodDays, s.Clock.ElapsedDays)
		s.positions[i] = [2]float64{x, y}

		if s.ShowTrails && !b.IsStar() {
			px, py := s.Camera.ToScreen(x, y)
			s.trails[i].Push(px, py)
		}
	}
}

// BodyWorld returns the body's orbit-plane position from the last Step.
func (s *Scene) BodyWorld(i int) (x, y float64) {
	return s.positions[i][0], s.positions[i][1]
}

// BodyScreen returns the body's screen position from the last Step.
func (s *Scene) BodyScreen(i int) (px, py float64) {
	return s.Camera.ToScreen(s.positions[i][0], s.positions[i][1])
}

// BodyPixelRadius returns the drawn disk radius in pixels, never below the
// minimum that keeps a body clickable.
func (s *Scene) BodyPixelRadius(i int) float64 {
	r := s.Bodies[i].VisualRadiusAU() * s.Camera.Scale()
	return math.Max(r, minBodyPx)
}

// Trail exposes the ring buffer for a body.
func (s *Scene) Trail(i int) *Trail { return &s.trails[i] }

// OrbitPath samples the body's orbit ellipse as a closed polyline in world
// coordinates. The path is geometric, not time-stepped, so the segment count
// fixes its resolution for any period.
func (s *Scene) OrbitPath(i, segments int) [][2]float64 {
	b := s.Bodies[i]
	if b.IsStar() {
		return nil
	}
	pts := make([][2]float64, segments+1)
	for k := 0; k <= segments; k++ {
		E := 2 * math.Pi * float64(k) / float64(segments)
		x, y := orbit.EllipsePoint(b.SemiMajorAxisAU, b.Eccentricity, b.ArgPerihelionDeg, E)
		pts[k] = [2]float64{x, y}
	}
	return pts
}

// Pick returns the index of the closest body whose screen distance from the
// pointer is within max(minimum hit radius, pixel radius + margin), or -1.
// Ties resolve to list order.
func (s *Scene) Pick(px, py float64) int {
	best := -1
	bestDist := math.MaxFloat64
	for i := range s.Bodies {
		bx, by := s.BodyScreen(i)
		dist := math.Hypot(px-bx, py-by)
		hit := math.Max(minHitRadiusPx, s.BodyPixelRadius(i)+hitMarginPx)
		if dist <= hit && dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

// FocusOn focuses the named body, falling back to the star when the name is
// unknown. Matching is case-insensitive.
func (s *Scene) FocusOn(name string, animate bool) {
	idx := s.starIndex
	for i, b := range s.Bodies {
		if strings.EqualFold(b.Name, name) {
			idx = i
			break
		}
	}
	s.FocusIndex(idx, animate)
}

// FocusIndex focuses the body at i; out-of-range indices are ignored. When
// animating, a 500ms eased transition replaces any transition in flight.
func (s *Scene) FocusIndex(i int, animate bool) {
	if i < 0 || i >= len(s.Bodies) {
		return
	}
	s.Focused = i

	b := s.Bodies[i]
	fraction := camera.FocusFractionPlanet
	if b.IsStar() {
		fraction = camera.FocusFractionStar
	}

	x, y := s.BodyWorld(i)
	zoom := s.Camera.FocusZoom(b.VisualRadiusAU(), fraction)

	if animate {
		s.Camera.StartTransition(camera.Snapshot{X: x, Y: y, Zoom: zoom}, s.lastNowMs)
	} else {
		s.Camera.Center(x, y, zoom)
	}
}

// FitAll rescales so every orbit fits the viewport. Idempotent; safe to call
// on every resize event.
func (s *Scene) FitAll() {
	s.Camera.FitAll(body.MaxApoapsis(s.Bodies))
}

// Resize updates the viewport and refits. A transition in flight keeps its
// old target zoom; the slightly off framing it may land on is accepted.
func (s *Scene) Resize(w, h float64) {
	s.Camera.Resize(w, h)
	s.FitAll()
}

// Reset restores the initial view: day zero, star focus, default zoom,
// cleared trails.
func (s *Scene) Reset() {
	s.Clock.Reset()
	s.Camera.Center(0, 0, s.initialZoom)
	s.Focused = s.starIndex
	s.Step(s.lastNowMs)
	for i := range s.trails {
		s.trails[i].Reset()
	}
}

// ClearTrails drops all trail points, used when toggling trails back on.
func (s *Scene) ClearTrails() {
	for i := range s.trails {
		s.trails[i].Reset()
	}
}
