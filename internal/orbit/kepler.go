package orbit

import "math"

const (
	twoPi = 2 * math.Pi

	// Newton-Raphson bounds. The iteration cap guarantees termination for
	// any eccentricity; the residual it leaves for near-parabolic orbits is
	// below rendering precision.
	maxIterations = 12
	tolerance     = 1e-8

	// Above this eccentricity the standard E0 = M guess can diverge, so the
	// iteration starts from pi instead.
	highEccentricity = 0.8
)

// Position returns the heliocentric orbit-plane position in AU of a body with
// semi-major axis a (AU), eccentricity e, argument of perihelion argPeriDeg
// (degrees) and orbital period periodDays, after elapsedDays of simulation
// time. The central star (a == 0) stays at the origin.
func Position(a, e, argPeriDeg, periodDays, elapsedDays float64) (x, y float64) {
	if a == 0 {
		return 0, 0
	}

	w := argPeriDeg * math.Pi / 180

	if e == 0 {
		theta := twoPi * math.Mod(elapsedDays, periodDays) / periodDays
		return a * math.Cos(theta+w), a * math.Sin(theta+w)
	}

	M := normalizeAngle(twoPi * elapsedDays / periodDays)
	E := eccentricAnomaly(M, e)

	px := a * (math.Cos(E) - e)
	py := a * math.Sqrt(1-e*e) * math.Sin(E)

	sinW, cosW := math.Sincos(w)
	return px*cosW - py*sinW, px*sinW + py*cosW
}

// EllipsePoint returns the point on the orbit ellipse at eccentric anomaly E,
// rotated by the argument of perihelion. Orbit paths are drawn by sweeping E
// through [0, 2pi) rather than by stepping time, so the polyline density is
// uniform regardless of period.
func EllipsePoint(a, e, argPeriDeg, E float64) (x, y float64) {
	px := a * (math.Cos(E) - e)
	py := a * math.Sqrt(1-e*e) * math.Sin(E)

	w := argPeriDeg * math.Pi / 180
	sinW, cosW := math.Sincos(w)
	return px*cosW - py*sinW, px*sinW + py*cosW
}

// eccentricAnomaly solves Kepler's equation E - e*sin(E) = M by
// Newton-Raphson iteration. M must already be normalized to [0, 2pi).
func eccentricAnomaly(M, e float64) float64 {
	E := M
	if e >= highEccentricity {
		E = math.Pi
	}

	for i := 0; i < maxIterations; i++ {
		f := E - e*math.Sin(E) - M
		fp := 1 - e*math.Cos(E)
		delta := f / fp
		E -= delta

		if math.Abs(delta) < tolerance {
			break
		}
	}

	return E
}

func normalizeAngle(angle float64) float64 {
	wrapped := math.Mod(angle, twoPi)
	if wrapped < 0 {
		wrapped += twoPi
	}
	return wrapped
}
