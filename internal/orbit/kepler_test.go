package orbit_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/orbit"
)

var _ = Describe("Position", func() {
	It("keeps the star at the origin for any elapsed time", func() {
		for _, days := range []float64{0, 1, 365.25, 1e6} {
			x, y := orbit.Position(0, 0, 0, math.Inf(1), days)
			Expect(x).To(BeZero())
			Expect(y).To(BeZero())
		}
	})

	It("returns finite coordinates across elements and times", func() {
		times := []float64{0, 0.5, 88, 365.25, 4332.59, 90560, 1e7}
		for _, e := range []float64{0, 0.0167, 0.2056, 0.5, 0.8, 0.95, 0.999} {
			for _, w := range []float64{0, 77.5, 180, 336} {
				for _, t := range times {
					x, y := orbit.Position(1.524, e, w, 686.97, t)
					Expect(math.IsNaN(x) || math.IsInf(x, 0)).To(BeFalse())
					Expect(math.IsNaN(y) || math.IsInf(y, 0)).To(BeFalse())
				}
			}
		}
	})

	It("traces an exact circle when eccentricity is zero", func() {
		a := 5.204
		for t := 0.0; t < 4332.59; t += 137.0 {
			x, y := orbit.Position(a, 0, 102.9, 4332.59, t)
			Expect(math.Hypot(x, y)).To(BeNumerically("~", a, 1e-12))
		}
	})

	It("passes through periapsis at distance a(1-e)", func() {
		a, e := 0.387, 0.2056
		// Mean anomaly 0 is periapsis by construction.
		x, y := orbit.Position(a, e, 29.1, 87.97, 0)
		Expect(math.Hypot(x, y)).To(BeNumerically("~", a*(1-e), 1e-9))
	})

	It("passes through apoapsis at distance a(1+e) half a period later", func() {
		a, e, period := 0.387, 0.2056, 87.97
		x, y := orbit.Position(a, e, 29.1, period, period/2)
		Expect(math.Hypot(x, y)).To(BeNumerically("~", a*(1+e), 1e-6))
	})

	It("never exceeds the apsis bounds", func() {
		a, e, period := 1.0, 0.95, 365.25
		for t := 0.0; t < 2*period; t += 0.7 {
			x, y := orbit.Position(a, e, 45, period, t)
			r := math.Hypot(x, y)
			Expect(r).To(BeNumerically(">=", a*(1-e)-1e-6))
			Expect(r).To(BeNumerically("<=", a*(1+e)+1e-6))
		}
	})

	It("reproduces the Earth epoch fixed point", func() {
		a, e, w := 1.0, 0.0167, 102.9
		x, y := orbit.Position(a, e, w, 365.25, 0)

		wRad := w * math.Pi / 180
		r := a * (1 - e)
		Expect(x).To(BeNumerically("~", r*math.Cos(wRad), 1e-9))
		Expect(y).To(BeNumerically("~", r*math.Sin(wRad), 1e-9))
	})

	It("is periodic over a full orbit", func() {
		a, e, period := 9.583, 0.0565, 10759.22
		x0, y0 := orbit.Position(a, e, 339.4, period, 123.0)
		x1, y1 := orbit.Position(a, e, 339.4, period, 123.0+period)
		Expect(x1).To(BeNumerically("~", x0, 1e-6))
		Expect(y1).To(BeNumerically("~", y0, 1e-6))
	})
})

var _ = Describe("EllipsePoint", func() {
	It("closes the sampled orbit path", func() {
		a, e, w := 30.07, 0.0113, 276.3
		x0, y0 := orbit.EllipsePoint(a, e, w, 0)
		x1, y1 := orbit.EllipsePoint(a, e, w, 2*math.Pi)
		Expect(x1).To(BeNumerically("~", x0, 1e-9))
		Expect(y1).To(BeNumerically("~", y0, 1e-9))
	})

	It("spans periapsis to apoapsis", func() {
		a, e := 17.8, 0.967 // rough 1P/Halley shape
		xp, yp := orbit.EllipsePoint(a, e, 0, 0)
		xa, ya := orbit.EllipsePoint(a, e, 0, math.Pi)
		Expect(math.Hypot(xp, yp)).To(BeNumerically("~", a*(1-e), 1e-9))
		Expect(math.Hypot(xa, ya)).To(BeNumerically("~", a*(1+e), 1e-9))
	})
})
