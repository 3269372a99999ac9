package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/orbit"
)

// EphemerisPoint is one sampled position on a body's orbit.
type EphemerisPoint struct {
	Day float64
	X   float64 // AU
	Y   float64 // AU
	R   float64 // heliocentric distance, AU
}

// SampleEphemeris evaluates a body's position every stepDays over totalDays.
// The body must be a validated planet; sampling the star is a caller bug
// worth surfacing as an error rather than a column of zeros.
func SampleEphemeris(b body.CelestialBody, totalDays, stepDays float64) ([]EphemerisPoint, error) {
	if b.IsStar() {
		return nil, fmt.Errorf("%s: the star has no ephemeris", b.Name)
	}
	if totalDays <= 0 || stepDays <= 0 {
		return nil, fmt.Errorf("sampling window and step must be positive")
	}

	n := int(totalDays/stepDays) + 1
	pts := make([]EphemerisPoint, 0, n)
	for day := 0.0; day <= totalDays; day += stepDays {
		x, y := orbit.Position(b.SemiMajorAxisAU, b.Eccentricity,
			b.ArgPerihelionDeg, b.PeriodDays, day)
		pts = append(pts, EphemerisPoint{Day: day, X: x, Y: y, R: math.Hypot(x, y)})
	}
	return pts, nil
}

// WriteCSV streams sampled points as day,x_au,y_au,r_au rows.
func WriteCSV(w io.Writer, pts []EphemerisPoint) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"day", "x_au", "y_au", "r_au"}); err != nil {
		return err
	}
	for _, p := range pts {
		row := []string{
			strconv.FormatFloat(p.Day, 'f', 2, 64),
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			strconv.FormatFloat(p.R, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Distances projects the samples to heliocentric distance, the series the
// terminal plot shows.
func Distances(pts []EphemerisPoint) []float64 {
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p.R
	}
	return out
}
