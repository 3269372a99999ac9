package body

import (
	"fmt"
	"math"
)

// Class distinguishes the central star from the planets orbiting it.
type Class string

const (
	ClassStar   Class = "star"
	ClassPlanet Class = "planet"
)

// Ring describes ring geometry as ratios of the body's display radius plus a
// tilt that flattens the ellipse on screen.
type Ring struct {
	InnerRatio float64 `yaml:"inner_ratio"`
	OuterRatio float64 `yaml:"outer_ratio"`
	TiltDeg    float64 `yaml:"tilt_deg"`
}

// CelestialBody holds the fixed orbital elements and display attributes of
// one body. Records are immutable after configuration.
type CelestialBody struct {
	Name             string  `yaml:"name"`
	Class            Class   `yaml:"class"`
	RadiusKm         float64 `yaml:"radius_km"`
	SemiMajorAxisAU  float64 `yaml:"semi_major_axis_au"`
	Eccentricity     float64 `yaml:"eccentricity"`
	PeriodDays       float64 `yaml:"period_days"`
	ArgPerihelionDeg float64 `yaml:"arg_perihelion_deg"`
	Ring             *Ring   `yaml:"ring,omitempty"`
	Color            string  `yaml:"color"`
	AccentColor      string  `yaml:"accent_color"`
}

// IsStar reports whether the body is the central star.
func (b CelestialBody) IsStar() bool { return b.Class == ClassStar }

// Apoapsis returns the farthest heliocentric distance of the orbit in AU.
func (b CelestialBody) Apoapsis() float64 {
	return b.SemiMajorAxisAU * (1 + b.Eccentricity)
}

// PeriodYears returns the orbital period in Julian years, or 0 for the star.
func (b CelestialBody) PeriodYears() float64 {
	if b.IsStar() {
		return 0
	}
	return b.PeriodDays / 365.25
}

// VisualRadiusAU is the display radius in world AU. True-scale planets are
// sub-pixel at solar-system zoom, so radii are compressed on a square root.
func (b CelestialBody) VisualRadiusAU() float64 {
	return 0.018 * math.Sqrt(b.RadiusKm/6371.0)
}

// Validate rejects orbital elements the solver cannot handle. Only closed
// ellipses are modeled; invalid records are a configuration error, never a
// runtime one.
func (b CelestialBody) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("body has no name")
	}
	if b.Class != ClassStar && b.Class != ClassPlanet {
		return fmt.Errorf("%s: unknown class %q", b.Name, b.Class)
	}
	if b.RadiusKm <= 0 {
		return fmt.Errorf("%s: radius must be positive, got %g", b.Name, b.RadiusKm)
	}
	if b.IsStar() {
		if b.SemiMajorAxisAU != 0 {
			return fmt.Errorf("%s: star must sit at the origin (semi-major axis 0)", b.Name)
		}
		return nil
	}
	if b.SemiMajorAxisAU <= 0 {
		return fmt.Errorf("%s: semi-major axis must be positive, got %g", b.Name, b.SemiMajorAxisAU)
	}
	if b.Eccentricity < 0 || b.Eccentricity >= 1 {
		return fmt.Errorf("%s: eccentricity must be in [0,1), got %g", b.Name, b.Eccentricity)
	}
	if b.PeriodDays <= 0 {
		return fmt.Errorf("%s: period must be positive, got %g", b.Name, b.PeriodDays)
	}
	if b.Ring != nil {
		if b.Ring.InnerRatio <= 1 || b.Ring.OuterRatio <= b.Ring.InnerRatio {
			return fmt.Errorf("%s: ring ratios must satisfy 1 < inner < outer", b.Name)
		}
	}
	return nil
}

// ValidateAll checks a full system: every record valid, exactly one star,
// unique names.
func ValidateAll(bodies []CelestialBody) error {
	if len(bodies) == 0 {
		return fmt.Errorf("no bodies configured")
	}

	stars := 0
	seen := make(map[string]bool, len(bodies))
	for _, b := range bodies {
		if err := b.Validate(); err != nil {
			return err
		}
		if seen[b.Name] {
			return fmt.Errorf("duplicate body name %q", b.Name)
		}
		seen[b.Name] = true
		if b.IsStar() {
			stars++
		}
	}
	if stars != 1 {
		return fmt.Errorf("expected exactly one star, got %d", stars)
	}
	return nil
}

// MaxApoapsis returns the largest apoapsis among the bodies, used to fit the
// whole system into the viewport.
func MaxApoapsis(bodies []CelestialBody) float64 {
	max := 0.0
	for _, b := range bodies {
		if ap := b.Apoapsis(); ap > max {
			max = ap
		}
	}
	return max
}
