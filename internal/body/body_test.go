package body

import (
	"strings"
	"testing"
)

func TestSolarSystemValid(t *testing.T) {
	if err := ValidateAll(SolarSystem()); err != nil {
		t.Fatalf("built-in system should validate: %v", err)
	}
	if err := ValidateAll(InnerSystem()); err != nil {
		t.Fatalf("inner system should validate: %v", err)
	}
}

func TestValidateRejectsBadElements(t *testing.T) {
	base := CelestialBody{
		Name: "X", Class: ClassPlanet, RadiusKm: 1000,
		SemiMajorAxisAU: 1, Eccentricity: 0.1, PeriodDays: 100,
	}

	tests := []struct {
		name   string
		mutate func(*CelestialBody)
		want   string
	}{
		{"parabolic", func(b *CelestialBody) { b.Eccentricity = 1.0 }, "eccentricity"},
		{"hyperbolic", func(b *CelestialBody) { b.Eccentricity = 1.7 }, "eccentricity"},
		{"negative eccentricity", func(b *CelestialBody) { b.Eccentricity = -0.1 }, "eccentricity"},
		{"zero period", func(b *CelestialBody) { b.PeriodDays = 0 }, "period"},
		{"negative period", func(b *CelestialBody) { b.PeriodDays = -10 }, "period"},
		{"zero axis", func(b *CelestialBody) { b.SemiMajorAxisAU = 0 }, "semi-major"},
		{"zero radius", func(b *CelestialBody) { b.RadiusKm = 0 }, "radius"},
		{"bad class", func(b *CelestialBody) { b.Class = "asteroid" }, "class"},
		{"bad ring", func(b *CelestialBody) { b.Ring = &Ring{InnerRatio: 2, OuterRatio: 1.5} }, "ring"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := base
			tt.mutate(&b)
			err := b.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateStar(t *testing.T) {
	star := CelestialBody{Name: "Sol", Class: ClassStar, RadiusKm: 696000}
	if err := star.Validate(); err != nil {
		t.Fatalf("star should validate: %v", err)
	}

	star.SemiMajorAxisAU = 0.5
	if err := star.Validate(); err == nil {
		t.Error("star off the origin should be rejected")
	}
}

func TestValidateAllStructure(t *testing.T) {
	if err := ValidateAll(nil); err == nil {
		t.Error("empty system should be rejected")
	}

	planetOnly := []CelestialBody{{
		Name: "Lonely", Class: ClassPlanet, RadiusKm: 1000,
		SemiMajorAxisAU: 1, PeriodDays: 100,
	}}
	if err := ValidateAll(planetOnly); err == nil {
		t.Error("system without a star should be rejected")
	}

	dupe := SolarSystem()
	dupe[2].Name = dupe[1].Name
	if err := ValidateAll(dupe); err == nil {
		t.Error("duplicate names should be rejected")
	}
}

func TestMaxApoapsis(t *testing.T) {
	sys := SolarSystem()
	got := MaxApoapsis(sys)
	want := 30.07 * (1 + 0.0113) // Neptune
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("max apoapsis = %v, want %v", got, want)
	}
}

func TestVisualRadiusOrdering(t *testing.T) {
	sys := SolarSystem()
	sun, earth := sys[0], sys[3]
	if sun.VisualRadiusAU() <= earth.VisualRadiusAU() {
		t.Error("star should render larger than a planet")
	}
	if earth.VisualRadiusAU() <= 0 {
		t.Error("visual radius must be positive")
	}
}
