package body

// SolarSystem returns the Sun and the eight planets with J2000 mean orbital
// elements. Arguments of perihelion are given as longitude of perihelion
// projected onto the ecliptic, which is what a coplanar 2D scene renders.
func SolarSystem() []CelestialBody {
	return []CelestialBody{
		{
			Name:        "Sun",
			Class:       ClassStar,
			RadiusKm:    696000,
			Color:       "#FDB813",
			AccentColor: "#FFF4D6",
		},
		{
			Name:             "Mercury",
			Class:            ClassPlanet,
			RadiusKm:         2439.7,
			SemiMajorAxisAU:  0.387,
			Eccentricity:     0.2056,
			PeriodDays:       87.97,
			ArgPerihelionDeg: 77.46,
			Color:            "#B5B5B5",
			AccentColor:      "#E0E0E0",
		},
		{
			Name:             "Venus",
			Class:            ClassPlanet,
			RadiusKm:         6051.8,
			SemiMajorAxisAU:  0.723,
			Eccentricity:     0.0068,
			PeriodDays:       224.70,
			ArgPerihelionDeg: 131.53,
			Color:            "#E8CDA2",
			AccentColor:      "#F5E6C8",
		},
		{
			Name:             "Earth",
			Class:            ClassPlanet,
			RadiusKm:         6371,
			SemiMajorAxisAU:  1.000,
			Eccentricity:     0.0167,
			PeriodDays:       365.25,
			ArgPerihelionDeg: 102.94,
			Color:            "#2E86AB",
			AccentColor:      "#7FC8E8",
		},
		{
			Name:             "Mars",
			Class:            ClassPlanet,
			RadiusKm:         3389.5,
			SemiMajorAxisAU:  1.524,
			Eccentricity:     0.0934,
			PeriodDays:       686.97,
			ArgPerihelionDeg: 336.04,
			Color:            "#C1440E",
			AccentColor:      "#E8845A",
		},
		{
			Name:             "Jupiter",
			Class:            ClassPlanet,
			RadiusKm:         69911,
			SemiMajorAxisAU:  5.204,
			Eccentricity:     0.0490,
			PeriodDays:       4332.59,
			ArgPerihelionDeg: 14.75,
			Color:            "#C88B3A",
			AccentColor:      "#E8C48A",
		},
		{
			Name:             "Saturn",
			Class:            ClassPlanet,
			RadiusKm:         58232,
			SemiMajorAxisAU:  9.583,
			Eccentricity:     0.0565,
			PeriodDays:       10759.22,
			ArgPerihelionDeg: 92.43,
			Ring:             &Ring{InnerRatio: 1.24, OuterRatio: 2.27, TiltDeg: 27},
			Color:            "#E4D191",
			AccentColor:      "#F0E4BC",
		},
		{
			Name:             "Uranus",
			Class:            ClassPlanet,
			RadiusKm:         25362,
			SemiMajorAxisAU:  19.191,
			Eccentricity:     0.0472,
			PeriodDays:       30688.5,
			ArgPerihelionDeg: 170.96,
			Ring:             &Ring{InnerRatio: 1.64, OuterRatio: 1.95, TiltDeg: 8},
			Color:            "#A6D8D4",
			AccentColor:      "#D2F0ED",
		},
		{
			Name:             "Neptune",
			Class:            ClassPlanet,
			RadiusKm:         24622,
			SemiMajorAxisAU:  30.07,
			Eccentricity:     0.0113,
			PeriodDays:       60182,
			ArgPerihelionDeg: 44.97,
			Color:            "#4A6FB5",
			AccentColor:      "#8FA8D8",
		},
	}
}

// InnerSystem returns the Sun and the four terrestrial planets, a tighter
// default for small viewports.
func InnerSystem() []CelestialBody {
	return SolarSystem()[:5]
}
