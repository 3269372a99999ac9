package scene

import "fmt"

// FocusInfo is the display surface for the focused body, consumed by the
// host UI panels.
type FocusInfo struct {
	Name            string
	Class           string
	RadiusKm        float64
	SemiMajorAxisAU float64
	PeriodYears     float64
}

// FocusInfo returns the current focused body's display facts.
func (s *Scene) FocusInfo() FocusInfo {
	b := s.Bodies[s.Focused]
	return FocusInfo{
		Name:            b.Name,
		Class:           string(b.Class),
		RadiusKm:        b.RadiusKm,
		SemiMajorAxisAU: b.SemiMajorAxisAU,
		PeriodYears:     b.PeriodYears(),
	}
}

// SpeedLabel renders the clock speed as prose, e.g. "1 day every 3.2 sec" at
// slow speeds or "120 days per sec" at fast ones.
func (s *Scene) SpeedLabel() string {
	speed := s.Clock.Speed
	if speed < 1 {
		return fmt.Sprintf("1 day every %.1f sec", 1/speed)
	}
	if speed < 10 {
		return fmt.Sprintf("%.1f days per sec", speed)
	}
	return fmt.Sprintf("%.0f days per sec", speed)
}

// ZoomLabel renders the zoom multiplier, e.g. "250x zoom".
func (s *Scene) ZoomLabel() string {
	zoom := s.Camera.Zoom
	if zoom < 10 {
		return fmt.Sprintf("%.1fx zoom", zoom)
	}
	return fmt.Sprintf("%.0fx zoom", zoom)
}

// DayLabel renders elapsed simulation time.
func (s *Scene) DayLabel() string {
	days := s.Clock.ElapsedDays
	if days < 730 {
		return fmt.Sprintf("day %.0f", days)
	}
	return fmt.Sprintf("year %.1f", days/365.25)
}
