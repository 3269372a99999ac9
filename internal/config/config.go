package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orrery/internal/body"
)

const (
	DefaultZoom   = 1.0
	DefaultSpeed  = 10.0
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultFPS    = 60
)

// Config describes one visualization instance: which bodies to load and the
// initial view. Bad orbital elements are rejected here, at load time.
type Config struct {
	System string  `yaml:"system"` // "solar", "inner", or "custom"
	Zoom   float64 `yaml:"zoom"`
	Speed  float64 `yaml:"speed"` // simulation days per wall second
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	FPS    int     `yaml:"fps"`

	ShowOrbits bool `yaml:"show_orbits"`
	ShowLabels bool `yaml:"show_labels"`
	ShowTrails bool `yaml:"show_trails"`

	// Bodies is only read when System is "custom".
	Bodies []body.CelestialBody `yaml:"bodies,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		System:     "solar",
		Zoom:       DefaultZoom,
		Speed:      DefaultSpeed,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		FPS:        DefaultFPS,
		ShowOrbits: true,
		ShowLabels: true,
	}
}

// Load reads a yaml config, layering it over the defaults, and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks view parameters and, for custom systems, every body record.
func (c *Config) Validate() error {
	switch c.System {
	case "solar", "inner":
	case "custom":
		if err := body.ValidateAll(c.Bodies); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown system %q", c.System)
	}
	if c.Zoom <= 0 {
		return fmt.Errorf("zoom must be positive, got %g", c.Zoom)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %g", c.Speed)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	return nil
}

// ResolveBodies returns the body list the config selects.
func (c *Config) ResolveBodies() []body.CelestialBody {
	switch c.System {
	case "inner":
		return body.InnerSystem()
	case "custom":
		return c.Bodies
	default:
		return body.SolarSystem()
	}
}
