package config

var Presets = map[string]*Config{
	"default": {
		System: "solar", Zoom: 1.0, Speed: 10.0,
		Width: 1280, Height: 720, FPS: 60,
		ShowOrbits: true, ShowLabels: true,
	},
	"inner": {
		System: "inner", Zoom: 1.0, Speed: 2.0,
		Width: 1280, Height: 720, FPS: 60,
		ShowOrbits: true, ShowLabels: true,
	},
	"grand-tour": {
		System: "solar", Zoom: 1.0, Speed: 365.25,
		Width: 1280, Height: 720, FPS: 60,
		ShowOrbits: true, ShowLabels: true, ShowTrails: true,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
