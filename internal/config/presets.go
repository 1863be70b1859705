package config

// Presets cover the bump and cosine demo animations plus two extra
// initial profiles. Values not listed fall back to DefaultConfig.
var Presets = map[string]*Config{
	"dirichlet_bump": {
		Name: "dirichlet_bump", Coefficients: "dirichlet_bump", Boundary: "dirichlet",
		Time:   TimeConfig{End: 0.5, Points: 900},
		Render: RenderConfig{VMin: 0, VMax: 1},
	},
	"neumann_cosine": {
		Name: "neumann_cosine", Coefficients: "neumann_cosine", Boundary: "neumann",
		Time:   TimeConfig{End: 0.15, Points: 300},
		Render: RenderConfig{VMin: 0, VMax: 1},
	},
	"dirichlet_step": {
		Name: "dirichlet_step", Coefficients: "dirichlet_step", Boundary: "dirichlet", Terms: 60,
		Time:   TimeConfig{End: 0.3, Points: 300},
		Render: RenderConfig{VMin: 0, VMax: 1.2},
	},
	"neumann_ramp": {
		Name: "neumann_ramp", Coefficients: "neumann_ramp", Boundary: "neumann",
		Time:   TimeConfig{End: 0.2, Points: 300},
		Render: RenderConfig{VMin: 0, VMax: 1},
	},
}

// GetPreset returns a full config for the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Name = p.Name
	cfg.Coefficients = p.Coefficients
	cfg.Boundary = p.Boundary
	if p.Terms > 0 {
		cfg.Terms = p.Terms
	}
	cfg.Time = p.Time
	cfg.Render.VMin, cfg.Render.VMax = p.Render.VMin, p.Render.VMax
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
