package config

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Terms != 30 {
		t.Errorf("expected 30 terms, got %d", cfg.Terms)
	}
	if cfg.Diffusivity != 1 {
		t.Errorf("expected unit diffusivity, got %v", cfg.Diffusivity)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("neumann_cosine")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Boundary != "neumann" {
		t.Errorf("expected neumann, got %s", cfg.Boundary)
	}
	if cfg.Space.Points != DefaultSpacePoints {
		t.Errorf("expected defaults to fill unset fields, got %d points", cfg.Space.Points)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset invalid: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	sort.Strings(names)
	want := []string{"dirichlet_bump", "dirichlet_step", "neumann_cosine", "neumann_ramp"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("preset %d = %s, want %s", i, names[i], want[i])
		}
		if err := GetPreset(names[i]).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", names[i], err)
		}
	}
}

func TestSaveLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rod.yaml")
	cfg := DefaultConfig()
	cfg.Boundary = "neumann"
	cfg.Terms = 12
	cfg.Lattice.Omega0 = 400

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Boundary != "neumann" || got.Terms != 12 || got.Lattice.Omega0 != 400 {
		t.Errorf("round trip lost values: %+v", got)
	}
}

func TestLoadYAML_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rod.yml")
	if err := os.WriteFile(path, []byte("boundary: neumann\ntime:\n  end: 0.2\n  points: 50\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Time.Points != 50 || cfg.Terms != DefaultTerms {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadINI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rod.ini")
	body := `[rod]
boundary = neumann
coefficients = neumann_cosine
diffusivity = 0.5
terms = 20

[time]
end = 0.1
points = 40

[lattice]
omega0 = 100
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Boundary != "neumann" || cfg.Diffusivity != 0.5 || cfg.Terms != 20 {
		t.Errorf("rod section not applied: %+v", cfg)
	}
	if cfg.Time.End != 0.1 || cfg.Time.Points != 40 {
		t.Errorf("time section not applied: %+v", cfg.Time)
	}
	if cfg.Lattice.Omega0 != 100 || cfg.Lattice.NX != DefaultLatticeNX {
		t.Errorf("lattice section not applied: %+v", cfg.Lattice)
	}
	if cfg.Render.Width != DefaultWidth {
		t.Errorf("expected default width, got %d", cfg.Render.Width)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown boundary", func(c *Config) { c.Boundary = "robin" }},
		{"zero diffusivity", func(c *Config) { c.Diffusivity = 0 }},
		{"zero terms", func(c *Config) { c.Terms = 0 }},
		{"zero length", func(c *Config) { c.Length = 0 }},
		{"one space point", func(c *Config) { c.Space.Points = 1 }},
		{"negative end", func(c *Config) { c.Time.End = -1 }},
		{"no coefficients", func(c *Config) { c.Coefficients, c.Profile = "", "" }},
		{"inverted colour range", func(c *Config) { c.Render.VMin, c.Render.VMax = 1, 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
