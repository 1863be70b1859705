package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/heatrod/internal/fourier"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDiffusivity  = 1.0
	DefaultTerms        = 30
	DefaultLength       = 1.0
	DefaultSpacePoints  = 100
	DefaultTimeEnd      = 0.5
	DefaultTimePoints   = 300
	DefaultWidth        = 600
	DefaultHeight       = 720
	DefaultFrameDelay   = 2
	DefaultMaxFrames    = 150
	DefaultHeatColumns  = 300
	DefaultHeatRows     = 100
	DefaultHeatHeight   = 0.1
	DefaultLatticeNX    = 50
	DefaultLatticeNY    = 5
	DefaultLatticeAmp   = 0.0025
	DefaultLatticeOmega = 800.0
)

type Config struct {
	Name         string        `yaml:"name"`
	Coefficients string        `yaml:"coefficients"`
	Profile      string        `yaml:"profile"`
	Boundary     string        `yaml:"boundary"`
	Diffusivity  float64       `yaml:"diffusivity"`
	Terms        int           `yaml:"terms"`
	Length       float64       `yaml:"length"`
	Seed         int64         `yaml:"seed"`
	Workers      int           `yaml:"workers"`
	Space        SpaceConfig   `yaml:"space"`
	Time         TimeConfig    `yaml:"time"`
	Render       RenderConfig  `yaml:"render"`
	Lattice      LatticeConfig `yaml:"lattice"`
}

type SpaceConfig struct {
	Points int `yaml:"points"`
}

// TimeConfig samples [0, End] with Points samples. End is in units of the
// diffusion time L^2/D.
type TimeConfig struct {
	End    float64 `yaml:"end"`
	Points int     `yaml:"points"`
}

type RenderConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	FrameDelay  int     `yaml:"frame_delay"`
	MaxFrames   int     `yaml:"max_frames"`
	HeatColumns int     `yaml:"heat_columns"`
	HeatRows    int     `yaml:"heat_rows"`
	HeatHeight  float64 `yaml:"heat_height"`
	VMin        float64 `yaml:"vmin"`
	VMax        float64 `yaml:"vmax"`
}

type LatticeConfig struct {
	NX        int     `yaml:"nx"`
	NY        int     `yaml:"ny"`
	Amplitude float64 `yaml:"amplitude"`
	Omega0    float64 `yaml:"omega0"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:         "dirichlet_bump",
		Coefficients: "dirichlet_bump",
		Boundary:     "dirichlet",
		Diffusivity:  DefaultDiffusivity,
		Terms:        DefaultTerms,
		Length:       DefaultLength,
		Workers:      1,
		Space:        SpaceConfig{Points: DefaultSpacePoints},
		Time:         TimeConfig{End: DefaultTimeEnd, Points: DefaultTimePoints},
		Render: RenderConfig{
			Width:       DefaultWidth,
			Height:      DefaultHeight,
			FrameDelay:  DefaultFrameDelay,
			MaxFrames:   DefaultMaxFrames,
			HeatColumns: DefaultHeatColumns,
			HeatRows:    DefaultHeatRows,
			HeatHeight:  DefaultHeatHeight,
			VMin:        0,
			VMax:        1,
		},
		Lattice: LatticeConfig{
			NX:        DefaultLatticeNX,
			NY:        DefaultLatticeNY,
			Amplitude: DefaultLatticeAmp,
			Omega0:    DefaultLatticeOmega,
		},
	}
}

// Load reads a yaml (.yaml, .yml) or ini (.ini) file over the defaults.
func Load(path string) (*Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini":
		return loadINI(path)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		cfg := DefaultConfig()
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func loadINI(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, err
	}

	d := DefaultConfig()
	rod := file.Section("rod")
	tm := file.Section("time")
	render := file.Section("render")
	lattice := file.Section("lattice")

	return &Config{
		Name:         rod.Key("name").MustString(d.Name),
		Coefficients: rod.Key("coefficients").MustString(d.Coefficients),
		Profile:      rod.Key("profile").MustString(d.Profile),
		Boundary:     rod.Key("boundary").MustString(d.Boundary),
		Diffusivity:  rod.Key("diffusivity").MustFloat64(d.Diffusivity),
		Terms:        rod.Key("terms").MustInt(d.Terms),
		Length:       rod.Key("length").MustFloat64(d.Length),
		Seed:         rod.Key("seed").MustInt64(d.Seed),
		Workers:      rod.Key("workers").MustInt(d.Workers),
		Space: SpaceConfig{
			Points: rod.Key("points").MustInt(d.Space.Points),
		},
		Time: TimeConfig{
			End:    tm.Key("end").MustFloat64(d.Time.End),
			Points: tm.Key("points").MustInt(d.Time.Points),
		},
		Render: RenderConfig{
			Width:       render.Key("width").MustInt(d.Render.Width),
			Height:      render.Key("height").MustInt(d.Render.Height),
			FrameDelay:  render.Key("frame_delay").MustInt(d.Render.FrameDelay),
			MaxFrames:   render.Key("max_frames").MustInt(d.Render.MaxFrames),
			HeatColumns: render.Key("heat_columns").MustInt(d.Render.HeatColumns),
			HeatRows:    render.Key("heat_rows").MustInt(d.Render.HeatRows),
			HeatHeight:  render.Key("heat_height").MustFloat64(d.Render.HeatHeight),
			VMin:        render.Key("vmin").MustFloat64(d.Render.VMin),
			VMax:        render.Key("vmax").MustFloat64(d.Render.VMax),
		},
		Lattice: LatticeConfig{
			NX:        lattice.Key("nx").MustInt(d.Lattice.NX),
			NY:        lattice.Key("ny").MustInt(d.Lattice.NY),
			Amplitude: lattice.Key("amplitude").MustFloat64(d.Lattice.Amplitude),
			Omega0:    lattice.Key("omega0").MustFloat64(d.Lattice.Omega0),
		},
	}, nil
}

// BoundaryKind parses the boundary tag.
func (c *Config) BoundaryKind() (fourier.Boundary, error) {
	return fourier.ParseBoundary(c.Boundary)
}

// Validate checks ranges that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if _, err := c.BoundaryKind(); err != nil {
		return err
	}
	if c.Coefficients == "" && c.Profile == "" {
		return fmt.Errorf("config: one of coefficients or profile is required")
	}
	if c.Diffusivity <= 0 {
		return fmt.Errorf("config: diffusivity must be positive, got %v", c.Diffusivity)
	}
	if c.Terms <= 0 {
		return fmt.Errorf("config: terms must be positive, got %d", c.Terms)
	}
	if c.Length <= 0 {
		return fmt.Errorf("config: length must be positive, got %v", c.Length)
	}
	if c.Space.Points < 2 {
		return fmt.Errorf("config: space.points must be at least 2, got %d", c.Space.Points)
	}
	if c.Time.Points < 1 {
		return fmt.Errorf("config: time.points must be at least 1, got %d", c.Time.Points)
	}
	if c.Time.End < 0 {
		return fmt.Errorf("config: time.end must not be negative, got %v", c.Time.End)
	}
	if c.Render.VMax <= c.Render.VMin {
		return fmt.Errorf("config: render.vmax must exceed render.vmin")
	}
	return nil
}
