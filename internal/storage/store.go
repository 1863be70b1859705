package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/heatrod/internal/config"
	"github.com/san-kum/heatrod/internal/experiment"
	log "github.com/sirupsen/logrus"
)

var ErrUnknownField = errors.New("storage: unknown field")

// Field names one of the stored grids.
type Field string

const (
	Temperature Field = "temperature"
	Flux        Field = "flux"
)

func (f Field) file() (string, error) {
	switch f {
	case Temperature, Flux:
		return string(f) + ".csv", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, string(f))
}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Timestamp    time.Time          `json:"timestamp"`
	Boundary     string             `json:"boundary"`
	Coefficients string             `json:"coefficients,omitempty"`
	Profile      string             `json:"profile,omitempty"`
	Diffusivity  float64            `json:"diffusivity"`
	Terms        int                `json:"terms"`
	Length       float64            `json:"length"`
	Seed         int64              `json:"seed"`
	SpacePoints  int                `json:"space_points"`
	TimePoints   int                `json:"time_points"`
	ElapsedMS    float64            `json:"elapsed_ms"`
	Metrics      map[string]float64 `json:"metrics"`
}

// Save writes a run directory holding metadata.json, temperature.csv and
// flux.csv and returns its id.
func (s *Store) Save(cfg *config.Config, res *experiment.Result) (string, error) {
	now := time.Now()
	runID, runDir, err := s.newRunDir(res.Name, now)
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Name:         res.Name,
		Timestamp:    now,
		Boundary:     res.Boundary.String(),
		Coefficients: cfg.Coefficients,
		Profile:      cfg.Profile,
		Diffusivity:  cfg.Diffusivity,
		Terms:        cfg.Terms,
		Length:       res.Length,
		Seed:         cfg.Seed,
		SpacePoints:  len(res.Space),
		TimePoints:   len(res.Times),
		ElapsedMS:    float64(res.Elapsed.Microseconds()) / 1000,
		Metrics:      res.Metrics,
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeGridFile(filepath.Join(runDir, "temperature.csv"), res.Space, res.Times, res.Temperature); err != nil {
		return "", err
	}
	if err := writeGridFile(filepath.Join(runDir, "flux.csv"), res.Space, res.Times, res.Flux); err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"id":  runID,
		"dir": runDir,
	}).Info("run saved")
	return runID, nil
}

func (s *Store) newRunDir(name string, now time.Time) (string, string, error) {
	if err := s.Init(); err != nil {
		return "", "", err
	}
	base := fmt.Sprintf("%s_%d", name, now.Unix())
	runID := base
	for i := 2; ; i++ {
		dir := filepath.Join(s.baseDir, runID)
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return runID, dir, nil
		}
		if !os.IsExist(err) {
			return "", "", err
		}
		runID = fmt.Sprintf("%s_%d", base, i)
	}
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// List returns the metadata of every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			log.WithField("dir", entry.Name()).Debug("skipping unreadable run")
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadGrid reads one stored grid back.
func (s *Store) LoadGrid(runID string, field Field) (*Grid, error) {
	name, err := field.file()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(s.baseDir, runID, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadGrid(f)
}
