package experiment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/san-kum/heatrod/internal/coeffs"
	"github.com/san-kum/heatrod/internal/config"
	"github.com/san-kum/heatrod/internal/fourier"
	"github.com/san-kum/heatrod/internal/metrics"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrBoundaryMismatch reports a coefficient set used with the other
// boundary family.
var ErrBoundaryMismatch = errors.New("experiment: coefficient set does not match boundary")

// Result holds one evaluated rod. Space and Times are in physical units;
// the grids are indexed [space, time].
type Result struct {
	Name        string
	Boundary    fourier.Boundary
	Length      float64
	Space       []float64
	Times       []float64
	Temperature *mat.Dense
	Flux        *mat.Dense
	Metrics     map[string]float64
	Elapsed     time.Duration

	// Solution works in the unit-length frame: positions are x/Length and
	// times are t/Length^2.
	Solution *fourier.Solution
}

// MeanTemperature returns the spatial mean of each time column.
func (r *Result) MeanTemperature() []float64 {
	rows, cols := r.Temperature.Dims()
	out := make([]float64, cols)
	col := make([]float64, rows)
	for j := range out {
		mat.Col(col, j, r.Temperature)
		out[j] = metrics.SpatialMean(r.Space, col)
	}
	return out
}

type Experiment struct {
	cfg      *config.Config
	registry *coeffs.Registry
}

func New(cfg *config.Config, registry *coeffs.Registry) *Experiment {
	if registry == nil {
		registry = coeffs.NewRegistry()
	}
	return &Experiment{cfg: cfg, registry: registry}
}

// Coefficients resolves the configured coefficient source: a projected
// profile when one is named, otherwise a registered set.
func (e *Experiment) Coefficients(b fourier.Boundary) (fourier.Coefficients, error) {
	if e.cfg.Profile != "" {
		p, err := coeffs.GetProfile(e.cfg.Profile)
		if err != nil {
			return nil, err
		}
		return coeffs.Project(p, b, e.cfg.Terms, coeffs.DefaultNodes)
	}

	set, err := e.registry.Get(e.cfg.Coefficients)
	if err != nil {
		return nil, err
	}
	if set.Boundary != b {
		return nil, fmt.Errorf("%w: %s is %s, rod is %s", ErrBoundaryMismatch, set.Name, set.Boundary, b)
	}
	return set.Coeffs, nil
}

// Samples returns the physical space and time samples: Space.Points over
// [0, Length] and Time.Points over [0, End*Length^2/Diffusivity].
func (e *Experiment) Samples() (space, times []float64) {
	space = make([]float64, e.cfg.Space.Points)
	floats.Span(space, 0, e.cfg.Length)

	tEnd := e.cfg.Time.End * e.cfg.Length * e.cfg.Length / e.cfg.Diffusivity
	times = make([]float64, e.cfg.Time.Points)
	if len(times) == 1 {
		times[0] = tEnd
	} else {
		floats.Span(times, 0, tEnd)
	}
	return space, times
}

// Build constructs the Solution in the unit-length frame without
// evaluating it.
func (e *Experiment) Build() (*fourier.Solution, []float64, []float64, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}
	b, err := e.cfg.BoundaryKind()
	if err != nil {
		return nil, nil, nil, err
	}
	c, err := e.Coefficients(b)
	if err != nil {
		return nil, nil, nil, err
	}

	space, times := e.Samples()
	L := e.cfg.Length
	unitSpace := make([]float64, len(space))
	floats.ScaleTo(unitSpace, 1/L, space)
	unitTimes := make([]float64, len(times))
	floats.ScaleTo(unitTimes, 1/(L*L), times)

	sol, err := fourier.New(unitSpace, unitTimes, c,
		fourier.WithBoundary(b),
		fourier.WithDiffusivity(e.cfg.Diffusivity),
		fourier.WithTerms(e.cfg.Terms),
		fourier.WithWorkers(e.cfg.Workers),
	)
	if err != nil {
		return nil, nil, nil, err
	}
	return sol, space, times, nil
}

// Run evaluates the temperature and flux grids and the default metrics.
// ctx is checked between stages.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	sol, space, times, err := e.Build()
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"name":     e.cfg.Name,
		"boundary": sol.Boundary(),
		"terms":    sol.Terms(),
		"space":    len(space),
		"times":    len(times),
	}).Info("solution built")

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	temp := sol.TemperatureOverTime()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	flux, err := sol.FluxOverTime(nil, nil)
	if err != nil {
		return nil, err
	}
	// d/dx in physical units picks up a factor 1/L.
	flux.Scale(1/e.cfg.Length, flux)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res := &Result{
		Name:        e.cfg.Name,
		Boundary:    sol.Boundary(),
		Length:      e.cfg.Length,
		Space:       space,
		Times:       times,
		Temperature: temp,
		Flux:        flux,
		Solution:    sol,
	}
	res.Metrics = metrics.Collect(metrics.Default(sol.Boundary()), space, times, temp, flux)
	res.Elapsed = time.Since(start)

	log.WithFields(log.Fields{
		"name":    e.cfg.Name,
		"elapsed": res.Elapsed,
	}).Info("grid computed")
	return res, nil
}
