package metrics

import (
	"fmt"
	"sort"

	"github.com/san-kum/heatrod/internal/fourier"
)

// DecayFraction is the deviation ratio at which decay_time is recorded.
const DecayFraction = 0.01

var factories = map[string]func(b fourier.Boundary) Metric{
	"max_temperature":               func(fourier.Boundary) Metric { return NewMaxTemperature() },
	"min_temperature":               func(fourier.Boundary) Metric { return NewMinTemperature() },
	"mean_initial":                  func(fourier.Boundary) Metric { return NewMeanInitial() },
	"mean_final":                    func(fourier.Boundary) Metric { return NewMeanFinal() },
	"max_abs_flux":                  func(fourier.Boundary) Metric { return NewMaxAbsFlux() },
	"boundary_temperature_residual": func(fourier.Boundary) Metric { return NewBoundaryTemperatureResidual() },
	"boundary_flux_residual":        func(fourier.Boundary) Metric { return NewBoundaryFluxResidual() },
	"decay_time": func(b fourier.Boundary) Metric {
		return NewDecayTime(DecayFraction, b == fourier.Neumann)
	},
}

// Get builds the named metric for a rod with boundary b.
func Get(name string, b fourier.Boundary) (Metric, error) {
	fn, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric: %s", name)
	}
	return fn(b), nil
}

// Names lists every metric in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns one of every metric, configured for boundary b.
func Default(b fourier.Boundary) []Metric {
	ms := make([]Metric, 0, len(factories))
	for _, name := range Names() {
		ms = append(ms, factories[name](b))
	}
	return ms
}
