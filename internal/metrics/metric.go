package metrics

import (
	"gonum.org/v1/gonum/mat"
)

// Slice is one time sample of the field: the temperature and heat flux at
// every spatial sample.
type Slice struct {
	Time        float64
	Space       []float64
	Temperature []float64
	Flux        []float64
}

// Metric observes slices in time order and reduces them to one number.
type Metric interface {
	Name() string
	Observe(s Slice)
	Value() float64
	Reset()
}

// Collect feeds every column of the [space, time] grids through ms and
// returns their values by name.
func Collect(ms []Metric, space, times []float64, temperature, flux *mat.Dense) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}

	rows, _ := temperature.Dims()
	for j, t := range times {
		s := Slice{
			Time:        t,
			Space:       space,
			Temperature: mat.Col(make([]float64, rows), j, temperature),
			Flux:        mat.Col(make([]float64, rows), j, flux),
		}
		for _, m := range ms {
			m.Observe(s)
		}
	}

	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
