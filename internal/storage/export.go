package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/heatrod/internal/experiment"
	"gonum.org/v1/gonum/mat"
)

type ExportData struct {
	Name        string             `json:"name"`
	Boundary    string             `json:"boundary"`
	Length      float64            `json:"length"`
	Space       []float64          `json:"space"`
	Times       []float64          `json:"times"`
	Temperature [][]float64        `json:"temperature"`
	Flux        [][]float64        `json:"flux"`
	Metrics     map[string]float64 `json:"metrics"`
}

// ExportJSON writes a result as indented JSON with the grids as
// row-per-position arrays.
func ExportJSON(w io.Writer, res *experiment.Result) error {
	data := ExportData{
		Name:        res.Name,
		Boundary:    res.Boundary.String(),
		Length:      res.Length,
		Space:       res.Space,
		Times:       res.Times,
		Temperature: rows(res.Temperature),
		Flux:        rows(res.Flux),
		Metrics:     res.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func rows(m *mat.Dense) [][]float64 {
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, m)
	}
	return out
}
