package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

var ErrMalformedGrid = errors.New("storage: malformed grid")

// Grid is a [space, time] field with its sample positions.
type Grid struct {
	Space  []float64
	Times  []float64
	Values *mat.Dense
}

// Column returns the field at time index j.
func (g *Grid) Column(j int) []float64 {
	return mat.Col(nil, j, g.Values)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteGrid writes a grid as CSV: a header of "x" and the times, then one
// row per spatial sample.
func WriteGrid(w io.Writer, space, times []float64, values mat.Matrix) error {
	r, c := values.Dims()
	if r != len(space) || c != len(times) {
		return fmt.Errorf("%w: %dx%d values for %d positions and %d times", ErrMalformedGrid, r, c, len(space), len(times))
	}

	cw := csv.NewWriter(w)
	header := make([]string, 0, c+1)
	header = append(header, "x")
	for _, t := range times {
		header = append(header, formatFloat(t))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, c+1)
	for i, x := range space {
		row[0] = formatFloat(x)
		for j := 0; j < c; j++ {
			row[j+1] = formatFloat(values.At(i, j))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeGridFile(path string, space, times []float64, values mat.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteGrid(f, space, times, values); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadGrid parses the format written by WriteGrid.
func ReadGrid(r io.Reader) (*Grid, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 || len(records[0]) < 2 {
		return nil, fmt.Errorf("%w: need a header and at least one row", ErrMalformedGrid)
	}

	times, err := parseRow(records[0][1:])
	if err != nil {
		return nil, err
	}
	g := &Grid{
		Times:  times,
		Space:  make([]float64, len(records)-1),
		Values: mat.NewDense(len(records)-1, len(times), nil),
	}
	for i, rec := range records[1:] {
		vals, err := parseRow(rec)
		if err != nil {
			return nil, err
		}
		g.Space[i] = vals[0]
		g.Values.SetRow(i, vals[1:])
	}
	return g, nil
}

func parseRow(rec []string) ([]float64, error) {
	out := make([]float64, len(rec))
	for i, s := range rec {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedGrid, err)
		}
		out[i] = v
	}
	return out, nil
}
