package render

import (
	"fmt"

	"github.com/san-kum/heatrod/internal/experiment"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotProfiles saves the temperature profile at each listed time index on
// one chart. The format follows the file extension.
func PlotProfiles(res *experiment.Result, indices []int, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: temperature profiles", res.Name)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "T"

	var lines []interface{}
	for _, j := range indices {
		if j < 0 || j >= len(res.Times) {
			return fmt.Errorf("%w: %d", ErrFrameIndex, j)
		}
		col := mat.Col(nil, j, res.Temperature)
		pts := make(plotter.XYs, len(col))
		for i, v := range col {
			pts[i].X = res.Space[i]
			pts[i].Y = v
		}
		lines = append(lines, fmt.Sprintf("t=%.4g", res.Times[j]), pts)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// fieldGrid exposes a [space, time] grid as a heat map with time along X.
type fieldGrid struct {
	space, times []float64
	values       *mat.Dense
}

func (g fieldGrid) Dims() (c, r int)   { return len(g.times), len(g.space) }
func (g fieldGrid) Z(c, r int) float64 { return g.values.At(r, c) }
func (g fieldGrid) X(c int) float64    { return g.times[c] }
func (g fieldGrid) Y(r int) float64    { return g.space[r] }

// PlotHeatMap saves T(x, t) as a heat map coloured on [vmin, vmax].
func PlotHeatMap(res *experiment.Result, vmin, vmax float64, path string) error {
	cm := moreland.SmoothBlueRed()
	cm.SetMin(vmin)
	cm.SetMax(vmax)

	h := plotter.NewHeatMap(fieldGrid{res.Space, res.Times, res.Temperature}, cm.Palette(255))
	h.Min, h.Max = vmin, vmax

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: T(x, t)", res.Name)
	p.X.Label.Text = "t"
	p.Y.Label.Text = "x"
	p.Add(h)
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
