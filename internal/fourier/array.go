package fourier

import (
	"gonum.org/v1/gonum/mat"
)

// Scalar wraps v as a 1x1 operand.
func Scalar(v float64) *mat.Dense {
	return mat.NewDense(1, 1, []float64{v})
}

// Column lays v out as an len(v)x1 operand (the space axis).
func Column(v []float64) *mat.Dense {
	return mat.NewDense(len(v), 1, append([]float64(nil), v...))
}

// Row lays v out as a 1xlen(v) operand (the time axis).
func Row(v []float64) *mat.Dense {
	return mat.NewDense(1, len(v), append([]float64(nil), v...))
}

// broadcastDims returns the shape produced by broadcasting a against b.
func broadcastDims(op string, a, b mat.Matrix) (int, int, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	r, okR := broadcastAxis(ar, br)
	c, okC := broadcastAxis(ac, bc)
	if !okR || !okC {
		return 0, 0, &ShapeError{Op: op, Rows: [2]int{ar, br}, Cols: [2]int{ac, bc}}
	}
	return r, c, nil
}

func broadcastAxis(a, b int) (int, bool) {
	switch {
	case a == b:
		return a, true
	case a == 1:
		return b, true
	case b == 1:
		return a, true
	}
	return 0, false
}

// at reads m at (i, j) with length-1 axes stretched.
func at(m mat.Matrix, i, j int) float64 {
	r, c := m.Dims()
	if r == 1 {
		i = 0
	}
	if c == 1 {
		j = 0
	}
	return m.At(i, j)
}

// apply evaluates kernel over the broadcast of x and t.
func (s *Solution) apply(op string, x, t mat.Matrix, kernel func(x, t float64) float64) (*mat.Dense, error) {
	r, c, err := broadcastDims(op, x, t)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(r, c, nil)
	parallelFor(r, s.workers, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < c; j++ {
				out.Set(i, j, kernel(at(x, i, j), at(t, i, j)))
			}
		}
	})
	return out, nil
}

// Temperature evaluates the temperature over the broadcast of x and t.
func (s *Solution) Temperature(x, t mat.Matrix) (*mat.Dense, error) {
	return s.apply("temperature", x, t, s.TemperatureAt)
}

// HeatFlux evaluates the heat flux over the broadcast of x and t.
func (s *Solution) HeatFlux(x, t mat.Matrix) (*mat.Dense, error) {
	return s.apply("heat flux", x, t, s.HeatFluxAt)
}

// LocalAngularFrequencies is the array form of LocalAngularFrequency.
func (s *Solution) LocalAngularFrequencies(x, t mat.Matrix, omega0 float64) (*mat.Dense, error) {
	return s.apply("angular frequency", x, t, func(x, t float64) float64 {
		return s.LocalAngularFrequency(x, t, omega0)
	})
}

// TemperatureOverTime evaluates the temperature on the instance samples.
// Rows are space samples, columns are time samples.
func (s *Solution) TemperatureOverTime() *mat.Dense {
	out, err := s.Temperature(Column(s.space), Row(s.time))
	if err != nil {
		// A column against a row always broadcasts.
		panic(err)
	}
	return out
}

// TemperatureOnMesh evaluates the temperature on a pre-broadcast mesh at a
// single time. Only X carries values: the rod is one-dimensional, so every
// row of a heat map built from a meshgrid repeats the same profile. Y must
// still have X's shape.
func (s *Solution) TemperatureOnMesh(X, Y mat.Matrix, t float64) (*mat.Dense, error) {
	xr, xc := X.Dims()
	yr, yc := Y.Dims()
	if xr != yr || xc != yc {
		return nil, &ShapeError{Op: "mesh", Rows: [2]int{xr, yr}, Cols: [2]int{xc, yc}}
	}
	return s.Temperature(X, Scalar(t))
}

// FluxOverTime evaluates the heat flux on the [space, time] grid. Caller
// samples are used only when both are given; otherwise the instance samples
// are used for both axes.
func (s *Solution) FluxOverTime(x, t []float64) (*mat.Dense, error) {
	if x == nil || t == nil {
		x, t = s.space, s.time
	}
	if len(x) == 0 || len(t) == 0 {
		return nil, &ShapeError{Op: "flux over time", Rows: [2]int{len(x), 1}, Cols: [2]int{1, len(t)}}
	}
	return s.HeatFlux(Column(x), Row(t))
}
