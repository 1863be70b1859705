package fourier

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func newBump(t *testing.T, xs, ts []float64, opts ...Option) *Solution {
	t.Helper()
	sol, err := New(xs, ts, CoefficientFunc(bump), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return sol
}

func TestTemperatureOverTime_MatchesPointwise(t *testing.T) {
	xs := linspace(0, 1, 33)
	ts := linspace(0, 0.3, 17)

	for _, b := range []Boundary{Dirichlet, Neumann} {
		t.Run(b.String(), func(t *testing.T) {
			sol := newBump(t, xs, ts, WithBoundary(b))
			grid := sol.TemperatureOverTime()

			r, c := grid.Dims()
			if r != len(xs) || c != len(ts) {
				t.Fatalf("grid dims = (%d,%d), want (%d,%d)", r, c, len(xs), len(ts))
			}
			for i, x := range xs {
				for j, tt := range ts {
					if got, want := grid.At(i, j), sol.TemperatureAt(x, tt); got != want {
						t.Fatalf("grid[%d,%d] = %v, pointwise = %v", i, j, got, want)
					}
				}
			}
		})
	}
}

func TestFluxOverTime(t *testing.T) {
	xs := linspace(0, 1, 11)
	ts := linspace(0, 0.1, 5)
	sol := newBump(t, xs, ts)

	grid, err := sol.FluxOverTime(nil, nil)
	if err != nil {
		t.Fatalf("FluxOverTime: %v", err)
	}
	for i, x := range xs {
		for j, tt := range ts {
			if got, want := grid.At(i, j), sol.HeatFluxAt(x, tt); got != want {
				t.Fatalf("flux[%d,%d] = %v, want %v", i, j, got, want)
			}
		}
	}

	custom, err := sol.FluxOverTime([]float64{0.2, 0.4}, []float64{0, 1, 2})
	if err != nil {
		t.Fatalf("FluxOverTime custom: %v", err)
	}
	if r, c := custom.Dims(); r != 2 || c != 3 {
		t.Errorf("custom dims = (%d,%d), want (2,3)", r, c)
	}

	for name, args := range map[string][2][]float64{
		"space only": {{0.1, 0.2}, nil},
		"time only":  {nil, {0.5}},
	} {
		partial, err := sol.FluxOverTime(args[0], args[1])
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !mat.Equal(partial, grid) {
			t.Errorf("%s: expected the instance grid", name)
		}
	}

	if _, err := sol.FluxOverTime([]float64{}, []float64{0}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch for an empty axis, got %v", err)
	}
}

func TestBroadcastShapes(t *testing.T) {
	sol := newBump(t, []float64{0, 1}, []float64{0})

	tests := []struct {
		name       string
		x, t       mat.Matrix
		rows, cols int
	}{
		{"scalar scalar", Scalar(0.3), Scalar(0.1), 1, 1},
		{"column row", Column([]float64{0, 0.5, 1}), Row([]float64{0, 0.1}), 3, 2},
		{"row scalar", Row([]float64{0, 0.5, 1}), Scalar(0), 1, 3},
		{"matrix scalar", mat.NewDense(2, 3, nil), Scalar(0.2), 2, 3},
		{"matrix row", mat.NewDense(2, 3, nil), Row([]float64{0, 0.1, 0.2}), 2, 3},
		{"matrix column", mat.NewDense(2, 3, nil), Column([]float64{0, 0.1}), 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := sol.Temperature(tt.x, tt.t)
			if err != nil {
				t.Fatalf("Temperature: %v", err)
			}
			if r, c := out.Dims(); r != tt.rows || c != tt.cols {
				t.Errorf("dims = (%d,%d), want (%d,%d)", r, c, tt.rows, tt.cols)
			}
		})
	}
}

func TestBroadcastMismatch(t *testing.T) {
	sol := newBump(t, []float64{0, 1}, []float64{0})

	_, err := sol.Temperature(Column([]float64{0, 0.5, 1}), Column([]float64{0, 1}))
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
	var se *ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ShapeError, got %T", err)
	}
	if se.Rows != [2]int{3, 2} {
		t.Errorf("rows = %v, want [3 2]", se.Rows)
	}

	if _, err := sol.HeatFlux(mat.NewDense(2, 3, nil), Row([]float64{1, 2})); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch for flux, got %v", err)
	}
}

func TestTemperatureOnMesh_IgnoresY(t *testing.T) {
	xs := linspace(0, 1, 30)
	sol := newBump(t, xs, []float64{0})

	ny, nx := 4, len(xs)
	X := mat.NewDense(ny, nx, nil)
	Y := mat.NewDense(ny, nx, nil)
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			X.Set(i, j, xs[j])
			Y.Set(i, j, 0.1*float64(i))
		}
	}

	img, err := sol.TemperatureOnMesh(X, Y, 0.02)
	if err != nil {
		t.Fatalf("TemperatureOnMesh: %v", err)
	}
	if r, c := img.Dims(); r != ny || c != nx {
		t.Fatalf("dims = (%d,%d), want (%d,%d)", r, c, ny, nx)
	}
	for i := 1; i < ny; i++ {
		if !mat.Equal(img.RowView(i), img.RowView(0)) {
			t.Errorf("row %d differs from row 0", i)
		}
	}
	for j, x := range xs {
		if got, want := img.At(2, j), sol.TemperatureAt(x, 0.02); got != want {
			t.Errorf("img[2,%d] = %v, want %v", j, got, want)
		}
	}

	if _, err := sol.TemperatureOnMesh(X, mat.NewDense(1, nx, nil), 0); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch for mismatched mesh, got %v", err)
	}
}

func TestWorkersGiveIdenticalGrids(t *testing.T) {
	xs := linspace(0, 1, 257)
	ts := linspace(0, 0.5, 33)

	serial := newBump(t, xs, ts).TemperatureOverTime()
	parallel := newBump(t, xs, ts, WithWorkers(8)).TemperatureOverTime()

	if !mat.Equal(serial, parallel) {
		t.Error("parallel grid differs from serial grid")
	}
}

func TestLocalAngularFrequencies(t *testing.T) {
	xs := linspace(0, 1, 5)
	ts := []float64{0, 0.05}
	sol := newBump(t, xs, ts)

	out, err := sol.LocalAngularFrequencies(Column(xs), Row(ts), 10)
	if err != nil {
		t.Fatalf("LocalAngularFrequencies: %v", err)
	}
	for i, x := range xs {
		for j, tt := range ts {
			want := sol.LocalAngularFrequency(x, tt, 10)
			got := out.At(i, j)
			if got != want && !(got != got && want != want) {
				t.Errorf("omega[%d,%d] = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestParseBoundary(t *testing.T) {
	tests := []struct {
		in      string
		want    Boundary
		wantErr bool
	}{
		{"dirichlet", Dirichlet, false},
		{"Neumann", Neumann, false},
		{" NEUMANN ", Neumann, false},
		{"robin", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseBoundary(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownBoundary) {
				t.Errorf("ParseBoundary(%q) err = %v, want ErrUnknownBoundary", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseBoundary(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestMemo(t *testing.T) {
	xs := linspace(0, 1, 9)
	ts := linspace(0, 0.1, 3)
	sol := newBump(t, xs, ts)
	memo := NewMemo(sol, 4)

	first, err := memo.Temperature(Column(xs), Row(ts))
	if err != nil {
		t.Fatalf("Temperature: %v", err)
	}
	first.Set(0, 0, 99)

	second, err := memo.Temperature(Column(xs), Row(ts))
	if err != nil {
		t.Fatalf("Temperature: %v", err)
	}
	if !mat.Equal(second, sol.TemperatureOverTime()) {
		t.Error("cached grid was modified through a returned copy")
	}

	flux, err := memo.HeatFlux(Column(xs), Row(ts))
	if err != nil {
		t.Fatalf("HeatFlux: %v", err)
	}
	want, _ := sol.FluxOverTime(nil, nil)
	if !mat.Equal(flux, want) {
		t.Error("flux through memo differs from direct evaluation")
	}
	if memo.Len() != 2 {
		t.Errorf("memo len = %d, want 2", memo.Len())
	}
}
