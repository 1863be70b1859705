package lattice

import (
	"math"
	"testing"

	"github.com/san-kum/heatrod/internal/fourier"
)

func solution(t *testing.T, c fourier.CoefficientFunc, b fourier.Boundary) *fourier.Solution {
	t.Helper()
	sol, err := fourier.New([]float64{0, 1}, []float64{0}, c, fourier.WithBoundary(b), fourier.WithTerms(4))
	if err != nil {
		t.Fatal(err)
	}
	return sol
}

func TestNew(t *testing.T) {
	l := New(5, 3, 0.1, 0.01, 100, 1)
	rest := l.Rest()

	if len(rest) != 15 {
		t.Fatalf("expected 15 points, got %d", len(rest))
	}
	if rest[0] != (Point{0, 0}) || rest[14] != (Point{1, 0.1}) {
		t.Errorf("unexpected corners %v %v", rest[0], rest[14])
	}
	if rest[7].X != 0.5 || rest[7].Y != 0.05 {
		t.Errorf("unexpected centre %v", rest[7])
	}
}

func TestPositions_AtRestAtTimeZero(t *testing.T) {
	sol := solution(t, func(n int) float64 {
		if n == 0 {
			return 1
		}
		return 0
	}, fourier.Neumann)
	l := New(4, 2, 0.1, 0.05, 800, 7)

	got := l.Positions(sol, 0)
	for k, p := range l.Rest() {
		if got[k] != p {
			t.Errorf("point %d moved at t=0: %v -> %v", k, p, got[k])
		}
	}
}

func TestPositions_Amplitude(t *testing.T) {
	sol := solution(t, func(n int) float64 {
		if n == 0 {
			return 1
		}
		return 0
	}, fourier.Neumann)
	l := New(6, 2, 0.1, 0.05, 800, 7)

	// T = 1 everywhere, so omega = 800/3 + 800.
	w := 800.0/3 + 800
	tm := 0.0123
	want := 0.05 * math.Abs(math.Sin(w*tm))

	got := l.Positions(sol, tm)
	for k, p := range l.Rest() {
		d := math.Hypot(got[k].X-p.X, got[k].Y-p.Y)
		if math.Abs(d-want) > 1e-12 {
			t.Errorf("point %d displaced %v, want %v", k, d, want)
		}
	}
}

func TestPositions_NegativeTemperatureRests(t *testing.T) {
	sol := solution(t, func(n int) float64 {
		if n == 0 {
			return -1
		}
		return 0
	}, fourier.Neumann)
	l := New(3, 1, 0, 0.05, 800, 3)

	got := l.Positions(sol, 0.5)
	for k, p := range l.Rest() {
		if got[k] != p {
			t.Errorf("point %d should rest where frequency is NaN", k)
		}
	}
}

func TestNew_Deterministic(t *testing.T) {
	sol := solution(t, func(n int) float64 {
		if n == 0 {
			return 1
		}
		return 0
	}, fourier.Neumann)

	a := New(4, 4, 0.1, 0.01, 100, 99).Positions(sol, 0.3)
	b := New(4, 4, 0.1, 0.01, 100, 99).Positions(sol, 0.3)
	for k := range a {
		if a[k] != b[k] {
			t.Fatalf("same seed gave different positions at %d", k)
		}
	}
}

func TestPositions_FollowLocalFrequency(t *testing.T) {
	sol := solution(t, func(n int) float64 {
		if n == 1 {
			return 1
		}
		return 0
	}, fourier.Dirichlet)
	l := New(7, 2, 0.1, 0.02, 500, 11)
	tm := 0.031

	got := l.Positions(sol, tm)
	for k, p := range l.Rest() {
		w := sol.LocalAngularFrequency(p.X, tm, l.Omega0)
		want := l.Amplitude * math.Abs(math.Sin(w*tm))
		d := math.Hypot(got[k].X-p.X, got[k].Y-p.Y)
		if math.Abs(d-want) > 1e-12 {
			t.Errorf("point %d at x=%v displaced %v, want %v", k, p.X, d, want)
		}
	}
}
