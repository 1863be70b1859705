// Package lattice animates a grid of points whose jitter frequency follows
// the local rod temperature. The motion is illustrative only.
package lattice

import (
	"math"
	"math/rand"

	"github.com/san-kum/heatrod/internal/fourier"
)

type Point struct {
	X, Y float64
}

// Lattice holds NX*NY rest positions on [0, 1] x [0, Height], each with a
// fixed random jitter direction.
type Lattice struct {
	NX, NY    int
	Height    float64
	Amplitude float64
	Omega0    float64

	rest  []Point
	theta []float64
}

func New(nx, ny int, height, amplitude, omega0 float64, seed int64) *Lattice {
	l := &Lattice{
		NX:        nx,
		NY:        ny,
		Height:    height,
		Amplitude: amplitude,
		Omega0:    omega0,
		rest:      make([]Point, 0, nx*ny),
		theta:     make([]float64, 0, nx*ny),
	}

	rng := rand.New(rand.NewSource(seed))
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			l.rest = append(l.rest, Point{X: spread(i, nx, 1), Y: spread(j, ny, height)})
			l.theta = append(l.theta, 2*math.Pi*rng.Float64())
		}
	}
	return l
}

func spread(i, n int, span float64) float64 {
	if n == 1 {
		return span / 2
	}
	return span * float64(i) / float64(n-1)
}

// Rest returns a copy of the rest positions, row by row.
func (l *Lattice) Rest() []Point {
	return append([]Point(nil), l.rest...)
}

// Positions displaces every point by
//
//	Amplitude * sin(omega(x, t) * t) * (cos theta, sin theta)
//
// where omega is sol.LocalAngularFrequency at the point's x. Points where
// the frequency is NaN stay at rest. t is in the solution's time frame.
func (l *Lattice) Positions(sol *fourier.Solution, t float64) []Point {
	xs := make([]float64, l.NX)
	for i := range xs {
		xs[i] = l.rest[i].X
	}
	freq, err := sol.LocalAngularFrequencies(fourier.Row(xs), fourier.Scalar(t), l.Omega0)
	if err != nil {
		// A row against a scalar always broadcasts.
		panic(err)
	}
	omega := freq.RawRowView(0)

	out := make([]Point, len(l.rest))
	for k, p := range l.rest {
		w := omega[k%l.NX]
		if math.IsNaN(w) {
			out[k] = p
			continue
		}
		d := l.Amplitude * math.Sin(w*t)
		out[k] = Point{
			X: p.X + d*math.Cos(l.theta[k]),
			Y: p.Y + d*math.Sin(l.theta[k]),
		}
	}
	return out
}
