package coeffs

import (
	"fmt"
	"math"

	"github.com/san-kum/heatrod/internal/fourier"
	"gonum.org/v1/gonum/integrate/quad"
)

// DefaultNodes is the Gauss-Legendre order used by Project.
const DefaultNodes = 128

// Series is a dense coefficient list indexed by mode. Indices past the end
// resolve to zero; negative indices are an error.
type Series []float64

func (s Series) Coefficient(n int) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	if n >= len(s) {
		return 0, nil
	}
	return s[n], nil
}

// Project expands f in the basis matching b up to mode terms:
//
//	dirichlet: b(n) = 2 int_0^1 f(x) sin(n pi x) dx
//	neumann:   a(0) = int_0^1 f(x) dx, a(n) = 2 int_0^1 f(x) cos(n pi x) dx
//
// nodes <= 0 selects DefaultNodes.
func Project(f Profile, b fourier.Boundary, terms, nodes int) (Series, error) {
	if terms <= 0 {
		return nil, fmt.Errorf("%w: terms %d", fourier.ErrParameterBounds, terms)
	}
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %d", fourier.ErrUnknownBoundary, int(b))
	}
	if nodes <= 0 {
		nodes = DefaultNodes
	}

	out := make(Series, terms+1)
	if b == fourier.Neumann {
		out[0] = quad.Fixed(func(x float64) float64 { return f(x) }, 0, 1, nodes, quad.Legendre{}, 0)
	}
	for n := 1; n <= terms; n++ {
		k := float64(n) * math.Pi
		var basis func(float64) float64
		if b == fourier.Dirichlet {
			basis = math.Sin
		} else {
			basis = math.Cos
		}
		out[n] = 2 * quad.Fixed(func(x float64) float64 { return f(x) * basis(k*x) }, 0, 1, nodes, quad.Legendre{}, 0)
	}
	return out, nil
}
