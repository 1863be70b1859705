package coeffs

import "math"

// Table lists coefficients explicitly; absent indices are zero.
type Table map[int]float64

func (t Table) Coefficient(n int) (float64, error) {
	return t[n], nil
}

// DirichletBump is the sine series of f(x) = 1/2 (1 - cos 2 pi x):
// zero for even n, 2/(pi n) - 2n/(pi (n^2 - 4)) for odd n.
func DirichletBump(n int) float64 {
	if n%2 == 0 {
		return 0
	}
	fn := float64(n)
	return 2/math.Pi/fn - 2*fn/(fn*fn-4)/math.Pi
}

// NeumannCosine is the cosine series of the same profile: a mean of 1/2
// and a single mode a(2) = -1/2.
func NeumannCosine(n int) float64 {
	switch n {
	case 0:
		return 0.5
	case 2:
		return -0.5
	}
	return 0
}

// DirichletStep is the sine series of a uniformly hot rod, f(x) = 1.
func DirichletStep(n int) float64 {
	if n%2 == 0 {
		return 0
	}
	return 4 / (float64(n) * math.Pi)
}

// NeumannRamp is the cosine series of f(x) = x.
func NeumannRamp(n int) float64 {
	switch {
	case n == 0:
		return 0.5
	case n%2 == 0:
		return 0
	}
	k := float64(n) * math.Pi
	return -4 / (k * k)
}
