package analysis

import (
	"math"

	"github.com/san-kum/heatrod/internal/coeffs"
	"github.com/san-kum/heatrod/internal/fourier"
	"gonum.org/v1/gonum/stat"
)

// Spectrum returns |c(n)| for n = 0..terms recovered from uniform samples
// of a profile on [0, 1]. Index 0 is always 0 for Dirichlet.
func Spectrum(samples []float64, b fourier.Boundary, terms int) ([]float64, error) {
	series, err := coeffs.FromSamples(samples, b, terms)
	if err != nil {
		return nil, err
	}

	out := make([]float64, terms+1)
	for n := range out {
		c, _ := series.Coefficient(n)
		out[n] = math.Abs(c)
	}
	return out, nil
}

func slope(x, y []float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}
	_, beta := stat.LinearRegression(x, y, nil, false)
	return beta
}
