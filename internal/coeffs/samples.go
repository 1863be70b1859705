package coeffs

import (
	"fmt"

	"github.com/mjibson/go-dsp/fft"
	"github.com/san-kum/heatrod/internal/fourier"
)

// FromSamples derives coefficients from a profile sampled uniformly on
// [0, 1], both ends included (x_k = k/M for k = 0..M). The integrals of
// Project are replaced by the trapezoid rule, which makes them a type-I
// discrete sine or cosine transform; both are taken from an FFT of the
// odd or even extension of the samples.
//
// Modes above the Nyquist index M-1 (sine) or M (cosine) are aliased and
// are dropped, as are modes above terms.
func FromSamples(samples []float64, b fourier.Boundary, terms int) (Series, error) {
	if len(samples) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSamples, len(samples))
	}
	if terms <= 0 {
		return nil, fmt.Errorf("%w: terms %d", fourier.ErrParameterBounds, terms)
	}

	m := len(samples) - 1
	ext := make([]float64, 2*m)
	switch b {
	case fourier.Dirichlet:
		for k := 1; k < m; k++ {
			ext[k] = samples[k]
			ext[2*m-k] = -samples[k]
		}
	case fourier.Neumann:
		for k := 0; k <= m; k++ {
			ext[k] = samples[k]
		}
		for k := 1; k < m; k++ {
			ext[2*m-k] = samples[k]
		}
	default:
		return nil, fmt.Errorf("%w: %d", fourier.ErrUnknownBoundary, int(b))
	}

	spec := fft.FFTReal(ext)
	scale := 1 / float64(m)

	if b == fourier.Dirichlet {
		top := min(terms, m-1)
		out := make(Series, top+1)
		for n := 1; n <= top; n++ {
			out[n] = -imag(spec[n]) * scale
		}
		return out, nil
	}

	top := min(terms, m)
	out := make(Series, top+1)
	out[0] = real(spec[0]) * scale / 2
	for n := 1; n <= top; n++ {
		out[n] = real(spec[n]) * scale
	}
	if top == m {
		// Halved so the series reproduces the samples exactly.
		out[m] /= 2
	}
	return out, nil
}
