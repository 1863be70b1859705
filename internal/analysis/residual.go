package analysis

import (
	"math"

	"github.com/san-kum/heatrod/internal/fourier"
)

// BoundaryResidual returns, for each time, the larger magnitude at x=0 and
// x=1 of the quantity the boundary pins to zero: temperature for Dirichlet
// ends, flux for Neumann ends.
func BoundaryResidual(sol *fourier.Solution, times []float64) []float64 {
	f := sol.TemperatureAt
	if sol.Boundary() == fourier.Neumann {
		f = sol.HeatFluxAt
	}

	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = math.Max(math.Abs(f(0, t)), math.Abs(f(1, t)))
	}
	return out
}

// ModeDecay is the sampled contribution of one mode at a fixed point.
type ModeDecay struct {
	Mode   int
	Values []float64
	// Rate is the least-squares slope of -ln|value| against time, NaN when
	// fewer than two samples are non-zero.
	Rate float64
	// Expected is Lambda(n)^2.
	Expected float64
}

// DecayOf samples mode n at x over times.
func DecayOf(sol *fourier.Solution, n int, x float64, times []float64) ModeDecay {
	d := ModeDecay{
		Mode:     n,
		Values:   make([]float64, len(times)),
		Expected: sol.Lambda(n) * sol.Lambda(n),
	}

	var ts, logs []float64
	for i, t := range times {
		v := sol.ModeTemperature(x, t, n)
		d.Values[i] = v
		if v != 0 {
			ts = append(ts, t)
			logs = append(logs, -math.Log(math.Abs(v)))
		}
	}
	d.Rate = slope(ts, logs)
	return d
}

// DecayTable fits DecayOf for modes 1..min(modes, Terms), skipping modes
// whose coefficient is zero.
func DecayTable(sol *fourier.Solution, x float64, times []float64, modes int) []ModeDecay {
	var out []ModeDecay
	for n := 1; n <= min(modes, sol.Terms()); n++ {
		if sol.Coefficient(n) == 0 {
			continue
		}
		out = append(out, DecayOf(sol, n, x, times))
	}
	return out
}
