package fourier

import (
	"fmt"
	"math"
)

const (
	DefaultDiffusivity = 1.0
	DefaultTerms       = 30
)

// Solution is a truncated series solution of u_t = D u_xx on [0, 1].
type Solution struct {
	space, time []float64
	boundary    Boundary
	diffusivity float64
	waveSpeed   float64
	terms       int
	workers     int
	coeff       []float64
}

// Option configures a Solution.
type Option func(*Solution)

// WithBoundary selects the boundary family. The default is Dirichlet.
func WithBoundary(b Boundary) Option {
	return func(s *Solution) { s.boundary = b }
}

// WithDiffusivity sets D. The wave speed sqrt(D) is derived once in New.
func WithDiffusivity(d float64) Option {
	return func(s *Solution) { s.diffusivity = d }
}

// WithTerms sets the number of non-constant modes summed.
func WithTerms(n int) Option {
	return func(s *Solution) { s.terms = n }
}

// WithWorkers lets array evaluation split rows across n goroutines.
func WithWorkers(n int) Option {
	return func(s *Solution) { s.workers = n }
}

// New builds a Solution over the given space and time samples. The
// coefficient provider is queried here, once per mode, and any error it
// returns is reported as a *CoefficientError.
func New(space, time []float64, c Coefficients, opts ...Option) (*Solution, error) {
	s := &Solution{
		boundary:    Dirichlet,
		diffusivity: DefaultDiffusivity,
		terms:       DefaultTerms,
		workers:     1,
	}
	for _, opt := range opts {
		opt(s)
	}

	if !s.boundary.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBoundary, int(s.boundary))
	}
	if !(s.diffusivity > 0) || math.IsInf(s.diffusivity, 0) {
		return nil, fmt.Errorf("%w: diffusivity must be positive, got %v", ErrParameterBounds, s.diffusivity)
	}
	if s.terms <= 0 {
		return nil, fmt.Errorf("%w: terms must be positive, got %d", ErrParameterBounds, s.terms)
	}
	if len(space) == 0 || len(time) == 0 {
		return nil, fmt.Errorf("%w: space and time samples must be non-empty", ErrParameterBounds)
	}
	for i, t := range time {
		if t < 0 || math.IsNaN(t) {
			return nil, fmt.Errorf("%w: time sample %d is %v", ErrParameterBounds, i, t)
		}
	}
	if c == nil {
		return nil, fmt.Errorf("%w: nil coefficient provider", ErrParameterBounds)
	}
	if s.workers < 1 {
		s.workers = 1
	}

	coeff, err := resolve(c, s.boundary, s.terms)
	if err != nil {
		return nil, err
	}

	s.coeff = coeff
	s.waveSpeed = math.Sqrt(s.diffusivity)
	s.space = append([]float64(nil), space...)
	s.time = append([]float64(nil), time...)
	return s, nil
}

func (s *Solution) Boundary() Boundary   { return s.boundary }
func (s *Solution) Diffusivity() float64 { return s.diffusivity }
func (s *Solution) WaveSpeed() float64   { return s.waveSpeed }
func (s *Solution) Terms() int           { return s.terms }

// Space returns a copy of the spatial samples.
func (s *Solution) Space() []float64 { return append([]float64(nil), s.space...) }

// Time returns a copy of the temporal samples.
func (s *Solution) Time() []float64 { return append([]float64(nil), s.time...) }

// Coefficient returns the resolved coefficient of mode n, or 0 outside the
// summed range.
func (s *Solution) Coefficient(n int) float64 {
	if n < 0 || n > s.terms {
		return 0
	}
	return s.coeff[n]
}

// Mu is the spatial wavenumber of mode n.
func (s *Solution) Mu(n int) float64 {
	return float64(n) * math.Pi
}

// Lambda is the temporal decay rate of mode n; the envelope is
// exp(-Lambda(n)^2 t).
func (s *Solution) Lambda(n int) float64 {
	return s.waveSpeed * float64(n) * math.Pi
}

// ModeTemperature is the contribution of mode n to the temperature. It is
// non-zero only for n in 1..Terms, plus n = 0 under Neumann ends where it
// is the mean term c(0).
func (s *Solution) ModeTemperature(x, t float64, n int) float64 {
	c := s.Coefficient(n)
	mu, lam := s.Mu(n), s.Lambda(n)
	switch s.boundary {
	case Dirichlet:
		return c * math.Exp(-lam*lam*t) * math.Sin(mu*x)
	case Neumann:
		return c * math.Exp(-lam*lam*t) * math.Cos(mu*x)
	}
	panic("fourier: unreachable boundary " + s.boundary.String())
}

// ModeFlux is the contribution of mode n to the heat flux. It is non-zero
// only for n in 1..Terms.
func (s *Solution) ModeFlux(x, t float64, n int) float64 {
	c := s.Coefficient(n)
	mu, lam := s.Mu(n), s.Lambda(n)
	switch s.boundary {
	case Dirichlet:
		return -mu * c * math.Exp(-lam*lam*t) * math.Cos(mu*x)
	case Neumann:
		return +mu * c * math.Exp(-lam*lam*t) * math.Sin(mu*x)
	}
	panic("fourier: unreachable boundary " + s.boundary.String())
}

// TemperatureAt sums modes 1..Terms at (x, t), plus the mean c(0) for
// Neumann ends.
func (s *Solution) TemperatureAt(x, t float64) float64 {
	sum := 0.0
	for n := 1; n <= s.terms; n++ {
		sum += s.ModeTemperature(x, t, n)
	}
	if s.boundary == Neumann {
		sum += s.coeff[0]
	}
	return sum
}

// HeatFluxAt sums flux modes 1..Terms at (x, t). The mean mode has no
// gradient, so there is never a constant term.
func (s *Solution) HeatFluxAt(x, t float64) float64 {
	sum := 0.0
	for n := 1; n <= s.terms; n++ {
		sum += s.ModeFlux(x, t, n)
	}
	return sum
}

// LocalAngularFrequency is a cosmetic field used to drive illustrative
// motion, not a heat-equation quantity:
//
//	omega0/3 + omega0*sqrt(T(x, t))
//
// No clamping is done; where T(x, t) < 0 the result is NaN.
func (s *Solution) LocalAngularFrequency(x, t, omega0 float64) float64 {
	return omega0/3 + omega0*math.Sqrt(s.TemperatureAt(x, t))
}
