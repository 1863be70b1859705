package fourier

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = a + (b-a)*float64(i)/float64(n-1)
	}
	return out
}

func bump(n int) float64 {
	if n%2 == 0 {
		return 0
	}
	fn := float64(n)
	return 2/math.Pi/fn - 2*fn/(fn*fn-4)/math.Pi
}

func cosine(n int) float64 {
	switch n {
	case 0:
		return 0.5
	case 2:
		return -0.5
	}
	return 0
}

func harmonic(n int) float64 {
	return 1 / float64(n)
}

var _ = Describe("Solution", func() {
	var (
		xs = linspace(0, 1, 41)
		ts = []float64{0, 0.001, 0.01, 0.05, 0.1, 0.5}
	)

	Describe("Dirichlet ends", func() {
		var sol *Solution

		BeforeEach(func() {
			var err error
			sol, err = New(xs, ts, CoefficientFunc(bump))
			Expect(err).NotTo(HaveOccurred())
		})

		It("defaults to thirty terms and unit diffusivity", func() {
			Expect(sol.Terms()).To(Equal(DefaultTerms))
			Expect(sol.Diffusivity()).To(Equal(1.0))
			Expect(sol.WaveSpeed()).To(Equal(1.0))
			Expect(sol.Boundary()).To(Equal(Dirichlet))
		})

		It("vanishes at both ends", func() {
			for _, t := range ts {
				Expect(sol.TemperatureAt(0, t)).To(BeNumerically("~", 0, 1e-12))
				Expect(sol.TemperatureAt(1, t)).To(BeNumerically("~", 0, 1e-12))
			}
		})

		It("matches a direct summation of the same series", func() {
			direct := func(x, t float64) float64 {
				sum := 0.0
				for n := 1; n <= 30; n++ {
					k := float64(n) * math.Pi
					sum += bump(n) * math.Exp(-k*k*t) * math.Sin(k*x)
				}
				return sum
			}
			points := [][2]float64{{0.25, 0}, {0.5, 0.01}, {0.7, 0.2}, {0.1, 1.5}}
			for _, p := range points {
				Expect(sol.TemperatureAt(p[0], p[1])).To(BeNumerically("~", direct(p[0], p[1]), 1e-6))
			}
		})

		It("has no constant term", func() {
			Expect(sol.TemperatureAt(0.5, 50)).To(BeNumerically("~", 0, 1e-12))
		})
	})

	Describe("Neumann ends", func() {
		var sol *Solution

		BeforeEach(func() {
			var err error
			sol, err = New(xs, ts, CoefficientFunc(cosine), WithBoundary(Neumann))
			Expect(err).NotTo(HaveOccurred())
		})

		It("carries no flux through either end", func() {
			for _, t := range ts {
				Expect(sol.HeatFluxAt(0, t)).To(BeNumerically("~", 0, 1e-9))
				Expect(sol.HeatFluxAt(1, t)).To(BeNumerically("~", 0, 1e-9))
			}
		})

		It("reproduces the initial profile 1/2 (1 - cos 2 pi x)", func() {
			for _, x := range xs {
				Expect(sol.TemperatureAt(x, 0)).To(BeNumerically("~", 0.5-0.5*math.Cos(2*math.Pi*x), 1e-14))
			}
		})

		It("relaxes to the mean temperature", func() {
			for _, x := range xs {
				Expect(sol.TemperatureAt(x, 1)).To(BeNumerically("~", 0.5, 1e-10))
			}
		})

		It("asks the provider for the mean term", func() {
			seen := map[int]bool{}
			_, err := New(xs, ts, CoefficientFunc(func(n int) float64 {
				seen[n] = true
				return 0
			}), WithBoundary(Neumann), WithTerms(3))
			Expect(err).NotTo(HaveOccurred())
			Expect(seen).To(HaveLen(4))
			Expect(seen).To(HaveKey(0))
		})
	})

	Describe("mode decay", func() {
		It("never grows in time", func() {
			for _, b := range []Boundary{Dirichlet, Neumann} {
				sol, err := New(xs, ts, CoefficientFunc(harmonic), WithBoundary(b), WithTerms(8))
				Expect(err).NotTo(HaveOccurred())
				for n := 1; n <= 8; n++ {
					prevT, prevF := math.Inf(1), math.Inf(1)
					for _, t := range linspace(0, 0.2, 25) {
						curT := math.Abs(sol.ModeTemperature(0.37, t, n))
						curF := math.Abs(sol.ModeFlux(0.37, t, n))
						Expect(curT).To(BeNumerically("<=", prevT))
						Expect(curF).To(BeNumerically("<=", prevF))
						prevT, prevF = curT, curF
					}
				}
			}
		})

		It("contributes nothing outside the summed range", func() {
			for _, b := range []Boundary{Dirichlet, Neumann} {
				sol, err := New(xs, ts, CoefficientFunc(func(int) float64 { return 1 }), WithBoundary(b), WithTerms(4))
				Expect(err).NotTo(HaveOccurred())
				for _, n := range []int{-1, 5, 100} {
					Expect(sol.ModeTemperature(0.37, 0, n)).To(Equal(0.0))
					Expect(sol.ModeFlux(0.37, 0, n)).To(Equal(0.0))
				}
				Expect(sol.ModeFlux(0.37, 0, 0)).To(Equal(0.0))
			}
		})

		It("decays faster with larger diffusivity", func() {
			slow, err := New(xs, ts, CoefficientFunc(harmonic), WithDiffusivity(0.5))
			Expect(err).NotTo(HaveOccurred())
			fast, err := New(xs, ts, CoefficientFunc(harmonic), WithDiffusivity(2))
			Expect(err).NotTo(HaveOccurred())
			Expect(fast.WaveSpeed()).To(BeNumerically("~", math.Sqrt2, 1e-15))
			Expect(math.Abs(fast.ModeTemperature(0.5, 0.1, 1))).To(BeNumerically("<", math.Abs(slow.ModeTemperature(0.5, 0.1, 1))))
		})
	})

	Describe("truncation", func() {
		It("converges as terms are added", func() {
			value := func(terms int) float64 {
				sol, err := New(xs, ts, CoefficientFunc(harmonic), WithTerms(terms))
				Expect(err).NotTo(HaveOccurred())
				return sol.TemperatureAt(0.37, 0.01)
			}
			prev := math.Inf(1)
			for _, n := range []int{1, 2, 4, 8, 16, 32} {
				delta := math.Abs(value(2*n) - value(n))
				if prev > 1e-12 {
					Expect(delta).To(BeNumerically("<", prev))
				} else {
					Expect(delta).To(BeNumerically("<=", prev))
				}
				prev = delta
			}
			Expect(prev).To(BeNumerically("<", 1e-10))
		})
	})

	Describe("local angular frequency", func() {
		It("follows omega0/3 + omega0 sqrt(T)", func() {
			sol, err := New(xs, ts, CoefficientFunc(cosine), WithBoundary(Neumann))
			Expect(err).NotTo(HaveOccurred())
			temp := sol.TemperatureAt(0.3, 0.02)
			Expect(sol.LocalAngularFrequency(0.3, 0.02, 800)).To(Equal(800.0/3 + 800*math.Sqrt(temp)))
		})

		It("yields NaN where the temperature is negative", func() {
			sol, err := New(xs, ts, CoefficientFunc(func(n int) float64 { return -1 }), WithTerms(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(math.IsNaN(sol.LocalAngularFrequency(0.5, 0, 1))).To(BeTrue())
		})
	})

	Describe("construction", func() {
		It("rejects invalid parameters", func() {
			c := CoefficientFunc(harmonic)
			cases := [][]Option{
				{WithDiffusivity(0)},
				{WithDiffusivity(-1)},
				{WithDiffusivity(math.NaN())},
				{WithTerms(0)},
			}
			for _, opts := range cases {
				_, err := New(xs, ts, c, opts...)
				Expect(errors.Is(err, ErrParameterBounds)).To(BeTrue())
			}
			_, err := New(nil, ts, c)
			Expect(errors.Is(err, ErrParameterBounds)).To(BeTrue())
			_, err = New(xs, []float64{0, -1}, c)
			Expect(errors.Is(err, ErrParameterBounds)).To(BeTrue())
		})

		It("rejects boundaries outside the enumeration", func() {
			_, err := New(xs, ts, CoefficientFunc(harmonic), WithBoundary(Boundary(7)))
			Expect(errors.Is(err, ErrUnknownBoundary)).To(BeTrue())
		})

		It("propagates provider failures", func() {
			boom := errors.New("boom")
			_, err := New(xs, ts, failing{at: 3, err: boom})
			Expect(errors.Is(err, ErrCoefficient)).To(BeTrue())
			Expect(errors.Is(err, boom)).To(BeTrue())
			var ce *CoefficientError
			Expect(errors.As(err, &ce)).To(BeTrue())
			Expect(ce.N).To(Equal(3))
		})

		It("copies the samples it is given", func() {
			space := []float64{0, 0.5, 1}
			sol, err := New(space, ts, CoefficientFunc(harmonic))
			Expect(err).NotTo(HaveOccurred())
			space[1] = 42
			Expect(sol.Space()[1]).To(Equal(0.5))
		})
	})
})

type failing struct {
	at  int
	err error
}

func (f failing) Coefficient(n int) (float64, error) {
	if n == f.at {
		return 0, f.err
	}
	return 1, nil
}
