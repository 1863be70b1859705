package fourier

// Coefficients supplies the Fourier coefficient of mode n. Under Neumann
// ends it is also asked for n = 0, the mean term.
type Coefficients interface {
	Coefficient(n int) (float64, error)
}

// CoefficientFunc adapts a plain function to [Coefficients].
type CoefficientFunc func(n int) float64

func (f CoefficientFunc) Coefficient(n int) (float64, error) {
	return f(n), nil
}

// resolve queries the provider once for every index the series needs.
func resolve(c Coefficients, b Boundary, terms int) ([]float64, error) {
	out := make([]float64, terms+1)
	first := 1
	if b == Neumann {
		first = 0
	}
	for n := first; n <= terms; n++ {
		v, err := c.Coefficient(n)
		if err != nil {
			return nil, &CoefficientError{N: n, Err: err}
		}
		out[n] = v
	}
	return out, nil
}
