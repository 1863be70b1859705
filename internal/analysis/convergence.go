package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/heatrod/internal/fourier"
)

// Builder constructs a Solution summing the given number of terms.
type Builder func(terms int) (*fourier.Solution, error)

type ConvergencePoint struct {
	Terms int
	Value float64
	// Delta is |Value - previous Value|, NaN for the first order.
	Delta float64
}

// Convergence evaluates the temperature at (x, t) for each order, in
// ascending order.
func Convergence(build Builder, x, t float64, orders []int) ([]ConvergencePoint, error) {
	if len(orders) == 0 {
		return nil, fmt.Errorf("analysis: no orders given")
	}
	sorted := append([]int(nil), orders...)
	sort.Ints(sorted)

	pts := make([]ConvergencePoint, 0, len(sorted))
	prev := math.NaN()
	for _, n := range sorted {
		sol, err := build(n)
		if err != nil {
			return nil, fmt.Errorf("analysis: %d terms: %w", n, err)
		}
		v := sol.TemperatureAt(x, t)
		pts = append(pts, ConvergencePoint{Terms: n, Value: v, Delta: math.Abs(v - prev)})
		prev = v
	}
	return pts, nil
}

// DoublingOrders returns from, 2*from, ... up to and including max.
func DoublingOrders(from, max int) []int {
	var out []int
	for n := from; n > 0 && n <= max; n *= 2 {
		out = append(out, n)
	}
	return out
}
