// Package fourier evaluates truncated Fourier-series solutions of the 1-D
// heat equation on a rod of unit length.
//
// A [Solution] combines normal modes
//
//	u_n(x, t) = c(n) * exp(-lambda(n)^2 * t) * phi_n(x)
//
// where phi_n is sin(n*pi*x) for [Dirichlet] ends and cos(n*pi*x) for
// [Neumann] ends. Neumann solutions carry an extra constant term c(0), the
// mean temperature the rod relaxes to. The heat flux is the negative spatial
// derivative of the same series.
//
// Nothing here discretizes the PDE: every value comes from the closed form.
//
// # Arrays
//
// Besides the pointwise forms ([Solution.TemperatureAt],
// [Solution.HeatFluxAt]) the array forms accept any [mat.Matrix] operands and
// broadcast them the usual way: a dimension of length 1 stretches to match
// the other operand. A column of positions against a row of times gives the
// full [space, time] grid:
//
//	sol, _ := fourier.New(xs, ts, fourier.CoefficientFunc(coeff), fourier.WithBoundary(fourier.Neumann))
//	grid, _ := sol.Temperature(fourier.Column(xs), fourier.Row(ts))
//
// Every element of an array result is produced by the same scalar kernel as
// the pointwise forms, so grid[i, j] == TemperatureAt(xs[i], ts[j]) holds
// bit for bit.
//
// # Thread Safety
//
// A Solution is immutable after [New] and may be shared between goroutines.
// [Memo] is safe for concurrent use.
package fourier
