// Package analysis provides numerical checks on truncated series solutions.
//
//   - [Convergence]: point value against number of terms
//   - [BoundaryResidual]: how far the ends drift from their condition
//   - [ModeDecay]: one mode's amplitude over time and its fitted rate
//   - [Spectrum]: modal amplitudes recovered from a sampled profile
//
// # Truncation
//
// Doubling the number of terms should shrink the change at a fixed point:
//
//	pts, _ := analysis.Convergence(build, 0.37, 0.01, []int{4, 8, 16, 32})
//	for _, p := range pts {
//	    fmt.Println(p.Terms, p.Value, p.Delta)
//	}
package analysis
