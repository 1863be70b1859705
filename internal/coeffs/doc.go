// Package coeffs provides Fourier coefficient sets for [fourier.Solution].
//
// Three kinds of provider are available:
//
//   - closed forms for the profiles used by the presets ([DirichletBump],
//     [NeumannCosine], [DirichletStep], [NeumannRamp])
//   - [Project], which integrates an arbitrary initial profile against the
//     sine or cosine basis by Gauss-Legendre quadrature
//   - [FromSamples], which derives the coefficients of a uniformly sampled
//     profile through a discrete sine or cosine transform
package coeffs
