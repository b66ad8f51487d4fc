// Package linalg provides dense complex-matrix primitives for quantum
// operator algebra.
//
// Operators are held as [mat.CDense] matrices. The package fills the
// gaps gonum leaves on the complex side:
//
//   - [Kron]: Kronecker (tensor) product
//   - [Expm]: matrix exponential via scaling-and-squaring with Padé
//   - [Dagger]: materialized conjugate transpose
//   - [Vec]: column-stacked vectorization
//
// # Conventions
//
// Shape mismatches panic, matching gonum/mat behavior. Callers that need
// recoverable dimension errors check dimensions before calling in.
package linalg
