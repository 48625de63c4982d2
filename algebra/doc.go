// Package algebra provides exact polynomial and rational-function
// arithmetic over the rationals, together with the linear algebra used to
// build Padé approximants.
//
// What:
//
//   - Polynomial: immutable, ascending coefficients in *big.Rat, trimmed so
//     the zero polynomial has Degree -1.
//   - Rational: a reduced quotient of polynomials with a monic denominator.
//     It implements number.Value, so number walls can be built over
//     rational functions (for example to read off characteristic
//     polynomials).
//   - Memo: explicit cache for factorials, falling factorials and Stirling
//     numbers of the first kind.
//   - GaussianElimination, Augment and Pade.
//
// Why:
//
//	Number walls divide constantly. Exact arithmetic keeps every entry a
//	true determinant; floating point would blur the zero patterns the walls
//	exist to expose.
//
// Canonical form:
//
//	A Rational p/q is stored with gcd(p, q) = 1 and q monic; 0 is stored as
//	0/1. Two Rationals are equal exactly when their stored numerators and
//	denominators are.
package algebra
