// Package poly provides a sparse single-variable polynomial with a generic
// numeric coefficient type.
//
// A [Polynomial] is an ordered list of terms, each a coefficient and an
// integer exponent. Exponents may be negative. Polynomials are immutable
// values: every operation returns a new polynomial and never modifies its
// operands.
//
// # Construction
//
// Polynomials are parsed from a bracketed text form, one group per term:
//
//	p, err := poly.Parse[float64]("[3 5] [-7 2] [11 0]") // 3x^5 - 7x^2 + 11
//
// Whitespace is insignificant and any text before the first '[' is ignored.
// Coefficients whose magnitude is at or below [ZeroTolerance] are dropped.
// The zero value of Polynomial is the empty (zero) polynomial.
//
// # Multiplication
//
// Three strategies compute the same product:
//
//   - [Polynomial.Mul]: cross product, sort by exponent, linear merge of like terms
//   - [Polynomial.MulGrouped]: cross product accumulated in a map keyed by exponent
//   - [Polynomial.MulSpectral]: dense FFT convolution, suited to long dense operands
//
// Mul and MulGrouped keep terms whose collected coefficient sums to zero.
// If either operand is empty, every strategy returns the single term (0, 0)
// rather than an empty polynomial.
//
// # Evaluation
//
// [Polynomial.Eval] sums coeff*x^exp term by term in float64, regardless of
// the coefficient type. [Polynomial.Apply] converts that result back to the
// coefficient type. Building with the fastmath tag keeps powers up to 64
// exact and approximates larger powers of positive arguments.
package poly
