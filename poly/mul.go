package poly

import "slices"

// Mul returns the product p*q. It forms every pairwise term product, sorts
// them by descending exponent and sums runs of equal exponents in a single
// pass. Collected coefficients that sum to zero are kept.
//
// Exponents add with int arithmetic, so sums beyond the int range wrap
// around. Use [Polynomial.MulSpectral] to have overflow reported.
//
// If p or q is empty the result is the single term (0, 0).
func (p Polynomial[T]) Mul(q Polynomial[T]) Polynomial[T] {
	if len(p.terms) == 0 || len(q.terms) == 0 {
		return sentinel[T]()
	}

	cross := crossProduct(p.terms, q.terms)
	sortDescending(cross)

	// Merge in place; the write index never passes the read index.
	out := cross[:1]
	for _, t := range cross[1:] {
		last := &out[len(out)-1]
		if t.Exp == last.Exp {
			last.Coeff += t.Coeff
			continue
		}

		out = append(out, t)
	}

	return Polynomial[T]{terms: slices.Clip(out)}
}

// MulGrouped returns the product p*q, accumulating pairwise term products
// in a map keyed by exponent. The result matches [Polynomial.Mul] up to
// floating-point summation order. Exponent sums wrap around on int
// overflow, as in Mul.
//
// If p or q is empty the result is the single term (0, 0).
func (p Polynomial[T]) MulGrouped(q Polynomial[T]) Polynomial[T] {
	if len(p.terms) == 0 || len(q.terms) == 0 {
		return sentinel[T]()
	}

	acc := make(map[int]T, len(p.terms)+len(q.terms))
	for _, a := range p.terms {
		for _, b := range q.terms {
			acc[a.Exp+b.Exp] += a.Coeff * b.Coeff
		}
	}

	out := make([]Term[T], 0, len(acc))
	for exp, coeff := range acc {
		out = append(out, Term[T]{Coeff: coeff, Exp: exp})
	}

	slices.SortFunc(out, byExpDescending[T])

	return Polynomial[T]{terms: out}
}

func crossProduct[T Number](a, b []Term[T]) []Term[T] {
	out := make([]Term[T], 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			out = append(out, Term[T]{Coeff: x.Coeff * y.Coeff, Exp: x.Exp + y.Exp})
		}
	}

	return out
}

// addExp returns a+b and whether the sum stayed within the int range.
func addExp(a, b int) (int, bool) {
	s := a + b
	return s, (s > a) == (b > 0)
}
