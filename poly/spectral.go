package poly

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// MaxSpectralSpan is the largest product exponent span (highest minus lowest
// exponent, plus one) that [Polynomial.MulSpectral] will transform.
const MaxSpectralSpan = 1 << 22

// spectralNoiseFloor is the magnitude, relative to the largest product
// coefficient, below which FFT output is treated as round-off.
const spectralNoiseFloor = 1e-9

// minFFTSize keeps tiny products off degenerate plan sizes.
const minFFTSize = 16

// MulSpectral returns the product p*q computed as a linear convolution of
// the dense coefficient vectors via FFT. It is faster than [Polynomial.Mul]
// for long operands with few gaps between exponents.
//
// The result is approximate: coefficients are exact only within FFT
// round-off. Integer coefficient types are rounded to nearest and only
// zeros are dropped; for float types coefficients within the noise floor
// of the largest one are dropped. Product exponents outside the int range
// return [ErrExponentOverflow] rather than wrapping. A
// product with no remaining terms is returned as the single term (0, 0),
// as is the product with an empty operand.
func (p Polynomial[T]) MulSpectral(q Polynomial[T]) (Polynomial[T], error) {
	if len(p.terms) == 0 || len(q.terms) == 0 {
		return sentinel[T](), nil
	}

	loP, hiP := p.bounds()
	loQ, hiQ := q.bounds()

	// A negative difference means hi-lo wrapped around.
	spanP, spanQ := hiP-loP, hiQ-loQ
	if spanP < 0 || spanQ < 0 || spanP >= MaxSpectralSpan || spanQ >= MaxSpectralSpan {
		return Polynomial[T]{}, fmt.Errorf("%w: operand spans exceed %d", ErrSpanTooLarge, MaxSpectralSpan)
	}

	outLen := spanP + spanQ + 1
	if outLen > MaxSpectralSpan {
		return Polynomial[T]{}, fmt.Errorf("%w: %d exceeds %d", ErrSpanTooLarge, outLen, MaxSpectralSpan)
	}

	base, okLo := addExp(loP, loQ)
	_, okHi := addExp(hiP, hiQ)
	if !okLo || !okHi {
		return Polynomial[T]{}, ErrExponentOverflow
	}

	fftSize := max(nextPowerOf2(outLen), minFFTSize)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Polynomial[T]{}, fmt.Errorf("poly: failed to create FFT plan: %w", err)
	}

	a := densify(p.terms, loP, fftSize)
	b := densify(q.terms, loQ, fftSize)

	if err := plan.Forward(a, a); err != nil {
		return Polynomial[T]{}, fmt.Errorf("poly: forward FFT failed: %w", err)
	}

	if err := plan.Forward(b, b); err != nil {
		return Polynomial[T]{}, fmt.Errorf("poly: forward FFT failed: %w", err)
	}

	for i := range a {
		a[i] *= b[i]
	}

	if err := plan.Inverse(a, a); err != nil {
		return Polynomial[T]{}, fmt.Errorf("poly: inverse FFT failed: %w", err)
	}

	peak := 0.0
	for i := range outLen {
		peak = math.Max(peak, math.Abs(real(a[i])))
	}

	// Rounding already removes round-off for integer types.
	floor := spectralNoiseFloor * peak
	integral := isIntegral[T]()
	if integral {
		floor = 0
	}

	out := make([]Term[T], 0, outLen)
	for i := outLen - 1; i >= 0; i-- {
		v := real(a[i])
		if integral {
			v = math.Round(v)
		}

		if math.Abs(v) <= floor || v == 0 {
			continue
		}

		out = append(out, Term[T]{Coeff: T(v), Exp: base + i})
	}

	if len(out) == 0 {
		return sentinel[T](), nil
	}

	return Polynomial[T]{terms: out}, nil
}

// bounds returns the lowest and highest stored exponent. p must not be empty.
func (p Polynomial[T]) bounds() (lo, hi int) {
	lo, hi = p.terms[0].Exp, p.terms[0].Exp
	for _, t := range p.terms[1:] {
		lo = min(lo, t.Exp)
		hi = max(hi, t.Exp)
	}

	return lo, hi
}

// densify lays terms out as a zero-padded coefficient vector indexed by
// exponent minus lo. Repeated exponents add up.
func densify[T Number](terms []Term[T], lo, size int) []complex128 {
	out := make([]complex128, size)
	for _, t := range terms {
		out[t.Exp-lo] += complex(float64(t.Coeff), 0)
	}

	return out
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
