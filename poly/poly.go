package poly

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ZeroTolerance is the magnitude at or below which a coefficient is treated
// as zero when building a polynomial.
const ZeroTolerance = 1e-6

// Errors returned by polynomial functions.
var (
	ErrEmptyPolynomial    = errors.New("poly: empty polynomial")
	ErrUnterminatedTerm   = errors.New("poly: unterminated term")
	ErrIncompleteTerm     = errors.New("poly: incomplete term")
	ErrInvalidCoefficient = errors.New("poly: invalid coefficient")
	ErrInvalidExponent    = errors.New("poly: invalid exponent")
	ErrSpanTooLarge       = errors.New("poly: exponent span too large")
	ErrExponentOverflow   = errors.New("poly: exponent overflow")
)

// Number is the set of coefficient types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Term is a single monomial Coeff*x^Exp.
type Term[T Number] struct {
	Coeff T
	Exp   int
}

// Polynomial is a sum of terms. The zero value is the empty polynomial.
type Polynomial[T Number] struct {
	terms []Term[T]
}

// New returns the empty polynomial.
func New[T Number]() Polynomial[T] {
	return Polynomial[T]{}
}

// FromTerms builds a polynomial from explicit terms using the same rules as
// [Parse]: near-zero coefficients are dropped and the terms are sorted by
// descending exponent only if the input was not already in that order.
func FromTerms[T Number](terms ...Term[T]) Polynomial[T] {
	b := newBuilder[T](len(terms), ZeroTolerance)
	for _, t := range terms {
		b.add(t.Coeff, t.Exp)
	}

	return b.build()
}

// sentinel is the product returned when an operand is empty.
func sentinel[T Number]() Polynomial[T] {
	return Polynomial[T]{terms: []Term[T]{{Coeff: 0, Exp: 0}}}
}

// builder accumulates terms and remembers whether they arrived out of order.
type builder[T Number] struct {
	terms    []Term[T]
	tol      float64
	unsorted bool
}

func newBuilder[T Number](capacity int, tol float64) *builder[T] {
	return &builder[T]{
		terms: make([]Term[T], 0, capacity),
		tol:   tol,
	}
}

func (b *builder[T]) add(coeff T, exp int) {
	if math.Abs(float64(coeff)) <= b.tol {
		return
	}

	if n := len(b.terms); n > 0 && exp > b.terms[n-1].Exp {
		b.unsorted = true
	}

	b.terms = append(b.terms, Term[T]{Coeff: coeff, Exp: exp})
}

func (b *builder[T]) build() Polynomial[T] {
	if b.unsorted {
		sortDescending(b.terms)
	}

	return Polynomial[T]{terms: b.terms}
}

func byExpDescending[T Number](a, b Term[T]) int {
	return cmp.Compare(b.Exp, a.Exp)
}

// sortDescending orders terms by descending exponent, keeping the relative
// order of equal exponents.
func sortDescending[T Number](terms []Term[T]) {
	slices.SortStableFunc(terms, byExpDescending[T])
}

// Len returns the number of stored terms.
func (p Polynomial[T]) Len() int {
	return len(p.terms)
}

// IsZero reports whether p has no terms.
func (p Polynomial[T]) IsZero() bool {
	return len(p.terms) == 0
}

// Terms returns a copy of the stored terms.
func (p Polynomial[T]) Terms() []Term[T] {
	return slices.Clone(p.terms)
}

// Clone returns a deep copy of p.
func (p Polynomial[T]) Clone() Polynomial[T] {
	return Polynomial[T]{terms: slices.Clone(p.terms)}
}

// Equal reports whether p and q store identical terms in the same order.
func (p Polynomial[T]) Equal(q Polynomial[T]) bool {
	return slices.Equal(p.terms, q.terms)
}

// MaxDegree returns the exponent of the first stored term, which is the
// highest exponent of a canonical polynomial.
func (p Polynomial[T]) MaxDegree() (int, error) {
	if len(p.terms) == 0 {
		return 0, ErrEmptyPolynomial
	}

	return p.terms[0].Exp, nil
}

// LookupExponent returns the exponent of the k-th term.
func (p Polynomial[T]) LookupExponent(k int) (int, bool) {
	if k < 0 || k >= len(p.terms) {
		return 0, false
	}

	return p.terms[k].Exp, true
}

// ExponentAt returns the exponent of the k-th term, or 0 if k is out of
// range. Use [Polynomial.LookupExponent] to tell the two apart.
func (p Polynomial[T]) ExponentAt(k int) int {
	exp, _ := p.LookupExponent(k)
	return exp
}

// LookupCoefficient returns the coefficient of the k-th term.
func (p Polynomial[T]) LookupCoefficient(k int) (T, bool) {
	if k < 0 || k >= len(p.terms) {
		var zero T
		return zero, false
	}

	return p.terms[k].Coeff, true
}

// CoefficientAt returns the coefficient of the k-th term, or the zero value
// of T if k is out of range.
func (p Polynomial[T]) CoefficientAt(k int) T {
	c, _ := p.LookupCoefficient(k)
	return c
}

// String formats p in the bracketed form accepted by [Parse].
func (p Polynomial[T]) String() string {
	var sb strings.Builder
	for i, t := range p.terms {
		if i > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteByte('[')
		sb.WriteString(formatCoeff(t.Coeff))
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(t.Exp))
		sb.WriteByte(']')
	}

	return sb.String()
}

func formatCoeff[T Number](c T) string {
	switch {
	case isUnsigned[T]():
		return strconv.FormatUint(uint64(c), 10)
	case isIntegral[T]():
		return strconv.FormatInt(int64(c), 10)
	case isFloat32[T]():
		return strconv.FormatFloat(float64(c), 'g', -1, 32)
	default:
		return strconv.FormatFloat(float64(c), 'g', -1, 64)
	}
}

// isIntegral reports whether T is an integer type.
func isIntegral[T Number]() bool {
	half := 0.5
	return T(half) == 0
}

// isUnsigned reports whether T is an unsigned integer type.
func isUnsigned[T Number]() bool {
	var zero T
	return zero-1 > 0
}

// isFloat32 reports whether T is a single precision float type.
func isFloat32[T Number]() bool {
	v := 1 + 1e-10
	return !isIntegral[T]() && float64(T(v)) != v
}
