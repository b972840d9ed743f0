package poly

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseOption configures parsing.
type ParseOption func(*parseConfig)

type parseConfig struct {
	tolerance float64
}

func defaultParseConfig() parseConfig {
	return parseConfig{
		tolerance: ZeroTolerance,
	}
}

// WithZeroTolerance sets the magnitude at or below which parsed
// coefficients are dropped. Negative values are ignored.
func WithZeroTolerance(eps float64) ParseOption {
	return func(c *parseConfig) {
		if eps >= 0 {
			c.tolerance = eps
		}
	}
}

// Parse builds a polynomial from its bracketed text form, for example
// "[3 5] [-7 2] [11 0]" for 3x^5 - 7x^2 + 11.
//
// Text before the first '[' and between groups is skipped, as are extra
// fields after the exponent inside a group. Input without any '[' yields
// the empty polynomial. Terms keep their input order unless an exponent is
// greater than the one before it, in which case all terms are sorted by
// descending exponent. Repeated exponents are not merged.
func Parse[T Number](s string, opts ...ParseOption) (Polynomial[T], error) {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	open := strings.IndexByte(s, '[')
	if open < 0 {
		return Polynomial[T]{}, nil
	}

	rest := s[open+1:]
	b := newBuilder[T](strings.Count(rest, "]"), cfg.tolerance)

	for n := 0; ; n++ {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return Polynomial[T]{}, fmt.Errorf("%w: term %d", ErrUnterminatedTerm, n)
		}

		coeff, exp, err := parseTerm[T](rest[:end])
		if err != nil {
			return Polynomial[T]{}, fmt.Errorf("%w (term %d)", err, n)
		}

		b.add(coeff, exp)

		rest = rest[end+1:]

		next := strings.IndexByte(rest, '[')
		if next < 0 {
			break
		}

		rest = rest[next+1:]
	}

	return b.build(), nil
}

// MustParse is like [Parse] but panics on malformed input.
func MustParse[T Number](s string, opts ...ParseOption) Polynomial[T] {
	p, err := Parse[T](s, opts...)
	if err != nil {
		panic(err)
	}

	return p
}

// parseTerm parses the inside of one bracket group.
func parseTerm[T Number](group string) (T, int, error) {
	var zero T

	fields := strings.Fields(group)
	if len(fields) < 2 {
		return zero, 0, fmt.Errorf("%w: %q", ErrIncompleteTerm, strings.TrimSpace(group))
	}

	coeff, err := parseCoeff[T](fields[0])
	if err != nil {
		return zero, 0, fmt.Errorf("%w: %w", ErrInvalidCoefficient, err)
	}

	exp, err := strconv.Atoi(fields[1])
	if err != nil {
		return zero, 0, fmt.Errorf("%w: %w", ErrInvalidExponent, err)
	}

	return coeff, exp, nil
}

// parseCoeff parses tok as a value of T, rejecting values T cannot hold.
func parseCoeff[T Number](tok string) (T, error) {
	var zero T

	switch {
	case isUnsigned[T]():
		v, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return zero, err
		}

		c := T(v)
		if uint64(c) != v {
			return zero, rangeError("ParseUint", tok)
		}

		return c, nil
	case isIntegral[T]():
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return zero, err
		}

		c := T(v)
		if int64(c) != v {
			return zero, rangeError("ParseInt", tok)
		}

		return c, nil
	default:
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return zero, err
		}

		c := T(v)
		if math.IsInf(float64(c), 0) && !math.IsInf(v, 0) {
			return zero, rangeError("ParseFloat", tok)
		}

		return c, nil
	}
}

func rangeError(fn, tok string) error {
	return &strconv.NumError{Func: fn, Num: tok, Err: strconv.ErrRange}
}
