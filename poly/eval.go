package poly

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for evaluation.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (coeffs, powers []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Eval returns the sum of coeff*x^exp over all stored terms. Each term is
// computed with a real-valued power and accumulated in float64 whatever the
// coefficient type. The empty polynomial evaluates to 0.
func (p Polynomial[T]) Eval(x float64) float64 {
	n := len(p.terms)
	if n == 0 {
		return 0
	}

	coeffs, powers, buf := getScratch(n)
	defer putScratch(buf)

	for i, t := range p.terms {
		coeffs[i] = float64(t.Coeff)
		powers[i] = mathPow(x, t.Exp)
	}

	vecmath.MulBlockInPlace(coeffs, powers)

	sum := 0.0
	for _, v := range coeffs {
		sum += v
	}

	return sum
}

// Apply evaluates p at x and converts the float64 result to T. For integer
// types the conversion truncates toward zero.
func (p Polynomial[T]) Apply(x T) T {
	return T(p.Eval(float64(x)))
}
