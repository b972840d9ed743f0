package poly_test

import (
	"fmt"

	"github.com/cwbudde/algo-poly/poly"
)

func ExampleParse() {
	// 3x^5 - 7x^2 + 11, with a near-zero term that is dropped
	p, err := poly.Parse[float64]("[3 5] [1e-9 3] [-7 2] [11 0]")
	if err != nil {
		fmt.Println(err)
		return
	}

	deg, _ := p.MaxDegree()

	fmt.Println(p)
	fmt.Printf("Terms: %d\n", p.Len())
	fmt.Printf("Max degree: %d\n", deg)

	// Output:
	// [3 5] [-7 2] [11 0]
	// Terms: 3
	// Max degree: 5
}

func ExamplePolynomial_Mul() {
	p := poly.MustParse[float64]("[1 1] [1 0]") // x + 1

	fmt.Println(p.Mul(p))
	fmt.Println(p.MulGrouped(p))

	// Output:
	// [1 2] [2 1] [1 0]
	// [1 2] [2 1] [1 0]
}

func ExamplePolynomial_Mul_emptyOperand() {
	p := poly.MustParse[float64]("[1 1] [1 0]")

	var empty poly.Polynomial[float64]

	fmt.Println(p.Mul(empty))

	// Output:
	// [0 0]
}

func ExamplePolynomial_MulSpectral() {
	p := poly.MustParse[int]("[1 2] [-1 0]") // x^2 - 1

	q, err := p.MulSpectral(p)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(q)

	// Output:
	// [1 4] [-2 2] [1 0]
}

func ExamplePolynomial_Eval() {
	p := poly.MustParse[float64]("[3 2] [-1 1] [5 0]") // 3x^2 - x + 5

	fmt.Println(p.Eval(2))

	// Output:
	// 15
}

func ExamplePolynomial_ExponentAt() {
	p := poly.MustParse[float64]("[3 5] [-7 2]")

	fmt.Println(p.ExponentAt(1), p.CoefficientAt(1))
	fmt.Println(p.ExponentAt(100), p.CoefficientAt(100))

	_, ok := p.LookupExponent(100)
	fmt.Println(ok)

	// Output:
	// 2 -7
	// 0 0
	// false
}
