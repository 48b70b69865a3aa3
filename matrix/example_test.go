package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lstsq/matrix"
)

// ExampleDense_SolveQR fits y = 1 + 2x through three exact points.
func ExampleDense_SolveQR() {
	X, _ := matrix.NewDenseFrom([][]float64{{1, 1}, {1, 2}, {1, 3}})
	beta, err := X.SolveQR([]float64{3, 5, 7})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("intercept=%.3f slope=%.3f\n", beta[0], beta[1])

	// Output:
	// intercept=1.000 slope=2.000
}

// ExampleDense_SolveLU solves the same system through the normal equations.
func ExampleDense_SolveLU() {
	X, _ := matrix.NewDenseFrom([][]float64{{1, 1}, {1, 2}, {1, 3}})
	beta, _ := X.SolveLU([]float64{2.1, 3.9, 6.2})
	fmt.Printf("%.4f %.4f\n", beta[0], beta[1])

	// Output:
	// -0.0333 2.0500
}

// ExampleDense_Mul shows a value-returning product and String formatting.
func ExampleDense_Mul() {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	I, _ := matrix.NewIdentity(2)
	p, _ := a.Mul(I)
	fmt.Print(p)

	// Output:
	// [1, 2]
	// [3, 4]
}
