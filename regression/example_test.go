package regression_test

import (
	"fmt"

	"github.com/katalvlaran/lstsq/regression"
)

// ExampleLinearRegression fits y = 2x with an intercept column and predicts x = 4.
func ExampleLinearRegression() {
	X := [][]float64{{1, 1}, {1, 2}, {1, 3}}
	y := []float64{3, 5, 7}

	lr := regression.New()
	if err := lr.Fit(X, y); err != nil {
		fmt.Println("error:", err)
		return
	}
	beta := lr.Coefficients()
	fmt.Printf("beta = [%.3f %.3f]\n", beta[0], beta[1])

	yhat, _ := lr.Predict([][]float64{{1, 4}})
	fmt.Printf("predict(4) = %.3f\n", yhat[0])

	// Output:
	// beta = [1.000 2.000]
	// predict(4) = 9.000
}

// ExampleWithSolver selects the normal-equations LU path.
func ExampleWithSolver() {
	lr := regression.New(regression.WithSolver(regression.SolverLU))
	_ = lr.Fit([][]float64{{1, 1}, {1, 2}, {1, 3}}, []float64{2.1, 3.9, 6.2})
	r2, _ := lr.RSquared([][]float64{{1, 1}, {1, 2}, {1, 3}}, []float64{2.1, 3.9, 6.2})
	fmt.Println(lr.Options().Solver(), fmt.Sprintf("%.4f", r2))

	// Output:
	// lu 0.9951
}
