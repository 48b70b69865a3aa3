// Package lstsq is a small, dependency-light toolkit for ordinary least-squares
// linear regression on dense in-memory data.
//
// What is lstsq?
//
//	A dense float64 matrix engine with two competing least-squares solvers:
//		• QR via modified Gram-Schmidt, then back-substitution
//		• LU with partial pivoting on the normal equations XᵀXβ = Xᵀy
//	plus a regression model, a CSV loader and a text/plot report.
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/     - Dense, vector kernels, triangular solvers, SolveQR, SolveLU, Determinant, Inverse
//	regression/ - LinearRegression (Fit, Predict, Coefficients) and fit diagnostics
//	csvio/      - CSV → design matrix + target, with an optional intercept column
//	report/     - text summary (pongo2) and predicted-vs-actual plot (gonum/plot)
//	cmd/lstsq/  - command-line driver
//
// Quick example:
//
//	ds, _ := csvio.ReadMatrixWithTarget("housing.csv", "MEDV")
//	lr := regression.New()
//	_ = lr.Fit(ds.X, ds.Y)
//	fmt.Println(lr.Coefficients())
//
//	go install github.com/katalvlaran/lstsq/cmd/lstsq@latest
package lstsq
