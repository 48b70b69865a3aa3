// SPDX-License-Identifier: MIT
package regression

import (
	"fmt"

	"github.com/katalvlaran/lstsq/matrix"
)

// Solver selects the least-squares kernel used by Fit.
type Solver int

const (
	// SolverQR orthogonalizes X with modified Gram-Schmidt (default).
	SolverQR Solver = iota
	// SolverLU solves the normal equations XᵀXβ = Xᵀy with partial-pivot LU.
	SolverLU
)

// String implements fmt.Stringer.
func (s Solver) String() string {
	switch s {
	case SolverQR:
		return "qr"
	case SolverLU:
		return "lu"
	default:
		return fmt.Sprintf("Solver(%d)", int(s))
	}
}

// ParseSolver maps "qr" or "lu" to a Solver.
func ParseSolver(name string) (Solver, error) {
	switch name {
	case "qr", "QR":
		return SolverQR, nil
	case "lu", "LU":
		return SolverLU, nil
	default:
		return 0, fmt.Errorf("regression: unknown solver %q", name)
	}
}

// Option configures a LinearRegression (last-writer-wins).
type Option func(*Options)

// Options is the resolved configuration of a LinearRegression.
type Options struct {
	solver     Solver
	matrixOpts []matrix.Option
}

// Solver reports the configured kernel.
func (o Options) Solver() Solver { return o.solver }

// WithSolver selects the kernel used by Fit. Panics on an unknown Solver.
func WithSolver(s Solver) Option {
	if s != SolverQR && s != SolverLU {
		panic("regression: WithSolver: unknown solver")
	}

	return func(o *Options) { o.solver = s }
}

// WithPivotTolerance forwards a zero-pivot tolerance to the matrix solver.
// Validation (and the panic on NaN, ±Inf or negative values) is matrix's.
func WithPivotTolerance(tol float64) Option {
	mo := matrix.WithPivotTolerance(tol)

	return func(o *Options) { o.matrixOpts = append(o.matrixOpts, mo) }
}

func gatherOptions(user ...Option) Options {
	o := Options{solver: SolverQR}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
