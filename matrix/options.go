// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// triangular solvers and factorization kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) applied by every kernel that takes ...Option.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Explicit numeric policy: the zero-pivot tolerance lives in one place.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the magnitude below which a pivot, a triangular
	// diagonal entry or a Gram-Schmidt residual norm is treated as zero.
	DefaultPivotTolerance = 1e-12
)

const panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	pivotTol float64 // >= 0; DefaultPivotTolerance
}

// PivotTolerance reports the effective zero-pivot tolerance.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// WithPivotTolerance sets the zero-pivot tolerance used by BackSub, ForSub,
// SolveQR, SolveLU, Determinant and Inverse.
//
// Behavior highlights:
//   - Strict validation in constructor; panics when tol is NaN, ±Inf or negative.
//   - tol == 0 only rejects exact zeros.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// NewOptions resolves option setters against documented defaults.
// Pure function; stable for a given sequence of opts.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of defaults.
// Nil setters are skipped so callers can forward optional values unchecked.
func gatherOptions(user ...Option) Options {
	o := Options{pivotTol: DefaultPivotTolerance}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order
		}
	}

	return o
}
