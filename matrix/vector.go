// SPDX-License-Identifier: MIT

// Package matrix - stateless vector kernels over []float64.
//
// Purpose:
//   - Element-wise add/subtract, scalar scale, dot product and Euclidean norm.
//   - Every kernel allocates its result; inputs are never mutated.
//   - No shared state: safe to call concurrently on distinct or shared read-only inputs.
//
// NaN/Inf already present in an input propagate unguarded.

package matrix

import (
	"fmt"
	"math"
)

const (
	opVecAdd = "VecAdd"
	opVecSub = "VecSub"
	opDot    = "Dot"
)

// validateVecPair checks both operands for nil and equal length.
func validateVecPair(tag string, a, b []float64) error {
	if a == nil || b == nil {
		return matrixErrorf(tag, ErrNilMatrix)
	}
	if len(a) != len(b) {
		return matrixErrorf(tag, fmt.Errorf("len %d vs %d: %w", len(a), len(b), ErrDimensionMismatch))
	}

	return nil
}

// VecAdd returns a fresh vector out[i] = a[i] + b[i].
// Errors: ErrDimensionMismatch when len(a) != len(b); ErrNilMatrix on nil input.
// Complexity: O(n).
func VecAdd(a, b []float64) ([]float64, error) {
	if err := validateVecPair(opVecAdd, a, b); err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out, nil
}

// VecSub returns a fresh vector out[i] = a[i] - b[i].
// Errors: ErrDimensionMismatch when len(a) != len(b); ErrNilMatrix on nil input.
// Complexity: O(n).
func VecSub(a, b []float64) ([]float64, error) {
	if err := validateVecPair(opVecSub, a, b); err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out, nil
}

// VecScale returns a fresh vector out[i] = alpha * v[i]. Any length is accepted,
// including zero; a nil input yields an empty (non-nil) result.
func VecScale(v []float64, alpha float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = alpha * v[i]
	}

	return out
}

// Dot returns Σ a[i]*b[i], accumulated in index order.
// Errors: ErrDimensionMismatch when len(a) != len(b); ErrNilMatrix on nil input.
func Dot(a, b []float64) (float64, error) {
	if err := validateVecPair(opDot, a, b); err != nil {
		return 0, err
	}
	acc := ZeroSum
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc, nil
}

// Norm returns the Euclidean norm sqrt(Dot(v, v)).
// A nil or empty vector has norm 0.
func Norm(v []float64) float64 {
	acc := NormZero
	for _, x := range v {
		acc += x * x
	}

	return math.Sqrt(acc)
}
