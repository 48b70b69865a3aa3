// SPDX-License-Identifier: MIT

// Package csvio loads numeric comma-separated tables into the row-major
// [][]float64 layout consumed by matrix.NewDenseFrom and regression.Fit.
//
// Two readers are provided:
//   - ReadMatrix / Parse: every field of every record is a number; the first
//     record can be skipped as a header.
//   - ReadMatrixWithTarget / ParseWithTarget: the first record is a header,
//     the named column becomes the target vector and the remaining columns
//     become feature rows with a constant 1.0 prepended (see WithIntercept).
//
// Blank lines are skipped. Cells are trimmed of surrounding spaces before
// parsing. All failures wrap one of the sentinels in errors.go.
package csvio
