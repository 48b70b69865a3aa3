// SPDX-License-Identifier: MIT

// Package report presents a fitted regression: a plain-text summary rendered
// from a pongo2 template, and a predicted-versus-actual scatter plot drawn with
// gonum/plot.
package report
