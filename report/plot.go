// SPDX-License-Identifier: MIT
package report

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrPlotInput indicates empty or length-mismatched series.
var ErrPlotInput = errors.New("report: actual and predicted must be non-empty and of equal length")

// PlotSize is the width and height of the saved figure.
const PlotSize = 5 * vg.Inch

// WritePlot saves a scatter of predicted against actual values with the
// identity line y = x. The image format follows the extension of path
// (.png, .svg, .pdf, ...).
func WritePlot(path, title string, actual, predicted []float64) error {
	if len(actual) == 0 || len(actual) != len(predicted) {
		return fmt.Errorf("WritePlot: %w", ErrPlotInput)
	}

	pts := make(plotter.XYs, len(actual))
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range actual {
		pts[i].X, pts[i].Y = actual[i], predicted[i]
		lo = math.Min(lo, math.Min(actual[i], predicted[i]))
		hi = math.Max(hi, math.Max(actual[i], predicted[i]))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "actual"
	p.Y.Label.Text = "predicted"
	p.Add(plotter.NewGrid())

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("WritePlot: %w", err)
	}
	sc.GlyphStyle.Radius = vg.Points(2)

	ident, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return fmt.Errorf("WritePlot: %w", err)
	}
	ident.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(sc, ident)
	p.Legend.Add("observations", sc)
	p.Legend.Add("y = x", ident)

	if err = p.Save(PlotSize, PlotSize, path); err != nil {
		return fmt.Errorf("WritePlot: %w", err)
	}

	return nil
}
