// SPDX-License-Identifier: MIT
package report

import (
	"errors"
	"fmt"
	"io"

	pongo2 "github.com/flosch/pongo2/v5"

	"github.com/katalvlaran/lstsq/regression"
)

// ErrFeatureCount is returned by NewSummary when the feature names do not
// match the coefficient vector.
var ErrFeatureCount = errors.New("report: feature names do not match coefficients")

// Coefficient is one named entry of β.
type Coefficient struct {
	Name  string
	Value float64
}

// Summary is the data behind Render.
type Summary struct {
	Solver       string
	Target       string
	N            int
	Coefficients []Coefficient
	RSquared     float64
	RMSE         float64
}

const summaryTemplate = `Ordinary least squares ({{ solver }})
target:       {{ target }}
observations: {{ n }}
coefficients:
{% for c in coefficients %}  {{ c.Name|ljust:20 }} {{ c.Value|floatformat:6 }}
{% endfor %}R^2:          {{ r2|floatformat:6 }}
RMSE:         {{ rmse|floatformat:6 }}
`

var summaryTpl = pongo2.Must(pongo2.NewSet("report", pongo2.DefaultLoader).FromString(summaryTemplate))

// NewSummary evaluates lr on the training data (X, y) and pairs each
// coefficient with its name from features.
func NewSummary(lr *regression.LinearRegression, target string, features []string, X [][]float64, y []float64) (Summary, error) {
	beta := lr.Coefficients()
	if beta == nil {
		return Summary{}, fmt.Errorf("NewSummary: %w", regression.ErrNotFitted)
	}
	if len(features) != len(beta) {
		return Summary{}, fmt.Errorf("NewSummary: %d names, %d coefficients: %w", len(features), len(beta), ErrFeatureCount)
	}
	r2, err := lr.RSquared(X, y)
	if err != nil {
		return Summary{}, fmt.Errorf("NewSummary: %w", err)
	}
	rmse, err := lr.RMSE(X, y)
	if err != nil {
		return Summary{}, fmt.Errorf("NewSummary: %w", err)
	}

	s := Summary{
		Solver:       lr.Options().Solver().String(),
		Target:       target,
		N:            len(y),
		Coefficients: make([]Coefficient, len(beta)),
		RSquared:     r2,
		RMSE:         rmse,
	}
	for i := range beta {
		s.Coefficients[i] = Coefficient{Name: features[i], Value: beta[i]}
	}

	return s, nil
}

// Render writes the text summary of s to w.
func Render(w io.Writer, s Summary) error {
	out, err := summaryTpl.Execute(pongo2.Context{
		"solver":       s.Solver,
		"target":       s.Target,
		"n":            s.N,
		"coefficients": s.Coefficients,
		"r2":           s.RSquared,
		"rmse":         s.RMSE,
	})
	if err != nil {
		return fmt.Errorf("Render: %w", err)
	}
	_, err = io.WriteString(w, out)

	return err
}
