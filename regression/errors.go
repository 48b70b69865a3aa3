// SPDX-License-Identifier: MIT
package regression

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFitted is returned by Predict and the diagnostics before a successful Fit.
	ErrNotFitted = errors.New("regression: model is not fitted")

	// ErrEmptyInput indicates a design matrix or target with no observations.
	ErrEmptyInput = errors.New("regression: empty input")

	// ErrConstantTarget is returned by RSquared when y has zero total variance.
	ErrConstantTarget = errors.New("regression: target has zero variance")
)

// regressionErrorf wraps err with the LinearRegression method name.
func regressionErrorf(method string, err error) error {
	return fmt.Errorf("LinearRegression.%s: %w", method, err)
}
