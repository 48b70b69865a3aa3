// SPDX-License-Identifier: MIT
package csvio

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFile indicates that a header was required but the input has no records.
	ErrEmptyFile = errors.New("csvio: file is empty")

	// ErrColumnNotFound indicates that the target column is absent from the header.
	ErrColumnNotFound = errors.New("csvio: target column not found")

	// ErrMalformedRow indicates a record whose field count differs from the header's.
	ErrMalformedRow = errors.New("csvio: row has unexpected number of fields")

	// ErrParseCell indicates a field that is not a valid float64.
	ErrParseCell = errors.New("csvio: cell is not a number")
)

// lineErrorf wraps err with the operation and the 1-based input line.
func lineErrorf(op string, line int, err error) error {
	return fmt.Errorf("%s(line %d): %w", op, line, err)
}
