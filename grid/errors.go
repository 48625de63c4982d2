package grid

import "errors"

var (
	// ErrBadShape is returned when a table is requested with negative dimensions.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrOutOfRange indicates a write to a cell outside the table.
	ErrOutOfRange = errors.New("grid: cell out of range")
)
