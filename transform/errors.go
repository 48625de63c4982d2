package transform

import "errors"

var (
	// ErrEmptySequence is returned for a sequence with no terms.
	ErrEmptySequence = errors.New("transform: empty sequence")

	// ErrNotFraction indicates a value that is not an exact number.Fraction.
	ErrNotFraction = errors.New("transform: value is not a fraction")
)
