package algebra

import "errors"

var (
	// ErrDivisionByZero is returned when dividing by the zero polynomial or
	// building a Rational with a zero denominator.
	ErrDivisionByZero = errors.New("algebra: division by zero")

	// ErrNegativeOrder indicates a negative derivative or integral order.
	ErrNegativeOrder = errors.New("algebra: negative order")

	// ErrConstants indicates that Integral received a constants list whose
	// length differs from the order.
	ErrConstants = errors.New("algebra: constants length must equal the order")

	// ErrBadShape is returned for empty or ragged matrices.
	ErrBadShape = errors.New("algebra: invalid matrix shape")

	// ErrDimensionMismatch indicates matrices with different row counts.
	ErrDimensionMismatch = errors.New("algebra: dimension mismatch")

	// ErrSingular indicates that a linear system has no unique solution.
	ErrSingular = errors.New("algebra: singular system")

	// ErrShortSeries indicates that a Taylor series has fewer than
	// numDegree + denDegree + 1 terms.
	ErrShortSeries = errors.New("algebra: taylor series too short")
)
