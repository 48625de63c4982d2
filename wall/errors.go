package wall

import "errors"

var (
	// ErrEmptySequence is returned by New for a sequence without elements.
	ErrEmptySequence = errors.New("wall: empty sequence")

	// ErrAbsentInSequence is returned by New when an element is nil or
	// number.Absent.
	ErrAbsentInSequence = errors.New("wall: absent element in sequence")

	// ErrFrameIndex indicates a frame index outside [0, Length).
	ErrFrameIndex = errors.New("wall: frame index out of range")

	// ErrNotOnFrame indicates a cell that does not lie on the requested frame
	// line.
	ErrNotOnFrame = errors.New("wall: cell is not on the frame")
)
