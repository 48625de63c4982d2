package wall

import (
	"fmt"

	"github.com/katalvlaran/numberwall/grid"
	"github.com/katalvlaran/numberwall/number"
)

// Side selects the frame line or its outer neighbour.
type Side int

const (
	// Inner is the frame line itself.
	Inner Side = iota
	// Outer is the line one step further from the window.
	Outer
)

// Frame is one edge of the border around a ZeroWindow: Length cells from
// Start stepping in Direction. The cells of a frame form a geometric
// progression whose ratio is Factor.
type Frame struct {
	Direction grid.Direction
	Start     grid.Cell
	Length    int

	// Factor is nil until CalculateFactor finds two present values.
	Factor number.Value
}

// Cell returns the idx-th cell of the frame on the given side.
func (f *Frame) Cell(idx int, side Side) (grid.Cell, error) {
	if idx < 0 || idx >= f.Length {
		return grid.Cell{}, fmt.Errorf("%w: %d not in [0,%d)", ErrFrameIndex, idx, f.Length)
	}

	return f.at(idx, side), nil
}

// at is Cell without the bounds check.
func (f *Frame) at(idx int, side Side) grid.Cell {
	c := f.Start.Step(f.Direction, idx)
	if side == Outer {
		c = c.Next(f.Direction.Outer())
	}

	return c
}

// OuterIndex is the inverse of Cell(n, Outer).
func (f *Frame) OuterIndex(c grid.Cell) (int, error) {
	dr, dc := f.Direction.Delta()
	var n int
	if dc == 0 {
		n = (c.Row - f.Start.Row) * dr
	} else {
		n = (c.Col - f.Start.Col) * dc
	}
	if n < 0 || n >= f.Length || f.at(n, Outer) != c {
		return 0, fmt.Errorf("%w: %v", ErrNotOnFrame, c)
	}

	return n, nil
}

// End returns the last cell of the frame line.
func (f *Frame) End() grid.Cell {
	return f.at(f.Length-1, Inner)
}

// Cells lists the frame cells on side, optionally without the two corners.
func (f *Frame) Cells(side Side, excludeCorners bool) []grid.Cell {
	lo, hi := 0, f.Length
	if excludeCorners {
		lo, hi = 1, f.Length-1
	}
	if hi <= lo {
		return nil
	}
	out := make([]grid.Cell, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, f.at(i, side))
	}

	return out
}

// HasFactor reports whether a usable, non-zero factor is known.
func (f *Frame) HasFactor() bool {
	return !number.IsAbsent(f.Factor) && !f.Factor.IsZero()
}

// CalculateFactor sets Factor to t[p2]/t[p1] for the first consecutive
// pair of frame cells that are both present with t[p1] non-zero. The
// factor stays nil when no such pair exists.
func (f *Frame) CalculateFactor(t *grid.Table) {
	cells := f.Cells(Inner, false)
	for i := 0; i+1 < len(cells); i++ {
		v1, v2 := t.At(cells[i]), t.At(cells[i+1])
		if number.IsAbsent(v1) || number.IsAbsent(v2) || v1.IsZero() {
			continue
		}
		f.Factor = v2.Quo(v1)
		return
	}
}
