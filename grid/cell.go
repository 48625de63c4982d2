package grid

import "fmt"

// Direction is a unit step on the grid.
type Direction int

const (
	// Right steps one column forward: (0, +1).
	Right Direction = iota
	// Up steps one row back: (-1, 0).
	Up
	// Down steps one row forward: (+1, 0).
	Down
	// Left steps one column back: (0, -1).
	Left
)

// offsets holds (dRow, dCol) per Direction, indexed by the constant.
var offsets = [...][2]int{
	Right: {0, 1},
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
}

// outer maps each frame direction to the side facing away from a window.
var outer = [...]Direction{
	Right: Up,
	Left:  Down,
	Up:    Right,
	Down:  Left,
}

// Delta returns the (dRow, dCol) offset of d.
func (d Direction) Delta() (int, int) {
	o := offsets[d]

	return o[0], o[1]
}

// Outer returns the direction pointing away from the region a frame
// running along d borders.
func (d Direction) Outer() Direction {
	return outer[d]
}

// Horizontal reports whether d moves along a row.
func (d Direction) Horizontal() bool {
	return d == Right || d == Left
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Cell is an integer (Row, Col) coordinate.
type Cell struct {
	Row, Col int
}

// At is shorthand for Cell{Row: row, Col: col}.
func At(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// Step returns the cell n steps away from c in direction d.
func (c Cell) Step(d Direction, n int) Cell {
	dr, dc := d.Delta()

	return Cell{Row: c.Row + n*dr, Col: c.Col + n*dc}
}

// Next is Step(d, 1).
func (c Cell) Next(d Direction) Cell {
	return c.Step(d, 1)
}

// Add returns the component-wise sum of c and o.
func (c Cell) Add(o Cell) Cell {
	return Cell{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// Scale returns k·c.
func (c Cell) Scale(k int) Cell {
	return Cell{Row: k * c.Row, Col: k * c.Col}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
