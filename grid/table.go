package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/numberwall/number"
)

// Getter reads an already placed value; unfilled or out-of-range slots
// read as number.Absent.
type Getter func(row, col int) number.Value

// Filler computes the value for (row, col). It may read cells placed
// earlier, including earlier columns of the same row.
type Filler func(row, col int, get Getter) number.Value

// Table is a growable rows × cols grid of values.
// Unfilled slots hold number.Absent.
type Table struct {
	cols  int
	cells [][]number.Value
}

// NewTable allocates a rows × cols table and, if filler is non-nil,
// fills it row by row, left to right.
// Returns ErrBadShape for negative dimensions.
func NewTable(rows, cols int, filler Filler) (*Table, error) {
	// 1. Validate shape
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}
	// 2. Allocate rows of Absent
	t := &Table{cols: cols, cells: make([][]number.Value, 0, rows)}
	for i := 0; i < rows; i++ {
		t.cells = append(t.cells, t.blankRow())
	}
	// 3. Fill in row-major order so the filler sees earlier cells
	if filler != nil {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				t.cells[i][j] = orAbsent(filler(i, j, t.Get))
			}
		}
	}

	return t, nil
}

// blankRow returns a fresh row filled with Absent.
func (t *Table) blankRow() []number.Value {
	row := make([]number.Value, t.cols)
	for j := range row {
		row[j] = number.Absent
	}

	return row
}

// Rows returns the current number of rows.
func (t *Table) Rows() int { return len(t.cells) }

// Cols returns the number of columns.
func (t *Table) Cols() int { return t.cols }

// Contains reports whether c addresses a slot of the table.
func (t *Table) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < len(t.cells) && c.Col >= 0 && c.Col < t.cols
}

// At returns the value at c, or number.Absent when c is outside the table.
func (t *Table) At(c Cell) number.Value {
	if !t.Contains(c) {
		return number.Absent
	}

	return t.cells[c.Row][c.Col]
}

// Get is At in (row, col) form; it satisfies Getter.
func (t *Table) Get(row, col int) number.Value {
	return t.At(Cell{Row: row, Col: col})
}

// Set stores v at c. A nil v is stored as number.Absent.
func (t *Table) Set(c Cell, v number.Value) error {
	if !t.Contains(c) {
		return fmt.Errorf("%w: %v in %dx%d", ErrOutOfRange, c, len(t.cells), t.cols)
	}
	t.cells[c.Row][c.Col] = orAbsent(v)

	return nil
}

// Row returns a copy of row r, or nil when r is out of range.
func (t *Table) Row(r int) []number.Value {
	if r < 0 || r >= len(t.cells) {
		return nil
	}
	out := make([]number.Value, t.cols)
	copy(out, t.cells[r])

	return out
}

// Col returns column c top to bottom, or nil when c is out of range.
func (t *Table) Col(c int) []number.Value {
	if c < 0 || c >= t.cols {
		return nil
	}
	out := make([]number.Value, len(t.cells))
	for i, row := range t.cells {
		out[i] = row[c]
	}

	return out
}

// AddRow appends a row. With a nil filler the row is all Absent.
func (t *Table) AddRow(filler Filler) {
	r := len(t.cells)
	t.cells = append(t.cells, t.blankRow())
	if filler == nil {
		return
	}
	for j := 0; j < t.cols; j++ {
		t.cells[r][j] = orAbsent(filler(r, j, t.Get))
	}
}

// TruncateRows keeps the first n rows. Values of n outside [0, Rows()]
// leave the table unchanged.
func (t *Table) TruncateRows(n int) {
	if n < 0 || n > len(t.cells) {
		return
	}
	t.cells = t.cells[:n]
}

// AllInRow reports whether every entry of row r is Absent or satisfies pred.
// Rows outside the table report false.
func (t *Table) AllInRow(r int, pred func(number.Value) bool) bool {
	if r < 0 || r >= len(t.cells) {
		return false
	}
	for _, v := range t.cells[r] {
		if number.IsAbsent(v) {
			continue
		}
		if !pred(v) {
			return false
		}
	}

	return true
}

// IsZeroRow reports whether row r holds only zeros and Absent slots.
func (t *Table) IsZeroRow(r int) bool {
	return t.AllInRow(r, number.IsZeroValue)
}

// TruncateZeroRows drops the trailing rows that are all zero (Absent
// counts as zero), keeping everything up to and including the last row that
// is not. A table made only of such rows is left unchanged.
func (t *Table) TruncateZeroRows() {
	for i := len(t.cells) - 1; i >= 0; i-- {
		if !t.IsZeroRow(i) {
			t.TruncateRows(i + 1)
			return
		}
	}
}

// String renders the table with right-aligned columns separated by one
// space. Absent entries print as blanks.
func (t *Table) String() string {
	if len(t.cells) == 0 || t.cols == 0 {
		return "<empty>"
	}
	// 1. Measure the widest entry per column
	widths := make([]int, t.cols)
	for _, row := range t.cells {
		for j, v := range row {
			if n := len(v.String()); n > widths[j] {
				widths[j] = n
			}
		}
	}
	// 2. Pad each entry to its column width
	lines := make([]string, len(t.cells))
	parts := make([]string, t.cols)
	for i, row := range t.cells {
		for j, v := range row {
			parts[j] = fmt.Sprintf("%*s", widths[j], v.String())
		}
		lines[i] = strings.Join(parts, " ")
	}

	return strings.Join(lines, "\n")
}

// WriteTSV writes the table as tab separated values, one line per row.
func (t *Table) WriteTSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	parts := make([]string, t.cols)
	for _, row := range t.cells {
		for j, v := range row {
			parts[j] = v.String()
		}
		if _, err := bw.WriteString(strings.Join(parts, "\t") + "\n"); err != nil {
			return fmt.Errorf("grid: write tsv: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("grid: write tsv: %w", err)
	}

	return nil
}

// orAbsent maps a nil Value to number.Absent.
func orAbsent(v number.Value) number.Value {
	if v == nil {
		return number.Absent
	}

	return v
}
