package wall

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/numberwall/dag"
	"github.com/katalvlaran/numberwall/grid"
	"github.com/katalvlaran/numberwall/number"
)

// seedRows is the number of rows known before Build: zeros, ones and the
// sequence.
const seedRows = 3

// NumberWall owns the table, the scheduler, the zero-window registry and
// the rule of every cell. It is not safe for concurrent use.
type NumberWall struct {
	opts Options
	log  *zap.Logger

	seq        []number.Value
	rows, cols int

	table   *grid.Table
	sched   *dag.Scheduler[grid.Cell]
	rules   map[grid.Cell]Rule
	windows []*ZeroWindow
	built   bool
}

// New prepares the wall of sequence. Every element must be present and of
// the same number.Value kind.
// Returns ErrEmptySequence or ErrAbsentInSequence on bad input.
func New(sequence []number.Value, opts ...Option) (*NumberWall, error) {
	// 1. Validate the input
	if len(sequence) == 0 {
		return nil, ErrEmptySequence
	}
	for i, v := range sequence {
		if number.IsAbsent(v) {
			return nil, fmt.Errorf("%w: index %d", ErrAbsentInSequence, i)
		}
	}
	o := gatherOptions(opts...)
	// 2. Size the trapezoid
	cols := len(sequence)
	rows := (cols+1)/2 + 2
	if o.MaxRows > 0 && o.MaxRows < rows {
		rows = max(o.MaxRows, seedRows)
	}
	w := &NumberWall{
		opts:  o,
		log:   o.Logger.Named("wall"),
		seq:   append([]number.Value(nil), sequence...),
		rows:  rows,
		cols:  cols,
		rules: make(map[grid.Cell]Rule),
	}
	// 3. Seed rows 0-2 and register them as computed
	zero, one := sequence[0].Zero(), sequence[0].One()
	table, err := grid.NewTable(rows, cols, func(i, j int, _ grid.Getter) number.Value {
		switch i {
		case 0:
			return zero
		case 1:
			return one
		case 2:
			return w.seq[j]
		default:
			return number.Absent
		}
	})
	if err != nil {
		return nil, fmt.Errorf("wall: allocate table: %w", err)
	}
	w.table = table
	seeds := make([]grid.Cell, 0, seedRows*cols)
	for i := 0; i < seedRows; i++ {
		for j := 0; j < cols; j++ {
			seeds = append(seeds, grid.At(i, j))
		}
	}
	w.sched = dag.New(seeds...)

	return w, nil
}

// Table returns the underlying table.
func (w *NumberWall) Table() *grid.Table { return w.table }

// Rows returns the current number of rows.
func (w *NumberWall) Rows() int { return w.rows }

// Cols returns the sequence length.
func (w *NumberWall) Cols() int { return w.cols }

// Windows returns the zero windows found so far, in discovery order.
func (w *NumberWall) Windows() []*ZeroWindow {
	return append([]*ZeroWindow(nil), w.windows...)
}

// RuleAt returns the rule attached to c.
func (w *NumberWall) RuleAt(c grid.Cell) (Rule, bool) {
	r, ok := w.rules[c]

	return r, ok
}

// Inside reports whether c belongs to the trapezoid: rows 0-2 span every
// column, row r > 2 spans r-2 … cols-r+1.
func (w *NumberWall) Inside(c grid.Cell) bool {
	if c.Row >= 0 && c.Row < seedRows {
		return c.Col >= 0 && c.Col < w.cols
	}

	return c.Row >= seedRows && c.Row < w.rows &&
		c.Row-2 <= c.Col && c.Col <= w.cols-c.Row+1
}

// RowCells lists the in-wall cells of row r from left to right.
func (w *NumberWall) RowCells(r int) []grid.Cell {
	lo, hi := 0, w.cols-1
	if r >= seedRows {
		lo, hi = r-2, w.cols-r+1
	}
	if r < 0 || hi < lo {
		return nil
	}
	out := make([]grid.Cell, 0, hi-lo+1)
	for j := lo; j <= hi; j++ {
		out = append(out, grid.At(r, j))
	}

	return out
}

// Build computes the wall. Rows are added until one is entirely zero;
// trailing zero rows are then dropped. Calling Build again is a no-op.
func (w *NumberWall) Build() error {
	if w.built {
		return nil
	}
	for row := seedRows - 1; row < w.rows; row++ {
		// 1. A zero row ends the wall
		if w.table.IsZeroRow(row) {
			w.log.Debug("zero row reached", zap.Int("row", row))
			break
		}
		// 2. Attach rules to everything this row determines
		if err := w.setupRow(row); err != nil {
			return fmt.Errorf("wall: setup row %d: %w", row, err)
		}
		// 3. Compute whatever became computable
		n, err := w.drain()
		if err != nil {
			return fmt.Errorf("wall: evaluate row %d: %w", row, err)
		}
		w.log.Debug("row evaluated", zap.Int("row", row), zap.Int("cells", n))
	}
	w.table.TruncateZeroRows()
	w.rows = w.table.Rows()
	w.built = true
	w.log.Info("wall built",
		zap.Int("cols", w.cols),
		zap.Int("rows", w.rows),
		zap.Int("windows", len(w.windows)),
		zap.Int("uncomputed", w.sched.UndoneCount()),
	)

	return nil
}

// drain evaluates computable cells until a pass yields nothing.
func (w *NumberWall) drain() (int, error) {
	total := 0
	for {
		n := 0
		for c, err := range w.sched.IterComputable() {
			if err != nil {
				return total, err
			}
			rule, ok := w.rules[c]
			if !ok {
				return total, fmt.Errorf("wall: no rule for %v", c)
			}
			if err = w.table.Set(c, rule.Eval(w.table, w.windows)); err != nil {
				return total, err
			}
			if err = w.sched.Done(c); err != nil {
				return total, err
			}
			n++
		}
		total += n
		if n == 0 {
			return total, nil
		}
	}
}

// setupRow classifies the zero runs of row and attaches the rules they
// call for, then gives the remaining cells of row+1 the cross rule.
func (w *NumberWall) setupRow(row int) error {
	for _, run := range zeroRuns(w.table.Row(row)) {
		first, last := run[0], run[1]
		if first == last {
			c := grid.At(row, first).Step(grid.Down, 2)
			if err := w.setRule(newLongCrossRule(c)); err != nil {
				return err
			}
			continue
		}
		if w.windowAt(grid.At(row, first)) >= 0 {
			continue
		}
		if err := w.openWindow(row, first, last); err != nil {
			return err
		}
	}
	for _, c := range w.RowCells(row + 1) {
		if err := w.setRule(newCrossRule(c)); err != nil {
			return err
		}
	}

	return nil
}

// windowAt returns the index of the window containing c, or -1.
func (w *NumberWall) windowAt(c grid.Cell) int {
	for i, win := range w.windows {
		if win.Contains(c) {
			return i
		}
	}

	return -1
}

// openWindow registers the window whose top row is row and attaches its
// zero and bottom-frame rules.
func (w *NumberWall) openWindow(row, colLeft, colRight int) error {
	// 1. Register and measure the frames
	win := WindowFromTopRow(row, colLeft, colRight)
	win.CalculateFactors(w.table)
	idx := len(w.windows)
	w.windows = append(w.windows, win)
	// 2. The interior below the detected row is zero
	zero := w.seq[0].Zero()
	for _, c := range win.Interior() {
		if c.Row <= row {
			continue
		}
		if err := w.setRule(newZeroRule(c, zero)); err != nil {
			return err
		}
	}
	// 3. Pick the propagation direction along the bottom frame
	var forward bool
	switch {
	case w.Inside(win.Bottom.Start):
		forward = true
	case w.Inside(win.Bottom.End()):
		forward = false
	default:
		w.logWindow(win, "uncomputable")
		for _, c := range append(win.Bottom.Cells(Inner, true), win.Bottom.Cells(Outer, false)...) {
			if err := w.setRule(newUncomputableRule(c)); err != nil {
				return err
			}
		}
		return nil
	}
	if forward {
		w.logWindow(win, "forward")
	} else {
		w.logWindow(win, "backward")
	}
	// 4. Horseshoe rules on the bottom frame and the line below it
	for _, c := range win.Bottom.Cells(Inner, true) {
		if err := w.setRule(newHorseshoeInnerRule(c, idx, forward)); err != nil {
			return err
		}
	}
	for _, c := range win.Bottom.Cells(Outer, false) {
		r, err := newHorseshoeOuterRule(c, idx, win)
		if err != nil {
			return err
		}
		if err = w.setRule(r); err != nil {
			return err
		}
	}

	return nil
}

func (w *NumberWall) logWindow(win *ZeroWindow, propagation string) {
	if ce := w.log.Check(zap.DebugLevel, "zero window"); ce != nil {
		ce.Write(
			zap.Stringer("top_left", win.TopLeft),
			zap.Int("size", win.Size()),
			zap.String("propagation", propagation),
			zap.String("f_top", factorString(win.Top.Factor)),
			zap.String("f_left", factorString(win.Left.Factor)),
			zap.String("f_right", factorString(win.Right.Factor)),
			zap.String("f_bottom", factorString(win.Bottom.Factor)),
		)
	}
}

func factorString(f number.Value) string {
	if f == nil {
		return "none"
	}

	return f.String()
}

// setRule attaches r to its cell. Rules whose target or dependencies fall
// outside the wall are dropped, and the first rule for a cell wins.
func (w *NumberWall) setRule(r Rule) error {
	if !w.Inside(r.Cell) {
		return nil
	}
	for _, d := range r.deps {
		if !w.Inside(d) {
			return nil
		}
	}
	if _, ok := w.rules[r.Cell]; ok {
		return nil
	}
	if err := w.sched.AddNode(r.Cell, r.deps...); err != nil {
		return fmt.Errorf("wall: rule %v: %w", r, err)
	}
	w.rules[r.Cell] = r

	return nil
}

// ConstantElement returns the first entry of the last row when every
// entry of that row equals it up to sign. It reports false when the wall
// ends within the seed rows or the last row holds an Absent entry.
func (w *NumberWall) ConstantElement() (number.Value, bool) {
	last := w.rows - 1
	if last < seedRows-1 {
		return nil, false
	}
	cells := w.RowCells(last)
	if len(cells) == 0 {
		return nil, false
	}
	first := w.table.At(cells[0])
	for _, c := range cells {
		v := w.table.At(c)
		if number.IsAbsent(v) || !number.EqualUpToSign(v, first) {
			return nil, false
		}
	}

	return first, true
}

// zeroRuns returns the maximal runs of zero values as [first, last]
// column pairs. Absent entries break runs.
func zeroRuns(row []number.Value) [][2]int {
	var runs [][2]int
	start := -1
	for j, v := range row {
		if number.IsZeroValue(v) {
			if start < 0 {
				start = j
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, [2]int{start, j - 1})
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, [2]int{start, len(row) - 1})
	}

	return runs
}
