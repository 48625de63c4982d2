package wall

import (
	"github.com/katalvlaran/numberwall/grid"
	"github.com/katalvlaran/numberwall/number"
)

// ZeroWindow is a g×g square of zeros, [TopLeft, BottomRight], together with
// the four frames one cell outside it.
//
//	corner A ─ Top (Right) ─▶
//	   │
//	 Left (Down)      window
//	   ▼                      ▲
//	                          │ Right (Up)
//	         ◀─ Bottom (Left) ─ corner B
//
// Corner A is (top-1, left-1) and corner B is (bottom+1, right+1). Every
// frame has g+2 cells and shares its corners with two others.
type ZeroWindow struct {
	TopLeft, BottomRight grid.Cell

	Top, Left, Right, Bottom Frame
}

// WindowFromTopRow returns the window whose top row is row and which
// spans columns colLeft … colRight.
func WindowFromTopRow(row, colLeft, colRight int) *ZeroWindow {
	g := colRight - colLeft + 1
	a := grid.At(row-1, colLeft-1)
	b := grid.At(row+g, colRight+1)

	return &ZeroWindow{
		TopLeft:     grid.At(row, colLeft),
		BottomRight: grid.At(row+g-1, colRight),
		Top:         Frame{Direction: grid.Right, Start: a, Length: g + 2},
		Left:        Frame{Direction: grid.Down, Start: a, Length: g + 2},
		Right:       Frame{Direction: grid.Up, Start: b, Length: g + 2},
		Bottom:      Frame{Direction: grid.Left, Start: b, Length: g + 2},
	}
}

// Size returns the side length g.
func (w *ZeroWindow) Size() int {
	return w.BottomRight.Col - w.TopLeft.Col + 1
}

// Contains reports whether c lies inside the zero region.
func (w *ZeroWindow) Contains(c grid.Cell) bool {
	return w.TopLeft.Row <= c.Row && c.Row <= w.BottomRight.Row &&
		w.TopLeft.Col <= c.Col && c.Col <= w.BottomRight.Col
}

// Interior lists the zero region row by row.
func (w *ZeroWindow) Interior() []grid.Cell {
	g := w.Size()
	out := make([]grid.Cell, 0, g*g)
	for i := w.TopLeft.Row; i <= w.BottomRight.Row; i++ {
		for j := w.TopLeft.Col; j <= w.BottomRight.Col; j++ {
			out = append(out, grid.At(i, j))
		}
	}

	return out
}

// CalculateFactors computes the top, left and right factors from t and
// derives the bottom one as (-1)^g · left · right / top. The bottom factor
// stays nil unless the other three are known and non-zero.
func (w *ZeroWindow) CalculateFactors(t *grid.Table) {
	w.Top.CalculateFactor(t)
	w.Left.CalculateFactor(t)
	w.Right.CalculateFactor(t)
	if !w.Top.HasFactor() || !w.Left.HasFactor() || !w.Right.HasFactor() {
		return
	}
	f := w.Left.Factor.Mul(w.Right.Factor).Quo(w.Top.Factor)
	if w.Size()%2 == 1 {
		f = f.Neg()
	}
	w.Bottom.Factor = f
}

// factorOrAbsent maps an unknown factor to number.Absent.
func factorOrAbsent(f number.Value) number.Value {
	if f == nil {
		return number.Absent
	}

	return f
}
