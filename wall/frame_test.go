package wall_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numberwall/grid"
	"github.com/katalvlaran/numberwall/number"
	"github.com/katalvlaran/numberwall/wall"
)

func TestWindowFromTopRow_Geometry(t *testing.T) {
	w := wall.WindowFromTopRow(2, 2, 3)
	assert.Equal(t, 2, w.Size())
	assert.Equal(t, grid.At(2, 2), w.TopLeft)
	assert.Equal(t, grid.At(3, 3), w.BottomRight)

	assert.Equal(t, grid.At(1, 1), w.Top.Start)
	assert.Equal(t, grid.At(1, 1), w.Left.Start)
	assert.Equal(t, grid.At(4, 4), w.Right.Start)
	assert.Equal(t, grid.At(4, 4), w.Bottom.Start)
	for _, f := range []wall.Frame{w.Top, w.Left, w.Right, w.Bottom} {
		assert.Equal(t, 4, f.Length)
	}
	// corners are shared
	assert.Equal(t, w.Top.End(), w.Right.End())
	assert.Equal(t, w.Left.End(), w.Bottom.End())
	assert.Equal(t, grid.At(4, 1), w.Bottom.End())

	assert.Equal(t, []grid.Cell{
		grid.At(2, 2), grid.At(2, 3),
		grid.At(3, 2), grid.At(3, 3),
	}, w.Interior())
	assert.True(t, w.Contains(grid.At(3, 2)))
	assert.False(t, w.Contains(grid.At(4, 2)))
	assert.False(t, w.Contains(grid.At(2, 1)))
}

func TestFrame_Cell(t *testing.T) {
	w := wall.WindowFromTopRow(2, 2, 3)

	c, err := w.Bottom.Cell(1, wall.Inner)
	require.NoError(t, err)
	assert.Equal(t, grid.At(4, 3), c)
	c, err = w.Bottom.Cell(1, wall.Outer)
	require.NoError(t, err)
	assert.Equal(t, grid.At(5, 3), c)

	c, _ = w.Top.Cell(0, wall.Outer)
	assert.Equal(t, grid.At(0, 1), c)
	c, _ = w.Left.Cell(2, wall.Outer)
	assert.Equal(t, grid.At(3, 0), c)
	c, _ = w.Right.Cell(3, wall.Outer)
	assert.Equal(t, grid.At(1, 5), c)

	_, err = w.Bottom.Cell(4, wall.Inner)
	assert.ErrorIs(t, err, wall.ErrFrameIndex)
	_, err = w.Bottom.Cell(-1, wall.Outer)
	assert.ErrorIs(t, err, wall.ErrFrameIndex)
}

func TestFrame_OuterIndex(t *testing.T) {
	w := wall.WindowFromTopRow(2, 2, 3)
	for n := 0; n < w.Bottom.Length; n++ {
		c, err := w.Bottom.Cell(n, wall.Outer)
		require.NoError(t, err)
		got, err := w.Bottom.OuterIndex(c)
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
	c, _ := w.Right.Cell(2, wall.Outer)
	n, err := w.Right.OuterIndex(c)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = w.Bottom.OuterIndex(grid.At(4, 3))
	assert.ErrorIs(t, err, wall.ErrNotOnFrame, "inner line")
	_, err = w.Bottom.OuterIndex(grid.At(5, 9))
	assert.ErrorIs(t, err, wall.ErrNotOnFrame, "past the end")
}

func TestFrame_Cells(t *testing.T) {
	w := wall.WindowFromTopRow(2, 2, 3)
	assert.Equal(t, []grid.Cell{grid.At(4, 3), grid.At(4, 2)}, w.Bottom.Cells(wall.Inner, true))
	assert.Equal(t,
		[]grid.Cell{grid.At(5, 4), grid.At(5, 3), grid.At(5, 2), grid.At(5, 1)},
		w.Bottom.Cells(wall.Outer, false))

	short := wall.Frame{Direction: grid.Right, Length: 1}
	assert.Nil(t, short.Cells(wall.Inner, true))
}

func TestFrame_CalculateFactor(t *testing.T) {
	tb, err := grid.NewTable(1, 5, nil)
	require.NoError(t, err)
	_ = tb.Set(grid.At(0, 0), number.Int(0))
	_ = tb.Set(grid.At(0, 1), number.Int(3))
	_ = tb.Set(grid.At(0, 3), number.Int(6))
	_ = tb.Set(grid.At(0, 4), number.Int(4))

	f := wall.Frame{Direction: grid.Right, Start: grid.At(0, 0), Length: 5}
	f.CalculateFactor(tb)
	require.True(t, f.HasFactor())
	assert.Equal(t, "2/3", f.Factor.String(), "skips the zero and the gap")

	none := wall.Frame{Direction: grid.Down, Start: grid.At(0, 2), Length: 3}
	none.CalculateFactor(tb)
	assert.Nil(t, none.Factor)
	assert.False(t, none.HasFactor())
}

func TestZeroWindow_CalculateFactors(t *testing.T) {
	// frame values around a 2×2 window at (2,2)
	tb, err := grid.NewTable(5, 6, func(i, j int, _ grid.Getter) number.Value {
		switch {
		case i == 1:
			return number.Int(1)
		case i > 1 && j == 1:
			return number.Int(int64(1) << uint(i-1)) // left: 1, 2, 4, 8
		case j == 4 && i == 2:
			return number.Int(3)
		default:
			return number.Absent
		}
	})
	require.NoError(t, err)

	w := wall.WindowFromTopRow(2, 2, 3)
	w.CalculateFactors(tb)
	assert.Equal(t, "1", w.Top.Factor.String())
	assert.Equal(t, "2", w.Left.Factor.String())
	assert.Equal(t, "1/3", w.Right.Factor.String())
	assert.Equal(t, "2/3", w.Bottom.Factor.String())

	odd := wall.WindowFromTopRow(2, 2, 2)
	odd.CalculateFactors(tb)
	// right frame of the 1×1 window runs up column 3, which is blank
	assert.False(t, odd.Right.HasFactor())
	assert.Nil(t, odd.Bottom.Factor)
}
