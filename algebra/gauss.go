package algebra

import (
	"fmt"
	"math/big"
)

// Augment returns the matrix [a | b] built row by row. Inputs are copied.
// Returns ErrDimensionMismatch when a and b have different row counts.
func Augment(a, b [][]*big.Rat) ([][]*big.Rat, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("Augment: %d vs %d rows: %w", len(a), len(b), ErrDimensionMismatch)
	}
	out := make([][]*big.Rat, len(a))
	for i := range a {
		row := make([]*big.Rat, 0, len(a[i])+len(b[i]))
		row = appendCopy(row, a[i])
		out[i] = appendCopy(row, b[i])
	}

	return out, nil
}

// GaussianElimination reduces a copy of m to row echelon form using the
// entry of largest magnitude in each column as pivot. With jordan set the
// result is the reduced row echelon form: every pivot is 1 and is the only
// non-zero entry of its column.
// Returns ErrBadShape for an empty or ragged matrix.
// Time Complexity: O(r·c·min(r,c)); Memory: O(r·c) for the copy.
func GaussianElimination(m [][]*big.Rat, jordan bool) ([][]*big.Rat, error) {
	// Stage 1: Validate shape and copy input
	a, err := cloneMatrix(m)
	if err != nil {
		return nil, fmt.Errorf("GaussianElimination: %w", err)
	}
	rows, cols := len(a), len(a[0])

	// Stage 2: Forward elimination
	var (
		pr, pc int      // pivot row and column
		f      *big.Rat // row multiplier
		t      = new(big.Rat)
	)
	for pr < rows && pc < cols {
		best := pr
		for i := pr + 1; i < rows; i++ {
			if cmpAbs(a[i][pc], a[best][pc]) > 0 {
				best = i
			}
		}
		if a[best][pc].Sign() == 0 { // column already clear below pr
			pc++
			continue
		}
		a[pr], a[best] = a[best], a[pr]
		for i := pr + 1; i < rows; i++ {
			if a[i][pc].Sign() == 0 {
				continue
			}
			f = new(big.Rat).Quo(a[i][pc], a[pr][pc])
			a[i][pc].SetInt64(0)
			for j := pc + 1; j < cols; j++ {
				a[i][j].Sub(a[i][j], t.Mul(a[pr][j], f))
			}
		}
		pr++
		pc++
	}
	if !jordan {
		return a, nil
	}

	// Stage 3: Back substitution from the last non-zero row upwards
	for i := min(pr, rows) - 1; i >= 0; i-- {
		lead := leading(a[i])
		if lead < 0 {
			continue
		}
		inv := new(big.Rat).Inv(a[i][lead])
		for j := lead; j < cols; j++ {
			a[i][j].Mul(a[i][j], inv)
		}
		for k := 0; k < i; k++ {
			if a[k][lead].Sign() == 0 {
				continue
			}
			f = new(big.Rat).Set(a[k][lead])
			for j := lead; j < cols; j++ {
				a[k][j].Sub(a[k][j], t.Mul(a[i][j], f))
			}
		}
	}

	// Stage 4: Return reduced copy
	return a, nil
}

// cloneMatrix deep-copies m, treating nil entries as zero.
func cloneMatrix(m [][]*big.Rat) ([][]*big.Rat, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return nil, ErrBadShape
	}
	out := make([][]*big.Rat, len(m))
	for i, row := range m {
		if len(row) != len(m[0]) {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadShape, i, len(row), len(m[0]))
		}
		out[i] = appendCopy(make([]*big.Rat, 0, len(row)), row)
	}

	return out, nil
}

// appendCopy appends fresh copies of src to dst.
func appendCopy(dst, src []*big.Rat) []*big.Rat {
	for _, v := range src {
		c := new(big.Rat)
		if v != nil {
			c.Set(v)
		}
		dst = append(dst, c)
	}

	return dst
}

// cmpAbs compares |x| and |y|.
func cmpAbs(x, y *big.Rat) int {
	return new(big.Rat).Abs(x).Cmp(new(big.Rat).Abs(y))
}

// leading returns the index of the first non-zero entry, or -1.
func leading(row []*big.Rat) int {
	for j, v := range row {
		if v.Sign() != 0 {
			return j
		}
	}

	return -1
}
