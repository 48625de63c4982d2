package transform

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/numberwall/algebra"
	"github.com/katalvlaran/numberwall/grid"
	"github.com/katalvlaran/numberwall/number"
)

// DifferenceTable returns the table of forward differences of seq. Row 0 is
// seq, and row i holds T[i-1][j+1] - T[i-1][j] for j < n-i with the rest of
// the row Absent. Trailing all-zero rows are dropped.
// Returns ErrEmptySequence when seq is empty.
func DifferenceTable(seq []number.Value) (*grid.Table, error) {
	n := len(seq)
	if n == 0 {
		return nil, ErrEmptySequence
	}
	t, err := grid.NewTable(n, n, func(i, j int, get grid.Getter) number.Value {
		switch {
		case i == 0:
			return seq[j]
		case j < n-i:
			return get(i-1, j+1).Sub(get(i-1, j))
		default:
			return number.Absent
		}
	})
	if err != nil {
		return nil, fmt.Errorf("transform: difference table: %w", err)
	}
	t.TruncateZeroRows()

	return t, nil
}

// NewtonPolynomial returns Σ d_i/i! · x(x-1)···(x-i+1) for the leading
// differences d (column 0 of a difference table). The result p satisfies
// p(k) = seq[k] for every term the table was built from.
// Absent entries contribute nothing; entries of another kind yield
// ErrNotFraction.
func NewtonPolynomial(diffs []number.Value, m *algebra.Memo) (algebra.Polynomial, error) {
	var res algebra.Polynomial
	for i, d := range diffs {
		if number.IsAbsent(d) {
			continue
		}
		f, ok := d.(number.Fraction)
		if !ok {
			return algebra.Polynomial{}, fmt.Errorf("%w: difference %d is %T", ErrNotFraction, i, d)
		}
		k := new(big.Rat).SetFrac(big.NewInt(1), m.Factorial(i))
		k.Mul(k, f.Rat())
		res = res.Add(algebra.FallingFactorial(m, i).Scale(k))
	}

	return res, nil
}
