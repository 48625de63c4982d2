package wall_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numberwall/grid"
	"github.com/katalvlaran/numberwall/number"
	"github.com/katalvlaran/numberwall/wall"
)

// build constructs and builds the wall of xs.
func build(t *testing.T, xs []int64, opts ...wall.Option) *wall.NumberWall {
	t.Helper()
	w, err := wall.New(number.Ints(xs...), opts...)
	require.NoError(t, err)
	require.NoError(t, w.Build())

	return w
}

// render prints every row of the table across all columns, "." for Absent.
func render(tb *grid.Table) [][]string {
	out := make([][]string, tb.Rows())
	for i := range out {
		row := tb.Row(i)
		out[i] = make([]string, len(row))
		for j, v := range row {
			if number.IsAbsent(v) {
				out[i][j] = "."
				continue
			}
			out[i][j] = v.String()
		}
	}

	return out
}

// toeplitz returns det[s[c+i-j]] for 0 ≤ i,j < k, reporting false when
// an index falls outside s.
func toeplitz(s []int64, k, c int) (*big.Rat, bool) {
	if c-(k-1) < 0 || c+(k-1) >= len(s) {
		return nil, false
	}
	m := make([][]*big.Rat, k)
	for i := range m {
		m[i] = make([]*big.Rat, k)
		for j := range m[i] {
			m[i][j] = new(big.Rat).SetInt64(s[c+i-j])
		}
	}
	det := big.NewRat(1, 1)
	for col := 0; col < k; col++ {
		p := -1
		for r := col; r < k; r++ {
			if m[r][col].Sign() != 0 {
				p = r
				break
			}
		}
		if p < 0 {
			return new(big.Rat), true
		}
		if p != col {
			m[p], m[col] = m[col], m[p]
			det.Neg(det)
		}
		det.Mul(det, m[col][col])
		for r := col + 1; r < k; r++ {
			f := new(big.Rat).Quo(m[r][col], m[col][col])
			for j := col; j < k; j++ {
				m[r][j].Sub(m[r][j], new(big.Rat).Mul(f, m[col][j]))
			}
		}
	}

	return det, true
}

// lcg is a 64-bit linear congruential generator; it keeps generated
// sequences stable across Go releases.
type lcg uint64

func (x *lcg) next() uint64 {
	*x = *x*6364136223846793005 + 1442695040888963407

	return uint64(*x >> 33)
}

// zeroHeavy draws a sequence of 5 to 24 terms in which zeros are common.
func zeroHeavy(rng *lcg) []int64 {
	pool := []int64{0, 0, 0, 0, 1, -1, 2, 3, 5, -7}
	n := 5 + int(rng.next()%20)
	out := make([]int64, n)
	for i := range out {
		out[i] = pool[rng.next()%uint64(len(pool))]
	}

	return out
}
