package transform

import (
	"math/big"

	"github.com/katalvlaran/numberwall/number"
)

// AkiyamaTanigawa returns the first column of the Akiyama–Tanigawa triangle
// of seq, where each row is derived from the previous one by
// row'[k] = (k+1)·(row[k] - row[k+1]). Applied to 1, 1/2, 1/3, … it yields
// the Bernoulli numbers B_n with B_1 = +1/2.
func AkiyamaTanigawa(seq []number.Fraction) []number.Fraction {
	if len(seq) == 0 {
		return nil
	}
	row := rats(seq)
	out := []number.Fraction{number.FromRat(row[0])}
	for n := len(row); n > 1; n-- {
		for k := 0; k < n-1; k++ {
			row[k].Sub(row[k], row[k+1])
			row[k].Mul(row[k], big.NewRat(int64(k+1), 1))
		}
		row = row[:n-1]
		out = append(out, number.FromRat(row[0]))
	}

	return out
}

// AkiyamaTanigawaInverse undoes AkiyamaTanigawa: the i-th step computes
// row'[k] = row[k] - row[k+1]/(i+1).
func AkiyamaTanigawaInverse(seq []number.Fraction) []number.Fraction {
	if len(seq) == 0 {
		return nil
	}
	row := rats(seq)
	out := []number.Fraction{number.FromRat(row[0])}
	t := new(big.Rat)
	for i := 0; i < len(seq)-1; i++ {
		inv := big.NewRat(1, int64(i+1))
		for k := 0; k < len(row)-1; k++ {
			row[k].Sub(row[k], t.Mul(row[k+1], inv))
		}
		row = row[:len(row)-1]
		out = append(out, number.FromRat(row[0]))
	}

	return out
}

// rats copies seq into a fresh working row.
func rats(seq []number.Fraction) []*big.Rat {
	out := make([]*big.Rat, len(seq))
	for i, f := range seq {
		out[i] = f.Rat()
	}

	return out
}
