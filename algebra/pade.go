package algebra

import (
	"fmt"
	"math/big"
)

// Pade returns the Padé approximant P/Q of the power series whose leading
// Taylor coefficients are taylor, with deg P ≤ numDegree, deg Q ≤ denDegree
// and Q(0) = 1.
//
// The coefficients q1..qn of Q solve the n×n system
//
//	Σ_j q_j·T[m+i-j] = -T[m+i+1],  i, j = 0..n-1
//
// where q_j is the coefficient of x^(j+1) and terms with a negative index
// are 0. Then P_i = T_i + Σ_j q_j·T[i-j-1].
//
// Errors: ErrNegativeOrder for a negative degree, ErrShortSeries when fewer
// than numDegree+denDegree+1 coefficients are given, ErrSingular when the
// system has no unique solution.
func Pade(taylor []*big.Rat, numDegree, denDegree int) (Polynomial, Polynomial, error) {
	// Stage 1: Validate
	if numDegree < 0 || denDegree < 0 {
		return Polynomial{}, Polynomial{}, fmt.Errorf("Pade: [%d/%d]: %w", numDegree, denDegree, ErrNegativeOrder)
	}
	if numDegree+denDegree+1 > len(taylor) {
		return Polynomial{}, Polynomial{}, fmt.Errorf("Pade: [%d/%d] needs %d terms, got %d: %w",
			numDegree, denDegree, numDegree+denDegree+1, len(taylor), ErrShortSeries)
	}
	T := func(i int) *big.Rat {
		if i < 0 || taylor[i] == nil {
			return new(big.Rat)
		}
		return taylor[i]
	}

	// Stage 2: Solve for the denominator
	q := make([]*big.Rat, denDegree) // q[j] is the coefficient of x^(j+1)
	if denDegree > 0 {
		sys := make([][]*big.Rat, denDegree)
		for i := range sys {
			sys[i] = make([]*big.Rat, denDegree+1)
			for j := 0; j < denDegree; j++ {
				sys[i][j] = new(big.Rat).Neg(T(i - j + numDegree))
			}
			sys[i][denDegree] = new(big.Rat).Set(T(i + numDegree + 1))
		}
		red, err := GaussianElimination(sys, true)
		if err != nil {
			return Polynomial{}, Polynomial{}, fmt.Errorf("Pade: %w", err)
		}
		for i := range red {
			if leading(red[i]) != i {
				return Polynomial{}, Polynomial{}, fmt.Errorf("Pade: [%d/%d]: %w", numDegree, denDegree, ErrSingular)
			}
			q[i] = red[i][denDegree]
		}
	}

	// Stage 3: Numerator from the series and Q
	p := make([]*big.Rat, numDegree+1)
	t := new(big.Rat)
	for i := range p {
		p[i] = new(big.Rat).Set(T(i))
		for j, qj := range q {
			p[i].Add(p[i], t.Mul(qj, T(i-j-1)))
		}
	}

	return NewPolynomial(p...), NewPolynomial(append([]*big.Rat{big.NewRat(1, 1)}, q...)...), nil
}
