package algebra_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/numberwall/algebra"
)

// BenchmarkPolynomial_Mul multiplies two degree-64 polynomials.
func BenchmarkPolynomial_Mul(b *testing.B) {
	cs := make([]int64, 65)
	for i := range cs {
		cs[i] = int64(i*7%13 - 6)
	}
	p := algebra.PolyInts(cs...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Mul(p)
	}
}

// BenchmarkRational_Add sums rational functions with distinct denominators.
func BenchmarkRational_Add(b *testing.B) {
	x, _ := algebra.NewRational(algebra.PolyInts(1, 2, 3), algebra.PolyInts(-1, 0, 1))
	y, _ := algebra.NewRational(algebra.PolyInts(5, 1), algebra.PolyInts(2, 1, 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Add(y)
	}
}

// BenchmarkGaussianElimination_Jordan reduces a 12×13 Hilbert-like system.
func BenchmarkGaussianElimination_Jordan(b *testing.B) {
	const n = 12
	m := make([][]*big.Rat, n)
	for i := range m {
		m[i] = make([]*big.Rat, n+1)
		for j := 0; j < n; j++ {
			m[i][j] = big.NewRat(1, int64(i+j+1))
		}
		m[i][n] = big.NewRat(1, 1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := algebra.GaussianElimination(m, true); err != nil {
			b.Fatal(err)
		}
	}
}
