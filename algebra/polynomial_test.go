package algebra_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numberwall/algebra"
)

func TestPolynomial_String(t *testing.T) {
	cases := []struct {
		p    algebra.Polynomial
		want string
	}{
		{algebra.PolyInts(), "0"},
		{algebra.PolyInts(0, 0, 0), "0"},
		{algebra.PolyInts(1, 1, 1, -1), "1 + x + x^2 - x^3"},
		{algebra.PolyInts(-3), "-3"},
		{algebra.PolyInts(0, -1), "-x"},
		{algebra.PolyInts(2, 0, -5), "2 - 5x^2"},
		{algebra.NewPolynomial(big.NewRat(1, 2), nil, big.NewRat(-1, 3)), "1/2 - 1/3x^2"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.p.String())
	}
}

func TestPolynomial_Basics(t *testing.T) {
	p := algebra.PolyInts(1, 2, 0, 0)
	assert.Equal(t, 1, p.Degree(), "trailing zeros are trimmed")
	assert.Equal(t, -1, algebra.PolyInts().Degree())
	assert.True(t, algebra.PolyInts(0).IsZero())
	assert.Equal(t, "2", p.Lead().RatString())
	assert.Equal(t, "0", p.Coeff(7).RatString())
	assert.Equal(t, "x", algebra.X().String())
	assert.Equal(t, "3x^4", algebra.Monomial(big.NewRat(3, 1), 4).String())

	cs := p.Coefficients()
	cs[0].SetInt64(99)
	assert.Equal(t, "1 + 2x", p.String(), "Coefficients returns copies")
}

func TestPolynomial_Arithmetic(t *testing.T) {
	p := algebra.PolyInts(1, 1)  // 1 + x
	q := algebra.PolyInts(-1, 1) // -1 + x

	assert.Equal(t, "2x", p.Add(q).String())
	assert.Equal(t, "2", p.Sub(q).String())
	assert.Equal(t, "-1 + x^2", p.Mul(q).String())
	assert.Equal(t, "-1 - x", p.Neg().String())
	assert.Equal(t, "1/2 + 1/2x", p.Scale(big.NewRat(1, 2)).String())
	assert.Equal(t, "1 + 3x + 3x^2 + x^3", p.Pow(3).String())
	assert.Equal(t, "1", p.Pow(0).String())
	assert.True(t, p.Sub(p).IsZero())
	assert.True(t, p.Mul(algebra.PolyInts()).IsZero())
	assert.Panics(t, func() { p.Pow(-1) })
}

func TestPolynomial_DivMod(t *testing.T) {
	// x^3 - 2x^2 - 4 = (x - 3)(x^2 + x + 3) + 5
	p := algebra.PolyInts(-4, 0, -2, 1)
	d := algebra.PolyInts(-3, 1)
	quo, rem, err := p.DivMod(d)
	require.NoError(t, err)
	assert.Equal(t, "3 + x + x^2", quo.String())
	assert.Equal(t, "5", rem.String())
	assert.True(t, quo.Mul(d).Add(rem).Equal(p))

	quo, rem, err = d.DivMod(p)
	require.NoError(t, err)
	assert.True(t, quo.IsZero())
	assert.True(t, rem.Equal(d))

	_, _, err = p.DivMod(algebra.PolyInts())
	assert.ErrorIs(t, err, algebra.ErrDivisionByZero)
}

func TestPolynomial_GCD(t *testing.T) {
	a := algebra.PolyInts(-1, 1).Mul(algebra.PolyInts(2, 1)) // (x-1)(x+2)
	b := algebra.PolyInts(-1, 1).Mul(algebra.PolyInts(5, 3)) // (x-1)(3x+5)
	assert.Equal(t, "-1 + x", a.GCD(b).String())
	assert.Equal(t, "1", algebra.PolyInts(1, 1).GCD(algebra.PolyInts(-1, 1)).String())
	assert.Equal(t, "2 + x", algebra.PolyInts(4, 2).GCD(algebra.PolyInts()).String())
	assert.True(t, algebra.PolyInts().GCD(algebra.PolyInts()).IsZero())
}

func TestPolynomial_Eval(t *testing.T) {
	p := algebra.PolyInts(1, 1, 1, -1)
	assert.Equal(t, "-1", p.Eval(big.NewRat(2, 1)).RatString())
	assert.Equal(t, "13/8", p.Eval(big.NewRat(1, 2)).RatString())
	assert.Equal(t, "0", algebra.PolyInts().Eval(big.NewRat(5, 1)).RatString())
}

func TestPolynomial_Diff(t *testing.T) {
	m := algebra.NewMemo()
	p := algebra.PolyInts(7, 0, 1, 1) // 7 + x^2 + x^3

	d, err := p.Diff(m, 0)
	require.NoError(t, err)
	assert.True(t, d.Equal(p))

	d, err = p.Diff(m, 1)
	require.NoError(t, err)
	assert.Equal(t, "2x + 3x^2", d.String())

	d, err = p.Diff(m, 2)
	require.NoError(t, err)
	assert.Equal(t, "2 + 6x", d.String())

	d, err = p.Diff(m, 4)
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = p.Diff(m, -1)
	assert.ErrorIs(t, err, algebra.ErrNegativeOrder)
}

func TestPolynomial_Integral(t *testing.T) {
	m := algebra.NewMemo()
	p := algebra.PolyInts(2, 6) // 2 + 6x

	in, err := p.Integral(m, 1)
	require.NoError(t, err)
	assert.Equal(t, "2x + 3x^2", in.String())

	in, err = p.Integral(m, 2, big.NewRat(5, 1), big.NewRat(-1, 1))
	require.NoError(t, err)
	assert.Equal(t, "5 - x + x^2 + x^3", in.String())

	// Integrating then differentiating is the identity.
	back, err := in.Diff(m, 2)
	require.NoError(t, err)
	assert.True(t, back.Equal(p))

	// The i-th constant is the i-th derivative at 0.
	in, err = algebra.PolyInts().Integral(m, 3, big.NewRat(0, 1), big.NewRat(0, 1), big.NewRat(4, 1))
	require.NoError(t, err)
	assert.Equal(t, "2x^2", in.String())

	_, err = p.Integral(m, 2, big.NewRat(1, 1))
	assert.ErrorIs(t, err, algebra.ErrConstants)
	_, err = p.Integral(m, -2)
	assert.ErrorIs(t, err, algebra.ErrNegativeOrder)
}

func TestFactorialPolynomials(t *testing.T) {
	m := algebra.NewMemo()
	assert.Equal(t, "1", algebra.FallingFactorial(m, 0).String())
	assert.Equal(t, "2x - 3x^2 + x^3", algebra.FallingFactorial(m, 3).String())
	assert.Equal(t, "2x + 3x^2 + x^3", algebra.RisingFactorial(m, 3).String())

	// (x)_4 at x = 6 is 6·5·4·3.
	assert.Equal(t, "360", algebra.FallingFactorial(m, 4).Eval(big.NewRat(6, 1)).RatString())
	assert.Panics(t, func() { algebra.FallingFactorial(m, -1) })
	assert.Panics(t, func() { algebra.RisingFactorial(m, -1) })
}

func TestPolynomial_ToIntegerAndMonic(t *testing.T) {
	p := algebra.NewPolynomial(big.NewRat(1, 2), big.NewRat(1, 3))
	ip, k := p.ToInteger()
	assert.Equal(t, "3 + 2x", ip.String())
	assert.Equal(t, "6", k.RatString())

	assert.Equal(t, "3/2 + x", ip.ToMonic().String())
	assert.True(t, algebra.PolyInts().ToMonic().IsZero())
}
