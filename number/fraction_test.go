package number_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numberwall/number"
)

func TestFraction_Arithmetic(t *testing.T) {
	a := number.NewFraction(1, 2)
	b := number.NewFraction(1, 3)

	assert.Equal(t, "5/6", a.Add(b).String())
	assert.Equal(t, "1/6", a.Sub(b).String())
	assert.Equal(t, "1/6", a.Mul(b).String())
	assert.Equal(t, "3/2", a.Quo(b).String())
	assert.Equal(t, "-1/2", a.Neg().String())
	// operands are left untouched
	assert.Equal(t, "1/2", a.String())
	assert.Equal(t, "1/3", b.String())
}

func TestFraction_QuoByZeroIsAbsent(t *testing.T) {
	got := number.Int(5).Quo(number.Int(0))
	assert.True(t, number.IsAbsent(got))
}

func TestFraction_Pow(t *testing.T) {
	cases := []struct {
		base number.Fraction
		n    int
		want string
	}{
		{number.Int(2), 0, "1"},
		{number.Int(2), 10, "1024"},
		{number.NewFraction(-2, 3), 3, "-8/27"},
		{number.NewFraction(2, 3), -2, "9/4"},
		{number.Int(0), 0, "1"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.base.Pow(tc.n).String(), "%v^%d", tc.base, tc.n)
	}
	assert.True(t, number.IsAbsent(number.Int(0).Pow(-1)))
}

func TestFraction_ZeroValue(t *testing.T) {
	var f number.Fraction
	assert.True(t, f.IsZero())
	assert.Equal(t, "0", f.String())
	assert.Equal(t, "3", f.Add(number.Int(3)).String())
	assert.True(t, f.Equal(number.Int(0)))
}

func TestFraction_Identities(t *testing.T) {
	f := number.NewFraction(7, 9)
	assert.True(t, f.Zero().IsZero())
	assert.True(t, f.One().Equal(number.Int(1)))
	assert.Equal(t, 1, f.Sign())
	assert.Equal(t, -1, number.Int(-1).Cmp(number.Int(1)))
}

func TestParseFraction(t *testing.T) {
	for in, want := range map[string]string{
		"7":     "7",
		" -2/5": "-2/5",
		"1.25":  "5/4",
		"4/2":   "2",
	} {
		got, err := number.ParseFraction(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String())
	}
	for _, bad := range []string{"", "x", "1/0/2"} {
		_, err := number.ParseFraction(bad)
		assert.ErrorIs(t, err, number.ErrBadLiteral, bad)
	}
}

func TestFromRat_Copies(t *testing.T) {
	r := big.NewRat(3, 4)
	f := number.FromRat(r)
	r.SetInt64(9)
	assert.Equal(t, "3/4", f.String())
	assert.Equal(t, "3/4", f.Rat().RatString())
}

func TestFraction_MixedKindsPanics(t *testing.T) {
	assert.Panics(t, func() { number.Int(1).Add(foreign{}) })
}

func TestInts(t *testing.T) {
	vs := number.Ints(1, -2, 3)
	require.Len(t, vs, 3)
	assert.Equal(t, "-2", vs[1].String())
}

// foreign is a Value of an unrelated kind.
type foreign struct{ number.Fraction }
