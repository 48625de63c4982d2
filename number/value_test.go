package number_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/numberwall/number"
)

// TestAbsent_Absorbing checks that every operator with an Absent operand,
// on either side, yields Absent.
func TestAbsent_Absorbing(t *testing.T) {
	operands := []number.Value{
		number.Int(0),
		number.Int(7),
		number.NewFraction(-3, 4),
		number.Absent,
	}
	ops := map[string]func(a, b number.Value) number.Value{
		"add": func(a, b number.Value) number.Value { return a.Add(b) },
		"sub": func(a, b number.Value) number.Value { return a.Sub(b) },
		"mul": func(a, b number.Value) number.Value { return a.Mul(b) },
		"quo": func(a, b number.Value) number.Value { return a.Quo(b) },
	}
	for name, op := range ops {
		for _, x := range operands {
			assert.True(t, number.IsAbsent(op(number.Absent, x)), "%s(Absent, %v)", name, x)
			assert.True(t, number.IsAbsent(op(x, number.Absent)), "%s(%v, Absent)", name, x)
		}
	}
	for _, n := range []int{0, 1, 5} {
		assert.True(t, number.IsAbsent(number.Absent.Pow(n)))
	}
	assert.True(t, number.IsAbsent(number.Absent.Neg()))
}

// TestAbsent_Equality verifies Absent equals only Absent.
func TestAbsent_Equality(t *testing.T) {
	assert.True(t, number.Absent.Equal(number.Absent))
	assert.False(t, number.Absent.Equal(number.Int(0)))
	assert.False(t, number.Int(0).Equal(number.Absent))
	assert.False(t, number.Absent.IsZero())
	assert.True(t, number.IsAbsent(nil))
	assert.Equal(t, "", number.Absent.String())
}

// TestIsZeroValue distinguishes a present zero from Absent.
func TestIsZeroValue(t *testing.T) {
	assert.True(t, number.IsZeroValue(number.Int(0)))
	assert.False(t, number.IsZeroValue(number.Int(2)))
	assert.False(t, number.IsZeroValue(number.Absent))
}

// TestEqualUpToSign covers equal, negated and absent operands.
func TestEqualUpToSign(t *testing.T) {
	assert.True(t, number.EqualUpToSign(number.Int(3), number.Int(3)))
	assert.True(t, number.EqualUpToSign(number.Int(3), number.Int(-3)))
	assert.False(t, number.EqualUpToSign(number.Int(3), number.Int(2)))
	assert.False(t, number.EqualUpToSign(number.Absent, number.Absent))
}
