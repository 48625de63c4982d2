package algebra_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/numberwall/algebra"
)

func TestMemo_Factorial(t *testing.T) {
	m := algebra.NewMemo()
	assert.Equal(t, "1", m.Factorial(0).String())
	assert.Equal(t, "120", m.Factorial(5).String())
	assert.Equal(t, "2432902008176640000", m.Factorial(20).String())
	assert.Equal(t, "6", m.Factorial(3).String(), "lookups below the cached range")

	f := m.Factorial(4)
	f.SetInt64(0)
	assert.Equal(t, "24", m.Factorial(4).String(), "results are copies")
	assert.Panics(t, func() { m.Factorial(-1) })
}

func TestMemo_FallingFactorial(t *testing.T) {
	m := algebra.NewMemo()
	assert.Equal(t, "1", m.FallingFactorial(5, 0).String())
	assert.Equal(t, "60", m.FallingFactorial(5, 3).String())
	assert.Equal(t, "120", m.FallingFactorial(5, 5).String())
	assert.Equal(t, "0", m.FallingFactorial(3, 4).String())
}

func TestMemo_StirlingI(t *testing.T) {
	m := algebra.NewMemo()
	// x(x-1)(x-2)(x-3) = x^4 - 6x^3 + 11x^2 - 6x
	want := []int64{0, -6, 11, -6, 1}
	for k, w := range want {
		assert.Equal(t, fmt.Sprint(w), m.StirlingI(4, k).String(), "s(4,%d)", k)
	}
	assert.Equal(t, "1", m.StirlingI(0, 0).String())
	assert.Equal(t, "0", m.StirlingI(3, 5).String())
	assert.Equal(t, "0", m.StirlingI(-1, 0).String())
}
