package number

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrBadLiteral is returned by ParseFraction for malformed input.
var ErrBadLiteral = errors.New("number: malformed fraction literal")

// Fraction is an immutable exact rational number.
// The zero value is 0 and ready to use.
type Fraction struct {
	r *big.Rat
}

// Int returns the Fraction n/1.
func Int(n int64) Fraction {
	return Fraction{r: new(big.Rat).SetInt64(n)}
}

// NewFraction returns num/den. It panics if den is zero.
func NewFraction(num, den int64) Fraction {
	if den == 0 {
		panic("number: NewFraction with zero denominator")
	}

	return Fraction{r: big.NewRat(num, den)}
}

// FromRat copies r into a Fraction.
func FromRat(r *big.Rat) Fraction {
	if r == nil {
		return Fraction{}
	}

	return Fraction{r: new(big.Rat).Set(r)}
}

// ParseFraction parses "7", "-2/5" or "1.25".
func ParseFraction(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Fraction{}, fmt.Errorf("%w: empty", ErrBadLiteral)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Fraction{}, fmt.Errorf("%w: %q", ErrBadLiteral, s)
	}

	return Fraction{r: r}, nil
}

// Ints converts a slice of integers into Values.
func Ints(xs ...int64) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		out[i] = Int(x)
	}

	return out
}

// Rat returns a copy of the underlying rational.
func (f Fraction) Rat() *big.Rat {
	return new(big.Rat).Set(f.rat())
}

// rat returns the backing rational, treating the zero value as 0.
func (f Fraction) rat() *big.Rat {
	if f.r == nil {
		return new(big.Rat)
	}

	return f.r
}

// operand extracts a Fraction from o. ok is false when o is Absent.
func (f Fraction) operand(op string, o Value) (Fraction, bool) {
	if IsAbsent(o) {
		return Fraction{}, false
	}
	g, ok := o.(Fraction)
	if !ok {
		mismatch(op, f, o)
	}

	return g, true
}

// Add returns f + o.
func (f Fraction) Add(o Value) Value {
	g, ok := f.operand("Add", o)
	if !ok {
		return Absent
	}

	return Fraction{r: new(big.Rat).Add(f.rat(), g.rat())}
}

// Sub returns f - o.
func (f Fraction) Sub(o Value) Value {
	g, ok := f.operand("Sub", o)
	if !ok {
		return Absent
	}

	return Fraction{r: new(big.Rat).Sub(f.rat(), g.rat())}
}

// Mul returns f * o.
func (f Fraction) Mul(o Value) Value {
	g, ok := f.operand("Mul", o)
	if !ok {
		return Absent
	}

	return Fraction{r: new(big.Rat).Mul(f.rat(), g.rat())}
}

// Quo returns f / o, or Absent when o is zero.
func (f Fraction) Quo(o Value) Value {
	g, ok := f.operand("Quo", o)
	if !ok || g.IsZero() {
		return Absent
	}

	return Fraction{r: new(big.Rat).Quo(f.rat(), g.rat())}
}

// Pow returns f^n by repeated squaring. Negative n inverts f first; a zero
// base with negative n yields Absent.
func (f Fraction) Pow(n int) Value {
	base := new(big.Rat).Set(f.rat())
	if n < 0 {
		if base.Sign() == 0 {
			return Absent
		}
		base.Inv(base)
		n = -n
	}
	acc := big.NewRat(1, 1)
	for n > 0 {
		if n&1 == 1 {
			acc.Mul(acc, base)
		}
		base.Mul(base, base)
		n >>= 1
	}

	return Fraction{r: acc}
}

// Neg returns -f.
func (f Fraction) Neg() Value {
	return Fraction{r: new(big.Rat).Neg(f.rat())}
}

// Equal reports whether o is a Fraction with the same value.
func (f Fraction) Equal(o Value) bool {
	g, ok := o.(Fraction)
	if !ok {
		return false
	}

	return f.rat().Cmp(g.rat()) == 0
}

// Cmp compares f and g and returns -1, 0 or +1.
func (f Fraction) Cmp(g Fraction) int {
	return f.rat().Cmp(g.rat())
}

// Sign returns -1, 0 or +1.
func (f Fraction) Sign() int {
	return f.rat().Sign()
}

// IsZero reports whether f == 0.
func (f Fraction) IsZero() bool {
	return f.rat().Sign() == 0
}

// Zero returns 0.
func (Fraction) Zero() Value { return Int(0) }

// One returns 1.
func (Fraction) One() Value { return Int(1) }

// String renders integers without a denominator and other values as "a/b".
func (f Fraction) String() string {
	return f.rat().RatString()
}
