package algebra

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/numberwall/number"
)

// Rational is an immutable rational function num/den in canonical form:
// num and den are coprime and den is monic. Zero is 0/1. The zero value of
// Rational is not canonical; use RationalOf or NewRational.
//
// Rational implements number.Value, so a wall can be built over sequences
// of rational functions.
type Rational struct {
	num Polynomial
	den Polynomial
}

var _ number.Value = Rational{}

// NewRational returns num/den reduced to canonical form.
// Returns ErrDivisionByZero when den is the zero polynomial.
func NewRational(num, den Polynomial) (Rational, error) {
	if den.IsZero() {
		return Rational{}, ErrDivisionByZero
	}

	return canonical(num, den), nil
}

// RationalOf returns the rational function p/1.
func RationalOf(p Polynomial) Rational {
	return Rational{num: p, den: PolyInts(1)}
}

// RationalInts is RationalOf(PolyInts(coeffs...)).
func RationalInts(coeffs ...int64) Rational {
	return RationalOf(PolyInts(coeffs...))
}

// canonical divides out the gcd and makes den monic. den must be non-zero.
func canonical(num, den Polynomial) Rational {
	if num.IsZero() {
		return Rational{num: Polynomial{}, den: PolyInts(1)}
	}
	g := num.GCD(den)
	n, _, _ := num.DivMod(g)
	d, _, _ := den.DivMod(g)
	inv := new(big.Rat).Inv(d.Lead())

	return Rational{num: n.Scale(inv), den: d.Scale(inv)}
}

// Numerator returns the canonical numerator.
func (r Rational) Numerator() Polynomial { return r.num }

// Denominator returns the canonical, monic denominator.
func (r Rational) Denominator() Polynomial {
	if r.den.IsZero() {
		return PolyInts(1)
	}

	return r.den
}

// Degree returns the degrees of the numerator and the denominator.
func (r Rational) Degree() (int, int) {
	return r.num.Degree(), r.Denominator().Degree()
}

// ToInteger scales numerator and denominator by the least common multiple
// of all their coefficient denominators, so both have integer coefficients.
func (r Rational) ToInteger() (Polynomial, Polynomial) {
	l := big.NewInt(1)
	for _, p := range []Polynomial{r.num, r.Denominator()} {
		for _, v := range p.c {
			l = lcm(l, v.Denom())
		}
	}
	k := new(big.Rat).SetInt(l)

	return r.num.Scale(k), r.Denominator().Scale(k)
}

// Eval returns r(x). ok is false when the denominator vanishes at x.
func (r Rational) Eval(x *big.Rat) (*big.Rat, bool) {
	d := r.Denominator().Eval(x)
	if d.Sign() == 0 {
		return nil, false
	}

	return d.Quo(r.num.Eval(x), d), true
}

// operand extracts a Rational from o. ok is false when o is Absent.
func (r Rational) operand(op string, o number.Value) (Rational, bool) {
	if number.IsAbsent(o) {
		return Rational{}, false
	}
	s, ok := o.(Rational)
	if !ok {
		panic(fmt.Sprintf("algebra: %s: cannot combine %T with %T", op, r, o))
	}

	return s, true
}

// Add returns r + o.
func (r Rational) Add(o number.Value) number.Value {
	s, ok := r.operand("Add", o)
	if !ok {
		return number.Absent
	}
	a, b := r.Denominator(), s.Denominator()
	if a.Equal(b) {
		return canonical(r.num.Add(s.num), a)
	}

	return canonical(r.num.Mul(b).Add(s.num.Mul(a)), a.Mul(b))
}

// Sub returns r - o.
func (r Rational) Sub(o number.Value) number.Value {
	s, ok := r.operand("Sub", o)
	if !ok {
		return number.Absent
	}

	return r.Add(s.Neg())
}

// Mul returns r * o.
func (r Rational) Mul(o number.Value) number.Value {
	s, ok := r.operand("Mul", o)
	if !ok {
		return number.Absent
	}

	return canonical(r.num.Mul(s.num), r.Denominator().Mul(s.Denominator()))
}

// Quo returns r / o, or Absent when o is zero.
func (r Rational) Quo(o number.Value) number.Value {
	s, ok := r.operand("Quo", o)
	if !ok || s.IsZero() {
		return number.Absent
	}

	return canonical(r.num.Mul(s.Denominator()), r.Denominator().Mul(s.num))
}

// Pow returns r^n. Negative n inverts r first; zero with negative n yields
// Absent.
func (r Rational) Pow(n int) number.Value {
	num, den := r.num, r.Denominator()
	if n < 0 {
		if r.IsZero() {
			return number.Absent
		}
		num, den, n = den, num, -n
	}

	return canonical(num.Pow(n), den.Pow(n))
}

// Neg returns -r.
func (r Rational) Neg() number.Value {
	return Rational{num: r.num.Neg(), den: r.Denominator()}
}

// Equal reports whether o is a Rational with the same canonical form.
func (r Rational) Equal(o number.Value) bool {
	s, ok := o.(Rational)
	if !ok {
		return false
	}

	return r.num.Equal(s.num) && r.Denominator().Equal(s.Denominator())
}

// IsZero reports whether r is the zero function.
func (r Rational) IsZero() bool { return r.num.IsZero() }

// Zero returns 0.
func (Rational) Zero() number.Value { return RationalInts(0) }

// One returns 1.
func (Rational) One() number.Value { return RationalInts(1) }

// String renders "num" when the denominator is 1 and "(num)/(den)"
// otherwise.
func (r Rational) String() string {
	d := r.Denominator()
	if d.Degree() == 0 {
		return r.num.String()
	}

	return fmt.Sprintf("(%s)/(%s)", r.num, d)
}
