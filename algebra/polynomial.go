package algebra

import (
	"fmt"
	"math/big"
	"strings"
)

// Polynomial is an immutable polynomial with rational coefficients, stored
// in ascending order of powers without trailing zeros. The zero value is
// the zero polynomial.
type Polynomial struct {
	c []*big.Rat
}

// NewPolynomial builds c[0] + c[1]·x + … . Coefficients are copied; nil
// entries count as zero.
func NewPolynomial(coeffs ...*big.Rat) Polynomial {
	c := make([]*big.Rat, len(coeffs))
	for i, v := range coeffs {
		c[i] = new(big.Rat)
		if v != nil {
			c[i].Set(v)
		}
	}

	return trim(c)
}

// PolyInts builds a polynomial from integer coefficients.
func PolyInts(coeffs ...int64) Polynomial {
	c := make([]*big.Rat, len(coeffs))
	for i, v := range coeffs {
		c[i] = new(big.Rat).SetInt64(v)
	}

	return trim(c)
}

// Monomial returns k·x^n. It panics on negative n.
func Monomial(k *big.Rat, n int) Polynomial {
	if n < 0 {
		panic("algebra: Monomial with negative power")
	}
	c := make([]*big.Rat, n+1)
	for i := range c {
		c[i] = new(big.Rat)
	}
	c[n].Set(k)

	return trim(c)
}

// X returns the polynomial x.
func X() Polynomial { return PolyInts(0, 1) }

// trim drops trailing zero coefficients in place.
func trim(c []*big.Rat) Polynomial {
	n := len(c)
	for n > 0 && c[n-1].Sign() == 0 {
		n--
	}
	if n == 0 {
		return Polynomial{}
	}

	return Polynomial{c: c[:n]}
}

// Degree returns the degree, or -1 for the zero polynomial.
func (p Polynomial) Degree() int { return len(p.c) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return len(p.c) == 0 }

// Coeff returns a copy of the coefficient of x^i (zero beyond the degree).
func (p Polynomial) Coeff(i int) *big.Rat {
	if i < 0 || i >= len(p.c) {
		return new(big.Rat)
	}

	return new(big.Rat).Set(p.c[i])
}

// Coefficients returns copies of all coefficients, lowest power first.
func (p Polynomial) Coefficients() []*big.Rat {
	out := make([]*big.Rat, len(p.c))
	for i, v := range p.c {
		out[i] = new(big.Rat).Set(v)
	}

	return out
}

// Lead returns the leading coefficient, zero for the zero polynomial.
func (p Polynomial) Lead() *big.Rat {
	return p.Coeff(p.Degree())
}

// Equal reports whether p and q have the same coefficients.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.c) != len(q.c) {
		return false
	}
	for i := range p.c {
		if p.c[i].Cmp(q.c[i]) != 0 {
			return false
		}
	}

	return true
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := max(len(p.c), len(q.c))
	c := make([]*big.Rat, n)
	for i := range c {
		c[i] = new(big.Rat).Add(p.at(i), q.at(i))
	}

	return trim(c)
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	n := max(len(p.c), len(q.c))
	c := make([]*big.Rat, n)
	for i := range c {
		c[i] = new(big.Rat).Sub(p.at(i), q.at(i))
	}

	return trim(c)
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	c := make([]*big.Rat, len(p.c))
	for i, v := range p.c {
		c[i] = new(big.Rat).Neg(v)
	}

	return Polynomial{c: c}
}

// Scale returns k·p.
func (p Polynomial) Scale(k *big.Rat) Polynomial {
	c := make([]*big.Rat, len(p.c))
	for i, v := range p.c {
		c[i] = new(big.Rat).Mul(v, k)
	}

	return trim(c)
}

// Mul returns p·q.
// Time Complexity: O(deg p · deg q).
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Polynomial{}
	}
	c := make([]*big.Rat, len(p.c)+len(q.c)-1)
	for i := range c {
		c[i] = new(big.Rat)
	}
	t := new(big.Rat)
	for i, a := range p.c {
		for j, b := range q.c {
			c[i+j].Add(c[i+j], t.Mul(a, b))
		}
	}

	return trim(c)
}

// Pow returns p^n by repeated squaring; p^0 is 1. It panics on negative n.
func (p Polynomial) Pow(n int) Polynomial {
	if n < 0 {
		panic("algebra: Polynomial.Pow with negative exponent")
	}
	acc, base := PolyInts(1), p
	for n > 0 {
		if n&1 == 1 {
			acc = acc.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}

	return acc
}

// DivMod returns q and r with p = q·d + r and deg r < deg d.
// Returns ErrDivisionByZero when d is zero.
func (p Polynomial) DivMod(d Polynomial) (Polynomial, Polynomial, error) {
	// Stage 1: Validate divisor
	if d.IsZero() {
		return Polynomial{}, Polynomial{}, ErrDivisionByZero
	}
	shift := p.Degree() - d.Degree()
	if shift < 0 {
		return Polynomial{}, p, nil
	}
	// Stage 2: Long division on a working copy of the dividend
	rem := p.Coefficients()
	quo := make([]*big.Rat, shift+1)
	lead := d.c[len(d.c)-1]
	t := new(big.Rat)
	for k := shift; k >= 0; k-- {
		f := new(big.Rat).Quo(rem[k+d.Degree()], lead)
		quo[k] = f
		for i, v := range d.c {
			rem[k+i].Sub(rem[k+i], t.Mul(v, f))
		}
	}

	return trim(quo), trim(rem), nil
}

// GCD returns the monic greatest common divisor of p and q. The gcd of two
// zero polynomials is zero.
func (p Polynomial) GCD(q Polynomial) Polynomial {
	a, b := p, q
	for !b.IsZero() {
		_, r, _ := a.DivMod(b)
		a, b = b, r
	}

	return a.ToMonic()
}

// ToMonic divides p by its leading coefficient. Zero stays zero.
func (p Polynomial) ToMonic() Polynomial {
	if p.IsZero() {
		return p
	}

	return p.Scale(new(big.Rat).Inv(p.c[len(p.c)-1]))
}

// ToInteger scales p by the least common multiple of its coefficient
// denominators and returns the result together with that factor.
func (p Polynomial) ToInteger() (Polynomial, *big.Rat) {
	l := big.NewInt(1)
	for _, v := range p.c {
		l = lcm(l, v.Denom())
	}
	k := new(big.Rat).SetInt(l)

	return p.Scale(k), k
}

// Eval returns p(x) by Horner's rule.
func (p Polynomial) Eval(x *big.Rat) *big.Rat {
	res := new(big.Rat)
	for i := len(p.c) - 1; i >= 0; i-- {
		res.Mul(res, x)
		res.Add(res, p.c[i])
	}

	return res
}

// Diff returns the derivative of the given order.
// Returns ErrNegativeOrder for order < 0.
func (p Polynomial) Diff(m *Memo, order int) (Polynomial, error) {
	if order < 0 {
		return Polynomial{}, fmt.Errorf("%w: %d", ErrNegativeOrder, order)
	}
	if order > p.Degree() {
		return Polynomial{}, nil
	}
	// d^k/dx^k x^j = j·(j-1)···(j-k+1) x^(j-k)
	c := make([]*big.Rat, len(p.c)-order)
	for j := order; j < len(p.c); j++ {
		f := new(big.Rat).SetInt(m.FallingFactorial(j, order))
		c[j-order] = f.Mul(f, p.c[j])
	}

	return trim(c), nil
}

// Integral returns the order-fold antiderivative of p. constants, when
// given, must hold one value per order: the i-th becomes the i-th
// derivative at 0 of the result, contributing constants[i]·x^i/i!.
func (p Polynomial) Integral(m *Memo, order int, constants ...*big.Rat) (Polynomial, error) {
	// Stage 1: Validate arguments
	if order < 0 {
		return Polynomial{}, fmt.Errorf("%w: %d", ErrNegativeOrder, order)
	}
	if len(constants) != 0 && len(constants) != order {
		return Polynomial{}, fmt.Errorf("%w: got %d, order %d", ErrConstants, len(constants), order)
	}
	// Stage 2: Low powers come from the integration constants
	c := make([]*big.Rat, order+len(p.c))
	for i := 0; i < order; i++ {
		c[i] = new(big.Rat)
		if len(constants) > 0 && constants[i] != nil {
			c[i].Quo(constants[i], new(big.Rat).SetInt(m.Factorial(i)))
		}
	}
	// Stage 3: x^k integrates to x^(k+order) / ((k+1)···(k+order))
	for k, v := range p.c {
		den := new(big.Rat).SetInt(m.FallingFactorial(k+order, order))
		c[k+order] = new(big.Rat).Quo(v, den)
	}

	return trim(c), nil
}

// FallingFactorial returns x·(x-1)···(x-n+1); n = 0 gives 1.
// It panics on negative n.
func FallingFactorial(m *Memo, n int) Polynomial {
	if n < 0 {
		panic("algebra: FallingFactorial of negative power")
	}
	c := make([]*big.Rat, n+1)
	for k := range c {
		c[k] = new(big.Rat).SetInt(m.StirlingI(n, k))
	}

	return trim(c)
}

// RisingFactorial returns x·(x+1)···(x+n-1); n = 0 gives 1.
// It panics on negative n.
func RisingFactorial(m *Memo, n int) Polynomial {
	if n < 0 {
		panic("algebra: RisingFactorial of negative power")
	}
	c := make([]*big.Rat, n+1)
	for k := range c {
		c[k] = new(big.Rat).SetInt(new(big.Int).Abs(m.StirlingI(n, k)))
	}

	return trim(c)
}

// String renders p with ascending powers, e.g. "1 + x + x^2 - x^3" or
// "1/2 - 3x". The zero polynomial is "0".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i, v := range p.c {
		if v.Sign() == 0 {
			continue
		}
		// sign
		switch {
		case sb.Len() == 0 && v.Sign() < 0:
			sb.WriteString("-")
		case sb.Len() > 0 && v.Sign() < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		abs := new(big.Rat).Abs(v)
		// coefficient, omitted when it is 1 on a power of x
		if i == 0 || abs.Cmp(big.NewRat(1, 1)) != 0 {
			sb.WriteString(abs.RatString())
		}
		// power
		switch {
		case i == 1:
			sb.WriteString("x")
		case i > 1:
			fmt.Fprintf(&sb, "x^%d", i)
		}
	}

	return sb.String()
}

// at returns the i-th coefficient without copying, zero beyond the degree.
func (p Polynomial) at(i int) *big.Rat {
	if i < len(p.c) {
		return p.c[i]
	}

	return new(big.Rat)
}

// lcm returns the least common multiple of positive a and b.
func lcm(a, b *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, a, b)
	l := new(big.Int).Quo(a, g)

	return l.Mul(l, b)
}
