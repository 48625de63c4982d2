package number

import "fmt"

// Value is the arithmetic contract of a wall entry.
//
// Binary operators receive operands of the same kind or Absent. Any operator
// with an Absent operand returns Absent.
type Value interface {
	// Add returns v + o.
	Add(o Value) Value
	// Sub returns v - o.
	Sub(o Value) Value
	// Mul returns v * o.
	Mul(o Value) Value
	// Quo returns v / o, or Absent when o is zero.
	Quo(o Value) Value
	// Pow returns v raised to the integer power n.
	Pow(n int) Value
	// Neg returns -v.
	Neg() Value
	// Equal reports whether v and o denote the same value.
	Equal(o Value) bool
	// IsZero reports whether v is the additive identity.
	IsZero() bool
	// Zero returns the additive identity of v's kind.
	Zero() Value
	// One returns the multiplicative identity of v's kind.
	One() Value
	// String renders v for tables and logs.
	String() string
}

// absent is the concrete type of the Absent sentinel.
type absent struct{}

// Absent marks a slot that holds no computable value.
var Absent Value = absent{}

// IsAbsent reports whether v is the Absent sentinel (or a nil interface).
func IsAbsent(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(absent)

	return ok
}

func (absent) Add(Value) Value  { return Absent }
func (absent) Sub(Value) Value  { return Absent }
func (absent) Mul(Value) Value  { return Absent }
func (absent) Quo(Value) Value  { return Absent }
func (absent) Pow(int) Value    { return Absent }
func (absent) Neg() Value       { return Absent }
func (absent) IsZero() bool     { return false }
func (absent) Zero() Value      { return Absent }
func (absent) One() Value       { return Absent }
func (absent) String() string   { return "" }
func (absent) GoString() string { return "<absent>" }

// Equal holds only between Absent values.
func (absent) Equal(o Value) bool { return IsAbsent(o) }

// IsZeroValue reports whether v is present and zero. It is the predicate
// used for zero-run detection and termination checks.
func IsZeroValue(v Value) bool {
	return !IsAbsent(v) && v.IsZero()
}

// EqualUpToSign reports whether a equals b or -b. Absent never matches.
func EqualUpToSign(a, b Value) bool {
	if IsAbsent(a) || IsAbsent(b) {
		return false
	}

	return a.Equal(b) || a.Neg().Equal(b)
}

// mismatch panics on an operand of a foreign kind.
func mismatch(op string, a, b Value) {
	panic(fmt.Sprintf("number: %s: cannot combine %T with %T", op, a, b))
}
