// Package number defines the numeric contract consumed by the number wall
// engine and the exact rational value type used by default.
//
// What:
//
//   - Value: the arithmetic surface (+ - * / pow, negation, equality) a
//     wall entry must provide, together with the Zero/One identities of its
//     own kind.
//   - Absent: a sentinel Value meaning "not computable". It is absorbing
//     under every operator, on either side, and equals only itself.
//   - Fraction: an immutable exact rational backed by math/big.Rat.
//
// Why:
//
//   - The wall never inspects the concrete kind of its values, so plain
//     fractions and rational functions (see package algebra) plug in alike.
//   - Structural uncomputability flows through arithmetic as Absent instead
//     of being raised as an error.
//
// Division:
//
//	Dividing by a zero value yields Absent rather than panicking; a zero
//	divisor inside a wall means the cell is structurally uncomputable.
//
// Mixing value kinds (e.g. a Fraction with a foreign Value) is a programmer
// error and panics.
package number
