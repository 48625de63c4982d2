package algebra

import "math/big"

// Memo caches combinatorial numbers. It replaces process-wide caches: each
// caller owns its Memo. A Memo is not safe for concurrent use.
type Memo struct {
	fact     []*big.Int
	stirling map[[2]int]*big.Int
}

// NewMemo returns an empty cache.
func NewMemo() *Memo {
	return &Memo{
		fact:     []*big.Int{big.NewInt(1)},
		stirling: make(map[[2]int]*big.Int),
	}
}

// Factorial returns n!. It panics on negative n.
func (m *Memo) Factorial(n int) *big.Int {
	if n < 0 {
		panic("algebra: Factorial of a negative number")
	}
	for k := len(m.fact); k <= n; k++ {
		m.fact = append(m.fact, new(big.Int).Mul(m.fact[k-1], big.NewInt(int64(k))))
	}

	return new(big.Int).Set(m.fact[n])
}

// FallingFactorial returns n·(n-1)···(n-k+1), which is 1 for k = 0 and 0
// for k > n.
func (m *Memo) FallingFactorial(n, k int) *big.Int {
	switch {
	case k <= 0:
		return big.NewInt(1)
	case n < 0 || k > n:
		return new(big.Int)
	}

	return new(big.Int).Quo(m.Factorial(n), m.Factorial(n-k))
}

// StirlingI returns the signed Stirling number of the first kind s(n, k),
// the coefficient of x^k in x·(x-1)···(x-n+1).
func (m *Memo) StirlingI(n, k int) *big.Int {
	switch {
	case n < 0 || k < 0 || k > n:
		return new(big.Int)
	case n == 0 && k == 0:
		return big.NewInt(1)
	case k == 0:
		return new(big.Int)
	}
	key := [2]int{n, k}
	if v, ok := m.stirling[key]; ok {
		return new(big.Int).Set(v)
	}
	// s(n,k) = -(n-1)·s(n-1,k) + s(n-1,k-1)
	v := new(big.Int).Mul(big.NewInt(int64(-(n - 1))), m.StirlingI(n-1, k))
	v.Add(v, m.StirlingI(n-1, k-1))
	m.stirling[key] = v

	return new(big.Int).Set(v)
}
