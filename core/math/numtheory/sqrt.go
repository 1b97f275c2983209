package numtheory

import "math/big"

// Sqrt returns ⌊√n⌋ using the babylonian iteration x ← (x + n/x)/2.
// It panics if n is negative.
func Sqrt(n *big.Int) *big.Int {
	if n.Sign() < 0 {
		panic("numtheory: square root of negative number")
	}
	if n.Sign() == 0 {
		return new(big.Int)
	}

	x := new(big.Int).Set(n)
	y := big.NewInt(1)

	for y.Cmp(x) < 0 {
		x.Add(x, y)
		x.Rsh(x, 1)
		y.Div(n, x)
	}

	return x
}

// CeilSqrt returns ⌈√n⌉, computed as 1 + ⌊√(n-1)⌋ for n ≥ 1.
func CeilSqrt(n *big.Int) *big.Int {
	if n.Sign() <= 0 {
		return new(big.Int)
	}

	r := Sqrt(new(big.Int).Sub(n, one))
	return r.Add(r, one)
}
