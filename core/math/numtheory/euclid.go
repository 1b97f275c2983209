package numtheory

import "math/big"

// Euclidean returns gcd(a, b) computed with the iterative euclidean algorithm.
func Euclidean(a, b *big.Int) *big.Int {
	r0 := new(big.Int).Set(a)
	r1 := new(big.Int).Set(b)

	for r1.Sign() != 0 {
		r0.Mod(r0, r1)
		r0, r1 = r1, r0
	}

	return r0
}

// ExtendedEuclidean returns (α, β, gcd) such that α⋅a + β⋅b = gcd(a, b).
func ExtendedEuclidean(a, b *big.Int) (alpha, beta, gcd *big.Int) {
	a0, a1 := big.NewInt(1), big.NewInt(0)
	b0, b1 := big.NewInt(0), big.NewInt(1)
	r0, r1 := new(big.Int).Set(a), new(big.Int).Set(b)

	q := new(big.Int)
	t := new(big.Int)
	for r1.Sign() != 0 {
		q.Div(r0, r1)

		a0.Sub(a0, t.Mul(q, a1))
		a0, a1 = a1, a0
		b0.Sub(b0, t.Mul(q, b1))
		b0, b1 = b1, b0
		r0.Sub(r0, t.Mul(q, r1))
		r0, r1 = r1, r0
	}

	return a0, b0, r0
}
