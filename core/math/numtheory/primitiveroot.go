package numtheory

import "math/big"

// PrimitiveRoot finds a primitive root modulo the prime p with Gauss's
// algorithm. factorization must be the complete factorization of p - 1;
// with a partial one the result is merely a generator of a subgroup.
//
// For each prime power qᵉ dividing p - 1, the smallest a ≥ 2 with
// a^((p-1)/q) ≢ 1 (mod p) is raised to (p-1)/qᵉ, giving a generator of the
// subgroup of order qᵉ. The product of the subgroup generators has order
// lcm of the qᵉ, which is p - 1.
func PrimitiveRoot(factorization Factorization, p *big.Int) *big.Int {
	g := big.NewInt(1)
	pMinus1 := new(big.Int).Sub(p, one)

	for _, pp := range factorization {
		n := new(big.Int).Div(pMinus1, pp.Prime)
		a := big.NewInt(2)

		for ModularExponentiation(a, n, p).Cmp(one) == 0 {
			a.Add(a, one)
		}

		qe := big.NewInt(1)
		for i := 0; i < pp.Exponent; i++ {
			qe.Mul(qe, pp.Prime)
		}

		h := ModularExponentiation(a, new(big.Int).Div(pMinus1, qe), p)
		g.Mul(g, h)
		g.Mod(g, p)
	}

	return g
}
