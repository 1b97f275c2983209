package numtheory

import "math/big"

// PrimePower is one (prime, exponent) factor of a factorization.
type PrimePower struct {
	Prime    *big.Int
	Exponent int
}

// Factorization is an ordered list of prime powers whose product is the
// factored number.
type Factorization []PrimePower

// Product multiplies the factorization back together.
func (f Factorization) Product() *big.Int {
	product := big.NewInt(1)

	for _, pp := range f {
		for i := 0; i < pp.Exponent; i++ {
			product.Mul(product, pp.Prime)
		}
	}

	return product
}

// FactorTrialDivision factors number by trial division with increasing
// divisors, shrinking the √n bound as factors are divided out. Any residual
// greater than 1 at the end is itself prime and appended. Only intended for
// small numbers; the bound makes it useless on a cryptographic modulus.
func FactorTrialDivision(number *big.Int) Factorization {
	n := new(big.Int).Set(number)
	sqrtN := Sqrt(n)

	var factorization Factorization
	d := big.NewInt(2)
	m := new(big.Int)

	for d.Cmp(sqrtN) <= 0 {
		if m.Mod(n, d).Sign() == 0 {
			// n = dᵉ⋅n'
			e := 0
			for m.Mod(n, d).Sign() == 0 {
				n.Div(n, d)
				e++
			}

			sqrtN = Sqrt(n)
			factorization = append(factorization, PrimePower{Prime: new(big.Int).Set(d), Exponent: e})
		}

		d.Add(d, one)
	}

	if n.Cmp(one) != 0 {
		factorization = append(factorization, PrimePower{Prime: n, Exponent: 1})
	}

	return factorization
}
