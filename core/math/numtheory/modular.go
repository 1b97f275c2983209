package numtheory

import "math/big"

// ModularExponentiation returns baseᵉˣᵖ (mod modulo) using binary
// square-and-multiply. The zero exponent yields 1.
func ModularExponentiation(base, exponent, modulo *big.Int) *big.Int {
	p := big.NewInt(1)
	b := new(big.Int).Set(base)
	e := new(big.Int).Set(exponent)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			p.Mul(p, b)
			p.Mod(p, modulo)
		}

		e.Rsh(e, 1)
		b.Mul(b, b)
		b.Mod(b, modulo)
	}

	return p
}

// MultiplicativeInverse returns number⁻¹ (mod modulo). Only the α Bézout
// coefficient is tracked, and it is reduced mod modulo at every step so the
// intermediate values stay bounded. ErrNoInverse is returned when
// gcd(number, modulo) ≠ 1.
func MultiplicativeInverse(number, modulo *big.Int) (*big.Int, error) {
	a0, a1 := big.NewInt(1), big.NewInt(0)
	r0, r1 := new(big.Int).Set(number), new(big.Int).Set(modulo)

	q := new(big.Int)
	t := new(big.Int)
	for r1.Sign() != 0 {
		q.Div(r0, r1)

		// α = (α₀ - q⋅α₁) (mod modulo)
		t.Mul(q, a1)
		t.Mod(t, modulo)
		a0.Sub(a0, t)
		a0.Mod(a0, modulo)
		a0, a1 = a1, a0

		r0.Sub(r0, t.Mul(q, r1))
		r0, r1 = r1, r0
	}

	if r0.Cmp(one) != 0 {
		return nil, ErrNoInverse
	}
	return a0, nil
}
