package numtheory

import "math/big"

// millerRabin64Bases is a deterministic base list for every n < 2⁶⁴, due to
// Sinclair (see https://miller-rabin.appspot.com).
var millerRabin64Bases = []uint64{2, 325, 9375, 28178, 450775, 9780504, 1795265022}

// FermatTest reports whether n passes Fermat's little theorem test
// bⁿ⁻¹ ≡ 1 (mod n) for every base in bases. A composite can slip through
// (Carmichael numbers pass every coprime base), so MillerRabin is preferred.
func FermatTest(n *big.Int, bases []uint64) bool {
	nMinus1 := new(big.Int).Sub(n, one)
	b := new(big.Int)

	for _, base := range bases {
		b.SetUint64(base)
		if ModularExponentiation(b, nMinus1, n).Cmp(one) != 0 {
			return false
		}
	}

	return true
}

// MillerRabin runs the Miller-Rabin strong probable prime test on n for every
// base in bases. It returns false as soon as a base proves n composite, and
// true when every base passes, meaning n is probably prime.
func MillerRabin(n *big.Int, bases []uint64) bool {
	if n.Cmp(two) == 0 {
		return true
	}
	if n.Cmp(two) < 0 || n.Bit(0) == 0 {
		return false
	}

	// n - 1 = 2ˢ⋅d with d odd
	d := new(big.Int).Sub(n, one)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	// If n is prime, x² ≡ 1 (mod n) forces x ≡ ±1, so the sequence
	// bᵈ, b²ᵈ, …, b^(2^(s-1)⋅d) must hit 1 through -1 (or start at 1).
	nMinus1 := new(big.Int).Sub(n, one)
	b := new(big.Int)
	for _, base := range bases {
		b.SetUint64(base)
		power := ModularExponentiation(b, d, n)
		if power.Cmp(one) == 0 || power.Cmp(nMinus1) == 0 {
			continue
		}

		hitMinus1 := false
		for i := 0; i < s-1; i++ {
			power.Mul(power, power)
			power.Mod(power, n)
			if power.Cmp(nMinus1) == 0 {
				hitMinus1 = true
				break
			}
		}
		if !hitMinus1 {
			return false
		}
	}

	return true
}

// MillerRabin64 runs MillerRabin with a fixed base list that is deterministic
// for every n below 2⁶⁴.
func MillerRabin64(n *big.Int) bool {
	return MillerRabin(n, millerRabin64Bases)
}

// FastPrimalityTest combines trial division by divisors with a Miller-Rabin
// test on bases. Callers are expected to pass the same adaptively sized prime
// list for both roles; the sieve sizing heuristics below produce it.
func FastPrimalityTest(n *big.Int, divisors, bases []uint64) bool {
	if n.Cmp(two) == 0 {
		return true
	}
	if n.Cmp(two) < 0 || n.Bit(0) == 0 {
		return false
	}

	d := new(big.Int)
	m := new(big.Int)
	for _, divisor := range divisors {
		d.SetUint64(divisor)
		if m.Mod(n, d).Sign() == 0 {
			return n.Cmp(d) == 0
		}
	}

	return MillerRabin(n, bases)
}
