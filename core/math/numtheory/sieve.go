package numtheory

import (
	"math/big"
	"math/bits"
)

// SieveOfEratosthenes returns the ordered list of all primes ≤ max.
func SieveOfEratosthenes(max int) []uint64 {
	if max < 2 {
		return []uint64{}
	}

	isPrime := make([]bool, max+1)
	for i := 2; i <= max; i++ {
		isPrime[i] = true
	}

	for p := 2; p*p <= max; p++ {
		if !isPrime[p] {
			continue
		}
		// multiples below p² carry a smaller factor and are already crossed out
		for q := p * p; q <= max; q += p {
			isPrime[q] = false
		}
	}

	primes := make([]uint64, 0, max/2)
	for p := 2; p <= max; p++ {
		if isPrime[p] {
			primes = append(primes, uint64(p))
		}
	}

	return primes
}

// SieveForAlmostDeterministicMillerRabin sieves all primes up to h/2 + 1 where
// h is the bit length of number. Used as both the trial divisors and the
// Miller-Rabin bases of FastPrimalityTest, the resulting O(h / log h) primes
// make the test "almost deterministic": a heuristic, not a proven bound.
func SieveForAlmostDeterministicMillerRabin(number *big.Int) []uint64 {
	h := number.BitLen()
	return SieveOfEratosthenes(h/2 + 1)
}

// SieveForConstantProbabilityMillerRabin sizes the prime list so that the
// false-probable-prime probability over a whole prime search stays around 2⁻ᶜ.
// The base count is b = c + log₂ h, and the sieve bound approximates the
// inverse prime-counting function π⁻¹(b) < b⋅log₂ b, capped at the
// almost-deterministic bound h/2 + 1 since more bases buy nothing.
func SieveForConstantProbabilityMillerRabin(number *big.Int, c int) []uint64 {
	h := number.BitLen()
	b := c + bits.Len(uint(h))

	bound := b * bits.Len(uint(b))
	if max := h/2 + 1; bound > max {
		bound = max
	}

	return SieveOfEratosthenes(bound)
}
