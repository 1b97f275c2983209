package numtheory

import (
	"context"
	"math/big"
)

// NextPrime returns the smallest odd probable prime ≥ number; an even start
// is rounded up to odd first, so 2 is never returned. The adaptive prime
// list is sieved once, from the first candidate, and reused across the whole
// search; recomputing it per step would dominate the cost. The search is
// unbounded, so ctx is checked before each candidate.
func NextPrime(ctx context.Context, number *big.Int) (*big.Int, error) {
	prime := new(big.Int).Set(number)
	if prime.Bit(0) == 0 {
		prime.Add(prime, one)
	}

	primes := SieveForAlmostDeterministicMillerRabin(prime)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if FastPrimalityTest(prime, primes, primes) {
			return prime, nil
		}
		prime.Add(prime, two)
	}
}

// NextPrimeConstantProbability is NextPrime with the prime list sized for a
// 2⁻ᶜ false-probable-prime bound instead of the almost-deterministic sizing.
func NextPrimeConstantProbability(ctx context.Context, number *big.Int, c int) (*big.Int, error) {
	prime := new(big.Int).Set(number)
	if prime.Bit(0) == 0 {
		prime.Add(prime, one)
	}

	primes := SieveForConstantProbabilityMillerRabin(prime, c)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if FastPrimalityTest(prime, primes, primes) {
			return prime, nil
		}
		prime.Add(prime, two)
	}
}

// PreviousPrime returns the greatest probable prime ≤ number, or 2 when
// number ≤ 2.
func PreviousPrime(ctx context.Context, number *big.Int) (*big.Int, error) {
	if number.Cmp(two) <= 0 {
		return big.NewInt(2), nil
	}

	prime := new(big.Int).Set(number)
	if prime.Bit(0) == 0 {
		prime.Sub(prime, one)
	}

	primes := SieveForAlmostDeterministicMillerRabin(prime)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if FastPrimalityTest(prime, primes, primes) {
			return prime, nil
		}
		prime.Sub(prime, two)
		if prime.Cmp(two) < 0 {
			return big.NewInt(2), nil
		}
	}
}
