package numtheory_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr-shifu/elgamal-lib/core/math/numtheory"
)

func TestSieveOfEratosthenes(t *testing.T) {
	assert.Empty(t, numtheory.SieveOfEratosthenes(0))
	assert.Empty(t, numtheory.SieveOfEratosthenes(1))
	assert.Equal(t, []uint64{2}, numtheory.SieveOfEratosthenes(2))
	assert.Equal(t, []uint64{2, 3}, numtheory.SieveOfEratosthenes(3))

	first25 := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
		53, 59, 61, 67, 71, 73, 79, 83, 89, 97}
	assert.Equal(t, first25, numtheory.SieveOfEratosthenes(100))
}

func TestSieveOfEratosthenesLarge(t *testing.T) {
	primes := numtheory.SieveOfEratosthenes(10000)

	// π(10000) = 1229
	require.Len(t, primes, 1229)
	assert.Equal(t, uint64(9973), primes[len(primes)-1])

	last := uint64(0)
	for _, p := range primes {
		assert.Greater(t, p, last, "output must be strictly increasing")
		assert.True(t, big.NewInt(int64(p)).ProbablyPrime(64), "%d is not prime", p)
		last = p
	}
}

func TestSieveForAlmostDeterministicMillerRabin(t *testing.T) {
	// 1024-bit candidate: primes up to 1024/2 + 1
	candidate := new(big.Int).Lsh(big.NewInt(1), 1023)
	primes := numtheory.SieveForAlmostDeterministicMillerRabin(candidate)

	require.NotEmpty(t, primes)
	assert.LessOrEqual(t, primes[len(primes)-1], uint64(513))
	// π(513) = 97
	assert.Len(t, primes, 97)
}

func TestSieveForConstantProbabilityMillerRabin(t *testing.T) {
	candidate := new(big.Int).Lsh(big.NewInt(1), 1023)

	loose := numtheory.SieveForConstantProbabilityMillerRabin(candidate, 20)
	tight := numtheory.SieveForAlmostDeterministicMillerRabin(candidate)

	require.NotEmpty(t, loose)
	// the constant-probability list never exceeds the almost-deterministic one
	assert.LessOrEqual(t, len(loose), len(tight))
}
