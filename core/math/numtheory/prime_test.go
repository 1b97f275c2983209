package numtheory_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr-shifu/elgamal-lib/core/math/numtheory"
	"github.com/mr-shifu/elgamal-lib/core/math/sample"
)

func TestNextPrime(t *testing.T) {
	ctx := context.Background()

	tests := []struct{ start, want int64 }{
		{0, 3}, {2, 3}, {3, 3}, {4, 5}, {14, 17}, {17, 17}, {90, 97},
	}
	for _, tt := range tests {
		got, err := numtheory.NextPrime(ctx, big.NewInt(tt.start))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Int64(), "nextPrime(%d)", tt.start)
	}
}

func TestNextPrimeLarge(t *testing.T) {
	ctx := context.Background()

	start, err := sample.RandomBigInt(nil, 256)
	require.NoError(t, err)

	prime, err := numtheory.NextPrime(ctx, start)
	require.NoError(t, err)

	assert.True(t, prime.ProbablyPrime(64))
	assert.True(t, prime.Cmp(start) >= 0)
}

func TestNextPrimeCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// 2²⁵⁶ + 1 (the eighth Fermat number) is composite, so the search must
	// take at least one step and observe the cancelled context.
	start := new(big.Int).Lsh(big.NewInt(1), 256)
	_, err := numtheory.NextPrime(ctx, start)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNextPrimeConstantProbability(t *testing.T) {
	ctx := context.Background()

	start, err := sample.RandomBigInt(nil, 128)
	require.NoError(t, err)

	prime, err := numtheory.NextPrimeConstantProbability(ctx, start, 40)
	require.NoError(t, err)

	assert.True(t, prime.ProbablyPrime(64))
	assert.True(t, prime.Cmp(start) >= 0)
}

func TestPreviousPrime(t *testing.T) {
	ctx := context.Background()

	tests := []struct{ start, want int64 }{
		{0, 2}, {1, 2}, {2, 2}, {3, 3}, {4, 3}, {14, 13}, {17, 17}, {90, 89},
	}
	for _, tt := range tests {
		got, err := numtheory.PreviousPrime(ctx, big.NewInt(tt.start))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Int64(), "previousPrime(%d)", tt.start)
	}
}

func TestPreviousPrimeLarge(t *testing.T) {
	ctx := context.Background()

	start, err := sample.RandomBigInt(nil, 256)
	require.NoError(t, err)

	prime, err := numtheory.PreviousPrime(ctx, start)
	require.NoError(t, err)

	assert.True(t, prime.ProbablyPrime(64))
	assert.True(t, prime.Cmp(start) <= 0)
}
