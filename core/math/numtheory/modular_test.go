package numtheory_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr-shifu/elgamal-lib/core/math/numtheory"
	"github.com/mr-shifu/elgamal-lib/core/math/sample"
)

// saferith serves as the independent bignum oracle here: the hand-rolled
// exponentiation must agree with it on random operands.
func TestModularExponentiationMatchesSaferith(t *testing.T) {
	for _, bits := range []int{64, 256, 1024, 4096} {
		for i := 0; i < 4; i++ {
			base, err := sample.RandomBits(nil, bits)
			require.NoError(t, err)
			exponent, err := sample.RandomBits(nil, bits)
			require.NoError(t, err)
			modulo, err := sample.RandomBigInt(nil, bits)
			require.NoError(t, err)
			modulo.SetBit(modulo, 0, 1) // odd, for saferith's sake

			got := numtheory.ModularExponentiation(base, exponent, modulo)

			m := saferith.ModulusFromNat(new(saferith.Nat).SetBytes(modulo.Bytes()))
			want := new(saferith.Nat).Exp(
				new(saferith.Nat).SetBytes(base.Bytes()),
				new(saferith.Nat).SetBytes(exponent.Bytes()),
				m,
			).Big()

			assert.Zero(t, got.Cmp(want), "b=%s e=%s m=%s", base, exponent, modulo)
		}
	}
}

func TestModularExponentiationEdgeExponents(t *testing.T) {
	modulo, err := sample.RandomBigInt(nil, 256)
	require.NoError(t, err)
	modulo.SetBit(modulo, 0, 1)
	base, err := sample.RandomBits(nil, 256)
	require.NoError(t, err)

	// e = 0 yields 1
	got := numtheory.ModularExponentiation(base, new(big.Int), modulo)
	assert.Equal(t, int64(1), got.Int64())

	// e with all bits set
	allOnes := new(big.Int).Lsh(big.NewInt(1), 64)
	allOnes.Sub(allOnes, big.NewInt(1))

	got = numtheory.ModularExponentiation(base, allOnes, modulo)
	want := new(big.Int).Exp(base, allOnes, modulo)
	assert.Zero(t, got.Cmp(want))
}

func TestMultiplicativeInverse(t *testing.T) {
	ctx := context.Background()

	start, err := sample.RandomBigInt(nil, 256)
	require.NoError(t, err)
	modulo, err := numtheory.NextPrime(ctx, start)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		a, err := sample.RandomInRange(nil, big.NewInt(1), new(big.Int).Sub(modulo, big.NewInt(1)))
		require.NoError(t, err)

		inverse, err := numtheory.MultiplicativeInverse(a, modulo)
		require.NoError(t, err)

		product := new(big.Int).Mul(a, inverse)
		product.Mod(product, modulo)
		assert.Equal(t, int64(1), product.Int64(), "a=%s", a)
	}
}

func TestMultiplicativeInverseNoInverse(t *testing.T) {
	_, err := numtheory.MultiplicativeInverse(big.NewInt(6), big.NewInt(9))
	assert.ErrorIs(t, err, numtheory.ErrNoInverse)

	_, err = numtheory.MultiplicativeInverse(big.NewInt(0), big.NewInt(7))
	assert.ErrorIs(t, err, numtheory.ErrNoInverse)
}
