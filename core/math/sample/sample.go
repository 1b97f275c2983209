// Package sample draws cryptographically secure random integers. Every
// function takes an io.Reader so tests can inject a deterministic source;
// a nil reader falls back to crypto/rand.Reader.
package sample

import (
	cryptorand "crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

var one = big.NewInt(1)

// RandomInRange returns a uniform random integer in [lowerBound, upperBound],
// inclusive on both ends.
func RandomInRange(rand io.Reader, lowerBound, upperBound *big.Int) (*big.Int, error) {
	if rand == nil {
		rand = cryptorand.Reader
	}

	width := new(big.Int).Sub(upperBound, lowerBound)
	width.Add(width, one)
	if width.Sign() <= 0 {
		return nil, errors.New("sample: empty range")
	}

	n, err := cryptorand.Int(rand, width)
	if err != nil {
		return nil, errors.WithMessage(err, "sample: failed to read random number")
	}

	return n.Add(n, lowerBound), nil
}

// RandomBits returns a uniform random integer below 2ᵇⁱᵗˢ.
func RandomBits(rand io.Reader, bits int) (*big.Int, error) {
	if rand == nil {
		rand = cryptorand.Reader
	}

	bound := new(big.Int).Lsh(one, uint(bits))
	n, err := cryptorand.Int(rand, bound)
	if err != nil {
		return nil, errors.WithMessage(err, "sample: failed to read random bits")
	}

	return n, nil
}

// RandomBigInt returns a random integer of exactly the given bit length: the
// top bit is forced so the result never comes up short.
func RandomBigInt(rand io.Reader, bits int) (*big.Int, error) {
	if bits < 1 {
		return nil, errors.New("sample: bit length must be positive")
	}

	n, err := RandomBits(rand, bits-1)
	if err != nil {
		return nil, err
	}

	return n.SetBit(n, bits-1, 1), nil
}
