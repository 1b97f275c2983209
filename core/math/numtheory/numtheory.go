// Package numtheory implements the number-theoretic primitives the ElGamal
// engine is built on: euclidean algorithms, integer square roots, modular
// exponentiation and inversion, probabilistic primality testing, prime sieves
// and searches, trial-division factorization and primitive-root construction.
//
// All functions operate on *big.Int values, never mutate their arguments and
// are safe for concurrent use. None of them are constant-time.
package numtheory

import (
	"errors"
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// ErrNoInverse is returned when a modular inverse is requested for a pair of
// numbers that are not coprime.
var ErrNoInverse = errors.New("numtheory: no multiplicative inverse exists")
