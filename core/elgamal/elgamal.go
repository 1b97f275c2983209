package elgamal

import (
	"bytes"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/mr-shifu/elgamal-lib/core/math/numtheory"
	"github.com/mr-shifu/elgamal-lib/core/math/sample"
)

// Encrypt encrypts the number m under the counterparty's public key: a fresh
// ephemeral exponent r gives c1 = g^r and the shared secret s = publicKey^r,
// and the ciphertext value is m⋅s mod modulo.
func Encrypt(rand io.Reader, group *Group, publicKey, m *big.Int) (*Ciphertext, error) {
	if group == nil || group.Modulo == nil || group.Generator == nil {
		return nil, ErrNotGenerated
	}
	if publicKey == nil {
		return nil, ErrNotGenerated
	}

	r, err := sample.RandomInRange(rand, new(big.Int), new(big.Int).Sub(group.Modulo, one))
	if err != nil {
		return nil, err
	}

	ephemeralKey := numtheory.ModularExponentiation(group.Generator, r, group.Modulo)
	sharedKey := numtheory.ModularExponentiation(publicKey, r, group.Modulo)

	c := new(big.Int).Mul(m, sharedKey)
	c.Mod(c, group.Modulo)

	return &Ciphertext{C: c, EphemeralKey: ephemeralKey}, nil
}

// Decrypt recovers the number from a ciphertext: the shared secret is
// recomputed as EphemeralKey^privateKey and divided out. The key pair must
// belong to the given group.
func Decrypt(group *Group, keys *KeyPair, ct *Ciphertext) (*big.Int, error) {
	if group == nil || group.Modulo == nil {
		return nil, ErrNotGenerated
	}
	if keys == nil || keys.privateKey == nil {
		return nil, ErrNotGenerated
	}
	if !ct.Valid() {
		return nil, ErrInvalidCiphertext
	}
	if !bytes.Equal(keys.groupFingerprint, group.Fingerprint()) {
		return nil, ErrGroupMismatch
	}

	sharedKey := numtheory.ModularExponentiation(ct.EphemeralKey, keys.privateKey, group.Modulo)
	sharedKeyInverse, err := numtheory.MultiplicativeInverse(sharedKey, group.Modulo)
	if err != nil {
		return nil, errors.WithMessage(err, "elgamal: shared secret is not invertible")
	}

	m := new(big.Int).Mul(ct.C, sharedKeyInverse)
	m.Mod(m, group.Modulo)
	return m, nil
}
