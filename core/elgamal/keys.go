package elgamal

import (
	"io"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"github.com/zeebo/blake3"

	"github.com/mr-shifu/elgamal-lib/core/math/numtheory"
	"github.com/mr-shifu/elgamal-lib/core/math/sample"
)

// KeyPair holds one party's keys under a specific group. The private key is
// drawn away from the edges of [0, order) and the inverse of the public key
// is cached for the decryption paths that need it. A key pair is never valid
// under a different group; the group fingerprint enforces that.
type KeyPair struct {
	privateKey       *big.Int
	publicKey        *big.Int
	publicKeyInverse *big.Int
	groupFingerprint []byte
}

// GenerateKeys derives a fresh key pair from the group. The private exponent
// is uniform in [order/8, order - 1 - order/8], avoiding the small and
// near-order exponents.
func GenerateKeys(rand io.Reader, group *Group) (*KeyPair, error) {
	if group == nil || group.Modulo == nil || group.Order == nil || group.Generator == nil {
		return nil, ErrNotGenerated
	}

	minKey := new(big.Int).Div(group.Order, eight)
	maxKey := new(big.Int).Sub(group.Order, one)
	maxKey.Sub(maxKey, minKey)

	privateKey, err := sample.RandomInRange(rand, minKey, maxKey)
	if err != nil {
		return nil, err
	}

	publicKey := numtheory.ModularExponentiation(group.Generator, privateKey, group.Modulo)

	// A pathological group (a zero generator from the plain cyclic mode)
	// makes the public key non-invertible; surface that instead of caching
	// garbage.
	publicKeyInverse, err := numtheory.MultiplicativeInverse(publicKey, group.Modulo)
	if err != nil {
		return nil, errors.WithMessage(err, "elgamal: public key is not invertible")
	}

	return &KeyPair{
		privateKey:       privateKey,
		publicKey:        publicKey,
		publicKeyInverse: publicKeyInverse,
		groupFingerprint: group.Fingerprint(),
	}, nil
}

// PublicKey returns the public key g^privateKey mod modulo. Transporting it to
// the counterparty is the caller's concern.
func (k *KeyPair) PublicKey() *big.Int {
	return k.publicKey
}

// PublicKeyInverse returns the cached publicKey⁻¹ mod modulo.
func (k *KeyPair) PublicKeyInverse() *big.Int {
	return k.publicKeyInverse
}

// SKI returns a subject key identifier: the blake3 digest of the public key.
func (k *KeyPair) SKI() []byte {
	h := blake3.New()
	_, _ = h.WriteString("elgamal-key")
	_, _ = h.Write(k.publicKey.Bytes())
	return h.Sum(nil)
}

type keyPairSerialized struct {
	PrivateKey       []byte
	PublicKey        []byte
	PublicKeyInverse []byte
	GroupFingerprint []byte
}

// Bytes serializes the key pair for storage in a keystore.
func (k *KeyPair) Bytes() ([]byte, error) {
	if k == nil || k.privateKey == nil || k.publicKey == nil {
		return nil, ErrNotGenerated
	}

	return cbor.Marshal(keyPairSerialized{
		PrivateKey:       k.privateKey.Bytes(),
		PublicKey:        k.publicKey.Bytes(),
		PublicKeyInverse: k.publicKeyInverse.Bytes(),
		GroupFingerprint: k.groupFingerprint,
	})
}

// KeyPairFromBytes decodes a key pair produced by Bytes.
func KeyPairFromBytes(data []byte) (*KeyPair, error) {
	var ks keyPairSerialized
	if err := cbor.Unmarshal(data, &ks); err != nil {
		return nil, errors.WithMessage(err, "elgamal: deserialize key pair")
	}

	return &KeyPair{
		privateKey:       new(big.Int).SetBytes(ks.PrivateKey),
		publicKey:        new(big.Int).SetBytes(ks.PublicKey),
		publicKeyInverse: new(big.Int).SetBytes(ks.PublicKeyInverse),
		groupFingerprint: ks.GroupFingerprint,
	}, nil
}
