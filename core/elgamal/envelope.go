package elgamal

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/mr-shifu/elgamal-lib/core/math/numtheory"
	"github.com/mr-shifu/elgamal-lib/core/math/sample"
)

// Envelope is the wire format of a byte-payload ciphertext: the plaintext
// length, the concatenated ciphertext blocks and the ephemeral key value,
// both base64-encoded. Integers inside are fixed-width little-endian of the
// group's byte length.
type Envelope struct {
	Length int    `json:"length"`
	Cipher string `json:"cipher"`
	Key    string `json:"key"`
}

// EncryptBytes encrypts an arbitrary byte payload under the counterparty's
// public key and returns the JSON envelope. One shared key masks the whole
// message: data is split into blocks of ByteLen-1 bytes (so each block value
// stays below the modulus, the last block implicitly zero-padded), each block
// is multiplied by the shared key and serialized as ByteLen bytes.
//
// With usePrivateKey the sender's own private exponent replaces the fresh
// random one, making the ephemeral key the sender's public key.
func EncryptBytes(rand io.Reader, group *Group, keys *KeyPair, publicKey *big.Int, data []byte, usePrivateKey bool) (string, error) {
	if group == nil || group.Modulo == nil || group.Order == nil || group.Generator == nil {
		return "", ErrNotGenerated
	}
	if publicKey == nil {
		return "", ErrNotGenerated
	}
	if group.ByteLen < 2 {
		return "", errors.New("elgamal: group modulus too small for block encryption")
	}

	var keyExponent *big.Int
	if usePrivateKey {
		if keys == nil || keys.privateKey == nil {
			return "", ErrNotGenerated
		}
		keyExponent = keys.privateKey
	} else {
		minKey := new(big.Int).Div(group.Order, eight)
		maxKey := new(big.Int).Sub(group.Order, one)
		maxKey.Sub(maxKey, minKey)

		var err error
		keyExponent, err = sample.RandomInRange(rand, minKey, maxKey)
		if err != nil {
			return "", err
		}
	}

	key := numtheory.ModularExponentiation(group.Generator, keyExponent, group.Modulo)
	sharedKey := numtheory.ModularExponentiation(publicKey, keyExponent, group.Modulo)

	cipher := make([]byte, 0, (len(data)/(group.ByteLen-1)+1)*group.ByteLen)
	c := new(big.Int)
	for _, block := range dataSlices(data, group.ByteLen-1) {
		c.Mul(littleEndianToInt(block), sharedKey)
		c.Mod(c, group.Modulo)

		buf, err := intToLittleEndian(c, group.ByteLen)
		if err != nil {
			return "", err
		}
		cipher = append(cipher, buf...)
	}

	keyBytes, err := intToLittleEndian(key, group.ByteLen)
	if err != nil {
		return "", err
	}

	envelope, err := json.Marshal(Envelope{
		Length: len(data),
		Cipher: base64.StdEncoding.EncodeToString(cipher),
		Key:    base64.StdEncoding.EncodeToString(keyBytes),
	})
	if err != nil {
		return "", errors.WithMessage(err, "elgamal: encode envelope")
	}

	return string(envelope), nil
}

// DecryptBytes reverses EncryptBytes: it recomputes the shared key from the
// envelope's ephemeral key and the recipient's private key, divides every
// ciphertext block by it and truncates the reassembled stream to the declared
// plaintext length. The declared length, not the block boundary, decides
// where the zero padding of the last block ends.
func DecryptBytes(group *Group, keys *KeyPair, envelopeJSON string) ([]byte, error) {
	if group == nil || group.Modulo == nil {
		return nil, ErrNotGenerated
	}
	if keys == nil || keys.privateKey == nil {
		return nil, ErrNotGenerated
	}
	if !bytes.Equal(keys.groupFingerprint, group.Fingerprint()) {
		return nil, ErrGroupMismatch
	}

	var envelope Envelope
	if err := json.Unmarshal([]byte(envelopeJSON), &envelope); err != nil {
		return nil, errors.Wrapf(ErrMalformedEnvelope, "decode json: %v", err)
	}
	if envelope.Length < 0 {
		return nil, errors.Wrap(ErrMalformedEnvelope, "negative plaintext length")
	}

	keyBytes, err := base64.StdEncoding.DecodeString(envelope.Key)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedEnvelope, "decode key: %v", err)
	}
	cipher, err := base64.StdEncoding.DecodeString(envelope.Cipher)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedEnvelope, "decode cipher: %v", err)
	}
	if len(cipher)%group.ByteLen != 0 {
		return nil, errors.Wrapf(ErrMalformedEnvelope, "cipher length %d is not a multiple of the block width %d", len(cipher), group.ByteLen)
	}

	sharedKey := numtheory.ModularExponentiation(littleEndianToInt(keyBytes), keys.privateKey, group.Modulo)
	sharedKeyInverse, err := numtheory.MultiplicativeInverse(sharedKey, group.Modulo)
	if err != nil {
		return nil, errors.WithMessage(err, "elgamal: shared secret is not invertible")
	}

	data := make([]byte, 0, len(cipher))
	m := new(big.Int)
	for _, block := range dataSlices(cipher, group.ByteLen) {
		m.Mul(littleEndianToInt(block), sharedKeyInverse)
		m.Mod(m, group.Modulo)

		buf, err := intToLittleEndian(m, group.ByteLen-1)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedEnvelope, "block value out of range: %v", err)
		}
		data = append(data, buf...)
	}

	if envelope.Length > len(data) {
		return nil, errors.Wrapf(ErrMalformedEnvelope, "declared length %d exceeds decrypted data %d", envelope.Length, len(data))
	}

	return data[:envelope.Length], nil
}
