package elgamal

import (
	"bytes"
	"io"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// Ciphertext is the (c, c1) pair of a numeric encryption: C is the plaintext
// masked by the shared secret, EphemeralKey is the generator power g^r the
// recipient needs to recompute that secret.
type Ciphertext struct {
	// C = m ⋅ publicKey^r (mod modulo)
	C *big.Int
	// EphemeralKey = generator^r (mod modulo)
	EphemeralKey *big.Int
}

// Valid returns true if the ciphertext passes basic validation.
func (c *Ciphertext) Valid() bool {
	if c == nil || c.C == nil || c.EphemeralKey == nil {
		return false
	}
	if c.C.Sign() < 0 || c.EphemeralKey.Sign() < 0 {
		return false
	}
	return true
}

type ciphertextSerialized struct {
	C            []byte
	EphemeralKey []byte
}

func (c *Ciphertext) MarshalBinary() ([]byte, error) {
	if !c.Valid() {
		return nil, ErrInvalidCiphertext
	}
	return cbor.Marshal(ciphertextSerialized{
		C:            c.C.Bytes(),
		EphemeralKey: c.EphemeralKey.Bytes(),
	})
}

func (c *Ciphertext) UnmarshalBinary(data []byte) error {
	var cs ciphertextSerialized
	if err := cbor.Unmarshal(data, &cs); err != nil {
		return errors.WithMessage(err, "elgamal: unmarshal ciphertext")
	}
	c.C = new(big.Int).SetBytes(cs.C)
	c.EphemeralKey = new(big.Int).SetBytes(cs.EphemeralKey)
	return nil
}

func (c *Ciphertext) WriteTo(w io.Writer) (int64, error) {
	buf, err := c.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := bytes.NewReader(buf).WriteTo(w)
	return n, err
}
