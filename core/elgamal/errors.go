package elgamal

import "errors"

var (
	// ErrNotGenerated signals use of a group or key pair before generation.
	ErrNotGenerated = errors.New("elgamal: group or keys have not been generated")
	// ErrGroupMismatch signals a key pair or ciphertext used under a group it
	// does not belong to.
	ErrGroupMismatch = errors.New("elgamal: key pair belongs to a different group")
	// ErrInvalidCiphertext signals a ciphertext with missing or out-of-range parts.
	ErrInvalidCiphertext = errors.New("elgamal: invalid ciphertext")
	// ErrMalformedEnvelope signals a ciphertext envelope that cannot be decoded.
	ErrMalformedEnvelope = errors.New("elgamal: malformed ciphertext envelope")
)
