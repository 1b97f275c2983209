// Package vault provides the raw byte storage underneath the keystore.
package vault

import "errors"

var ErrKeyNotFound = errors.New("vault: key not found")

// Vault stores opaque byte records by ID.
type Vault interface {
	Store(id string, record []byte) error
	Load(id string) ([]byte, error)
	Delete(id string) error
	IDs() []string
}
