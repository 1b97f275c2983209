// Package keystore stores serialized ElGamal key pairs under generated IDs.
package keystore

import (
	"github.com/google/uuid"

	"github.com/mr-shifu/elgamal-lib/core/elgamal"
	"github.com/mr-shifu/elgamal-lib/pkg/vault"
)

type InMemoryKeystore struct {
	vault vault.Vault
}

func NewInMemoryKeystore(v vault.Vault) *InMemoryKeystore {
	return &InMemoryKeystore{vault: v}
}

// Import serializes the key pair into the vault and returns its new key ID.
func (ks *InMemoryKeystore) Import(keys *elgamal.KeyPair) (string, error) {
	record, err := keys.Bytes()
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	if err := ks.vault.Store(id, record); err != nil {
		return "", err
	}
	return id, nil
}

func (ks *InMemoryKeystore) Get(id string) (*elgamal.KeyPair, error) {
	record, err := ks.vault.Load(id)
	if err != nil {
		return nil, err
	}
	return elgamal.KeyPairFromBytes(record)
}

func (ks *InMemoryKeystore) Delete(id string) error {
	return ks.vault.Delete(id)
}

func (ks *InMemoryKeystore) List() []string {
	return ks.vault.IDs()
}
