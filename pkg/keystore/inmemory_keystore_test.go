package keystore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr-shifu/elgamal-lib/core/elgamal"
	"github.com/mr-shifu/elgamal-lib/pkg/keystore"
	"github.com/mr-shifu/elgamal-lib/pkg/vault"
)

func TestInMemoryKeystore(t *testing.T) {
	group, err := elgamal.GenerateSafeGroup(context.Background(), nil, 64)
	require.NoError(t, err)
	keys, err := elgamal.GenerateKeys(nil, group)
	require.NoError(t, err)

	ks := keystore.NewInMemoryKeystore(vault.NewInMemoryVault())

	id, err := ks.Import(keys)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	restored, err := ks.Get(id)
	require.NoError(t, err)
	assert.Zero(t, keys.PublicKey().Cmp(restored.PublicKey()))
	assert.Equal(t, keys.SKI(), restored.SKI())

	assert.Equal(t, []string{id}, ks.List())

	require.NoError(t, ks.Delete(id))
	_, err = ks.Get(id)
	assert.ErrorIs(t, err, vault.ErrKeyNotFound)
	assert.Empty(t, ks.List())
}

func TestInMemoryKeystoreDistinctIDs(t *testing.T) {
	group, err := elgamal.GenerateSafeGroup(context.Background(), nil, 64)
	require.NoError(t, err)
	keys, err := elgamal.GenerateKeys(nil, group)
	require.NoError(t, err)

	ks := keystore.NewInMemoryKeystore(vault.NewInMemoryVault())

	a, err := ks.Import(keys)
	require.NoError(t, err)
	b, err := ks.Import(keys)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Len(t, ks.List(), 2)
}

func TestInMemoryKeystoreMissing(t *testing.T) {
	ks := keystore.NewInMemoryKeystore(vault.NewInMemoryVault())
	_, err := ks.Get("no-such-id")
	assert.ErrorIs(t, err, vault.ErrKeyNotFound)
}
