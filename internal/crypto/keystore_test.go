// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKeystore(t *testing.T) WalletKeystore {
	t.Helper()
	return NewFileKeystore(filepath.Join(t.TempDir(), "keystore.json"))
}

func TestFileKeystore_CreateUnlockRoundTrip(t *testing.T) {
	ks := newTestKeystore(t)

	assert.False(t, ks.Exists())

	created, err := ks.Create("correct horse battery staple")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, ks.Exists())

	unlocked, err := ks.Unlock("correct horse battery staple")
	require.NoError(t, err)
	assert.Equal(t, created.Address(), unlocked.Address())
}

func TestFileKeystore_WrongPassword(t *testing.T) {
	ks := newTestKeystore(t)

	_, err := ks.Create("right")
	require.NoError(t, err)

	_, err = ks.Unlock("wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestFileKeystore_CreateTwice(t *testing.T) {
	ks := newTestKeystore(t)

	_, err := ks.Create("pass")
	require.NoError(t, err)

	_, err = ks.Create("pass")
	assert.ErrorIs(t, err, ErrKeystoreExists)
}

func TestFileKeystore_UnlockMissing(t *testing.T) {
	ks := newTestKeystore(t)

	_, err := ks.Unlock("pass")
	assert.ErrorIs(t, err, ErrKeystoreNotFound)
}

func TestFileKeystore_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keystore.json")
	ks := NewFileKeystore(path)

	_, err := ks.Create("pass")
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileKeystore_CorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keystore.json")
	require.NoError(t, os.WriteFile(path, []byte("{ not json"), 0o600))

	_, err := NewFileKeystore(path).Unlock("pass")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeystoreNotFound)
}
