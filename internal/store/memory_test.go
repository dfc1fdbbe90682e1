package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulmaulana/FHETalk-sub001/models"
)

func testSignature() *models.DecryptionSignature {
	return &models.DecryptionSignature{
		PrivateKey:        "0x01",
		PublicKey:         "0x02",
		Signature:         "0x03",
		ContractAddresses: []string{"0xAA", "0xBB"},
		UserAddress:       "0xCC",
		StartTimestamp:    time.Now().Unix(),
		DurationDays:      7,
	}
}

func TestMemorySignatureStore_SetGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySignatureStore()

	assert.Nil(t, s.Get(ctx, "missing"))

	sig := testSignature()
	s.Set(ctx, "k", sig)

	got := s.Get(ctx, "k")
	require.NotNil(t, got)
	assert.Equal(t, *sig, *got)
}

func TestMemorySignatureStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySignatureStore()
	s.Set(ctx, "k", testSignature())

	first := s.Get(ctx, "k")
	first.ContractAddresses[0] = "mutated"
	first.PrivateKey = "mutated"

	second := s.Get(ctx, "k")
	assert.Equal(t, "0xAA", second.ContractAddresses[0])
	assert.Equal(t, "0x01", second.PrivateKey)
}

func TestMemorySignatureStore_RemoveClear(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySignatureStore()

	s.Set(ctx, "a", testSignature())
	s.Set(ctx, "b", testSignature())

	s.Remove(ctx, "a")
	assert.Nil(t, s.Get(ctx, "a"))
	assert.NotNil(t, s.Get(ctx, "b"))

	s.Clear(ctx)
	assert.Nil(t, s.Get(ctx, "b"))
	assert.Empty(t, s.Keys(ctx))
}

func TestMemorySignatureStore_Keys(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySignatureStore()

	s.Set(ctx, "a", testSignature())
	s.Set(ctx, "b", testSignature())

	assert.ElementsMatch(t, []string{"a", "b"}, s.Keys(ctx))
}

func TestMemorySignatureStore_SetNil(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySignatureStore()

	s.Set(ctx, "k", nil)
	assert.Nil(t, s.Get(ctx, "k"))
}
