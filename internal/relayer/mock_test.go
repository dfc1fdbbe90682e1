// SPDX-License-Identifier: Apache-2.0

package relayer

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulmaulana/FHETalk-sub001/internal/fhevm"
)

const (
	testContract = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	testUser     = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

func TestRegistry_EncryptLookup(t *testing.T) {
	r := NewRegistry()

	handles, proof := r.Encrypt(testContract, testUser, []uint64{42, 7})
	require.Len(t, handles, 2)
	assert.NotEmpty(t, proof)
	assert.NotEqual(t, handles[0], handles[1])

	value, ok := r.Lookup(handles[0])
	require.True(t, ok)
	assert.Equal(t, uint64(42), value)

	value, ok = r.Lookup(handles[1])
	require.True(t, ok)
	assert.Equal(t, uint64(7), value)

	_, ok = r.Lookup("0xdeadbeef")
	assert.False(t, ok)
}

func TestRegistry_SameValueDistinctHandles(t *testing.T) {
	r := NewRegistry()

	first, _ := r.Encrypt(testContract, testUser, []uint64{42})
	second, _ := r.Encrypt(testContract, testUser, []uint64{42})

	assert.NotEqual(t, first[0], second[0])
}

func TestMockInstance_EncryptRoundTrip(t *testing.T) {
	ctx := context.Background()
	inst := NewMockInstance(31337)

	builder, err := inst.CreateEncryptedInput(testContract, testUser)
	require.NoError(t, err)

	result, err := builder.Add32(42).Encrypt(ctx)
	require.NoError(t, err)
	require.Len(t, result.Handles, 1)
	assert.NotEmpty(t, result.InputProof)

	handle := hexutil.Encode(result.Handles[0])

	decrypted, err := inst.PublicDecrypt(ctx, []string{handle})
	require.NoError(t, err)

	wrapped, ok := decrypted.(map[string]any)
	require.True(t, ok)
	clearValues, ok := wrapped["clearValues"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, uint64(42), clearValues[handle])
}

func TestMockInstance_UserDecrypt(t *testing.T) {
	ctx := context.Background()
	inst := NewMockInstance(31337)

	handles, _ := inst.Registry().Encrypt(testContract, testUser, []uint64{99})

	result, err := inst.UserDecrypt(ctx, fhevm.UserDecryptRequest{
		Pairs:       []fhevm.HandleContractPair{{Handle: handles[0], ContractAddress: testContract}},
		PublicKey:   "0x01",
		Signature:   "0x02",
		UserAddress: testUser,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(99), result[handles[0]])
}

func TestMockInstance_UserDecryptRequiresCredential(t *testing.T) {
	inst := NewMockInstance(31337)

	_, err := inst.UserDecrypt(context.Background(), fhevm.UserDecryptRequest{
		Pairs: []fhevm.HandleContractPair{{Handle: "0x01", ContractAddress: testContract}},
	})
	assert.ErrorIs(t, err, ErrRelayerRejected)
}

func TestMockInstance_UnknownHandle(t *testing.T) {
	inst := NewMockInstance(31337)

	_, err := inst.PublicDecrypt(context.Background(), []string{"0xdeadbeef"})
	assert.ErrorIs(t, err, ErrUnknownHandle)
}

func TestMockInstance_EmptyInput(t *testing.T) {
	inst := NewMockInstance(31337)

	builder, err := inst.CreateEncryptedInput(testContract, testUser)
	require.NoError(t, err)

	_, err = builder.Encrypt(context.Background())
	assert.ErrorIs(t, err, ErrRelayerRejected)
}

func TestMockInstance_PublicKeyStable(t *testing.T) {
	first := NewMockInstance(31337)
	second := NewMockInstance(31337)
	other := NewMockInstance(1337)

	assert.NotEmpty(t, first.PublicKey())
	assert.Equal(t, first.PublicKey(), second.PublicKey())
	assert.NotEqual(t, first.PublicKey(), other.PublicKey())
}

func TestGenerateKeypair_Distinct(t *testing.T) {
	first, err := generateKeypair()
	require.NoError(t, err)
	second, err := generateKeypair()
	require.NoError(t, err)

	assert.NotEmpty(t, first.PublicKey)
	assert.NotEmpty(t, first.PrivateKey)
	assert.NotEqual(t, first.PrivateKey, second.PrivateKey)
	assert.NotEqual(t, first.PublicKey, second.PublicKey)
}
