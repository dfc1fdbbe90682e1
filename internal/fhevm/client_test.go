// SPDX-License-Identifier: Apache-2.0

package fhevm

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulmaulana/FHETalk-sub001/models"
)

// stubInstance is a well-formed mock capability: handles are derived
// deterministically from the added values, and both decrypt paths resolve
// them back through an in-memory registry.
type stubInstance struct {
	mu     sync.Mutex
	values map[string]uint64
}

func newStubInstance() *stubInstance {
	return &stubInstance{values: make(map[string]uint64)}
}

func (s *stubInstance) CreateEncryptedInput(contractAddress, userAddress string) (EncryptedInputBuilder, error) {
	return &stubBuilder{inst: s}, nil
}

func (s *stubInstance) PublicDecrypt(_ context.Context, handles []string) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]any, len(handles))
	for _, h := range handles {
		v, ok := s.values[h]
		if !ok {
			return nil, fmt.Errorf("unknown handle %s", h)
		}
		out[h] = float64(v)
	}
	return out, nil
}

func (s *stubInstance) UserDecrypt(_ context.Context, req UserDecryptRequest) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]any, len(req.Pairs))
	for _, p := range req.Pairs {
		v, ok := s.values[p.Handle]
		if !ok {
			return nil, fmt.Errorf("unknown handle %s", p.Handle)
		}
		out[p.Handle] = v
	}
	return out, nil
}

func (s *stubInstance) GenerateKeypair() (models.Keypair, error) {
	return models.Keypair{PublicKey: "0x01", PrivateKey: "0x02"}, nil
}

func (s *stubInstance) PublicKey() string { return "0xfeed" }

type stubBuilder struct {
	inst   *stubInstance
	values []uint32
}

func (b *stubBuilder) Add32(value uint32) EncryptedInputBuilder {
	b.values = append(b.values, value)
	return b
}

func (b *stubBuilder) Encrypt(context.Context) (EncryptedInputResult, error) {
	result := EncryptedInputResult{InputProof: []byte{0xab, 0xcd}}

	b.inst.mu.Lock()
	defer b.inst.mu.Unlock()
	for i, v := range b.values {
		handle := make([]byte, 32)
		binary.BigEndian.PutUint32(handle[0:], v)
		handle[31] = byte(i)
		result.Handles = append(result.Handles, handle)

		b.inst.values[hexEncode(handle)] = uint64(v)
	}
	return result, nil
}

func hexEncode(b []byte) string {
	const digits = "0123456789abcdef"
	out := make([]byte, 0, 2+2*len(b))
	out = append(out, '0', 'x')
	for _, c := range b {
		out = append(out, digits[c>>4], digits[c&0xf])
	}
	return string(out)
}

func staticFactory(inst Instance) InstanceFactory {
	return InstanceFactoryFunc(func(context.Context, InstanceConfig) (Instance, error) {
		return inst, nil
	})
}

func failingFactory(err error) InstanceFactory {
	return InstanceFactoryFunc(func(context.Context, InstanceConfig) (Instance, error) {
		return nil, err
	})
}

func testConfig() Config {
	return Config{RPCURL: "http://localhost:8545", ChainID: 31337}
}

func TestClient_Initialize_Succeeds(t *testing.T) {
	client := NewClient(testConfig(), staticFactory(newStubInstance()), Events{}, nil)

	require.NoError(t, client.Initialize(context.Background()))

	state := client.State()
	assert.Equal(t, StatusReady, state.Status)
	assert.True(t, state.Initialized)
	assert.NotNil(t, state.Instance)
	assert.Nil(t, state.Err)
}

func TestClient_Initialize_FactoryError(t *testing.T) {
	client := NewClient(testConfig(), failingFactory(errors.New("network error")), Events{}, nil)

	err := client.Initialize(context.Background())
	require.Error(t, err)

	state := client.State()
	assert.Equal(t, StatusError, state.Status)
	assert.False(t, state.Initialized)
	require.Error(t, state.Err)
	assert.Contains(t, state.Err.Error(), "network error")
}

func TestClient_Initialize_Idempotent(t *testing.T) {
	var creations atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	factory := InstanceFactoryFunc(func(context.Context, InstanceConfig) (Instance, error) {
		if creations.Add(1) == 1 {
			close(started)
			<-release
		}
		return newStubInstance(), nil
	})

	client := NewClient(testConfig(), factory, Events{}, nil)

	done := make(chan error, 1)
	go func() { done <- client.Initialize(context.Background()) }()

	<-started
	// Concurrent calls while loading must be no-ops.
	require.NoError(t, client.Initialize(context.Background()))
	require.NoError(t, client.Initialize(context.Background()))

	close(release)
	require.NoError(t, <-done)

	// And again once ready.
	require.NoError(t, client.Initialize(context.Background()))
	assert.Equal(t, int32(1), creations.Load())
}

func TestClient_EncryptDecrypt_BeforeInitialize(t *testing.T) {
	client := NewClient(testConfig(), staticFactory(newStubInstance()), Events{}, nil)

	_, err := client.Encrypt(context.Background(), models.EncryptRequest{Value: 1, ContractAddress: "0x1"})
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = client.Decrypt(context.Background(), models.DecryptRequest{Handle: "0x1", UsePublicDecrypt: true})
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestClient_Encrypt_RequiresContractAddress(t *testing.T) {
	client := readyClient(t, newStubInstance())

	_, err := client.Encrypt(context.Background(), models.EncryptRequest{Value: 1})
	assert.ErrorIs(t, err, ErrEncryptionFailed)
}

func TestClient_Encrypt_WrapsBuilderFailure(t *testing.T) {
	cause := errors.New("relayer unavailable")
	inst := &erroringInstance{err: cause}
	client := readyClient(t, inst)

	_, err := client.Encrypt(context.Background(), models.EncryptRequest{Value: 1, ContractAddress: "0x1"})
	require.ErrorIs(t, err, ErrEncryptionFailed)
	assert.ErrorIs(t, err, cause)
}

func TestClient_Decrypt_RequiresCredentialOrPublic(t *testing.T) {
	client := readyClient(t, newStubInstance())

	_, err := client.Decrypt(context.Background(), models.DecryptRequest{Handle: "0x1", ContractAddress: "0x2"})
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestClient_Decrypt_RejectsBareSignatureString(t *testing.T) {
	client := readyClient(t, newStubInstance())

	// A credential carrying only the signature string has no key material:
	// the user-decrypt request cannot be rebuilt from it.
	_, err := client.Decrypt(context.Background(), models.DecryptRequest{
		Handle:          "0x1",
		ContractAddress: "0x2",
		Signature:       &models.DecryptionSignature{Signature: "0xsigned"},
	})
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestClient_RoundTrip(t *testing.T) {
	inst := newStubInstance()
	client := readyClient(t, inst)

	encrypted, err := client.Encrypt(context.Background(), models.EncryptRequest{
		Value:           42,
		ContractAddress: "0x000000000000000000000000000000000000dEaD",
		UserAddress:     "0x000000000000000000000000000000000000bEEF",
	})
	require.NoError(t, err)
	assert.True(t, len(encrypted.Handle) > 2 && encrypted.Handle[:2] == "0x")
	assert.True(t, len(encrypted.Proof) > 2 && encrypted.Proof[:2] == "0x")

	value, err := client.Decrypt(context.Background(), models.DecryptRequest{
		Handle:           encrypted.Handle,
		UsePublicDecrypt: true,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(42), value)
}

func TestClient_Decrypt_UserDecryptPath(t *testing.T) {
	inst := newStubInstance()
	client := readyClient(t, inst)

	encrypted, err := client.Encrypt(context.Background(), models.EncryptRequest{Value: 7, ContractAddress: "0x1"})
	require.NoError(t, err)

	value, err := client.Decrypt(context.Background(), models.DecryptRequest{
		Handle:          encrypted.Handle,
		ContractAddress: "0x1",
		Signature: &models.DecryptionSignature{
			PrivateKey:        "0x01",
			PublicKey:         "0x02",
			Signature:         "0x03",
			ContractAddresses: []string{"0x1"},
			UserAddress:       "0x04",
			StartTimestamp:    time.Now().Unix(),
			DurationDays:      7,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), value)
}

func TestClient_Destroy_ResetsState(t *testing.T) {
	client := readyClient(t, newStubInstance())

	client.Destroy()

	state := client.State()
	assert.Equal(t, StatusIdle, state.Status)
	assert.Nil(t, state.Instance)
	assert.Nil(t, state.Err)
	assert.False(t, state.Initialized)

	// Idempotent.
	client.Destroy()
	assert.Equal(t, StatusIdle, client.State().Status)
}

func TestClient_Destroy_CancelsInFlightInitialize(t *testing.T) {
	started := make(chan struct{})

	factory := InstanceFactoryFunc(func(ctx context.Context, _ InstanceConfig) (Instance, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	})

	var errorEvents atomic.Int32
	client := NewClient(testConfig(), factory, Events{
		OnError: func(error) { errorEvents.Add(1) },
	}, nil)

	done := make(chan error, 1)
	go func() { done <- client.Initialize(context.Background()) }()

	<-started
	client.Destroy()

	err := <-done
	require.ErrorIs(t, err, ErrAborted)

	// The aborted initialization must not overwrite the reset state.
	assert.Equal(t, StatusIdle, client.State().Status)
	assert.Equal(t, int32(0), errorEvents.Load())
}

func TestClient_Refresh_SingleSettleCallback(t *testing.T) {
	var mu sync.Mutex
	var readyCount, errorCount int

	blockFirst := make(chan struct{})
	firstStarted := make(chan struct{})
	var calls atomic.Int32

	factory := InstanceFactoryFunc(func(ctx context.Context, _ InstanceConfig) (Instance, error) {
		if calls.Add(1) == 1 {
			close(firstStarted)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-blockFirst:
			}
		}
		return newStubInstance(), nil
	})

	client := NewClient(testConfig(), factory, Events{
		OnReady: func() {
			mu.Lock()
			readyCount++
			mu.Unlock()
		},
		OnError: func(error) {
			mu.Lock()
			errorCount++
			mu.Unlock()
		},
	}, nil)

	go func() { _ = client.Initialize(context.Background()) }()
	<-firstStarted

	require.NoError(t, client.Refresh(context.Background()))
	close(blockFirst)

	// Give the superseded initialization a moment to unwind; it must not
	// produce a second callback.
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, readyCount)
	assert.Equal(t, 0, errorCount)
}

func TestClient_Refresh_AfterError(t *testing.T) {
	var attempts atomic.Int32
	factory := InstanceFactoryFunc(func(context.Context, InstanceConfig) (Instance, error) {
		if attempts.Add(1) == 1 {
			return nil, errors.New("network error")
		}
		return newStubInstance(), nil
	})

	client := NewClient(testConfig(), factory, Events{}, nil)

	require.Error(t, client.Initialize(context.Background()))
	require.Equal(t, StatusError, client.State().Status)

	require.NoError(t, client.Refresh(context.Background()))
	assert.Equal(t, StatusReady, client.State().Status)
}

func TestClient_Events_StatusSequence(t *testing.T) {
	var mu sync.Mutex
	var statuses []Status

	client := NewClient(testConfig(), staticFactory(newStubInstance()), Events{
		OnStatusChange: func(s Status) {
			mu.Lock()
			statuses = append(statuses, s)
			mu.Unlock()
		},
	}, nil)

	require.NoError(t, client.Initialize(context.Background()))
	client.Destroy()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []Status{StatusLoading, StatusReady, StatusIdle}, statuses)
}

func TestClient_Initialize_CallerCancellation(t *testing.T) {
	factory := InstanceFactoryFunc(func(ctx context.Context, _ InstanceConfig) (Instance, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	client := NewClient(testConfig(), factory, Events{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- client.Initialize(ctx) }()

	cancel()
	err := <-done
	require.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, StatusError, client.State().Status)
}

// erroringInstance fails every capability call with a fixed error.
type erroringInstance struct {
	err error
}

func (e *erroringInstance) CreateEncryptedInput(string, string) (EncryptedInputBuilder, error) {
	return nil, e.err
}

func (e *erroringInstance) PublicDecrypt(context.Context, []string) (any, error) {
	return nil, e.err
}

func (e *erroringInstance) UserDecrypt(context.Context, UserDecryptRequest) (map[string]any, error) {
	return nil, e.err
}

func (e *erroringInstance) GenerateKeypair() (models.Keypair, error) {
	return models.Keypair{}, e.err
}

func (e *erroringInstance) PublicKey() string { return "" }

func readyClient(t *testing.T, inst Instance) *Client {
	t.Helper()

	client := NewClient(testConfig(), staticFactory(inst), Events{}, nil)
	require.NoError(t, client.Initialize(context.Background()))
	return client
}
