// SPDX-License-Identifier: Apache-2.0

package relayer

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ulmaulana/FHETalk-sub001/internal/fhevm"
	"github.com/ulmaulana/FHETalk-sub001/models"
)

// MockInstance implements fhevm.Instance entirely in process. Encryption
// records values in a [Registry]; decryption reads them back. Used for
// chains listed in MockChains and throughout the test suite.
type MockInstance struct {
	chainID  uint64
	registry *Registry
}

// NewMockInstance returns a mock instance with its own empty ciphertext
// store.
func NewMockInstance(chainID uint64) *MockInstance {
	return NewMockInstanceWithRegistry(chainID, NewRegistry())
}

// NewMockInstanceWithRegistry returns a mock instance sharing the given
// ciphertext store. Sharing lets several instances (or an instance and a
// relayertest server) see each other's handles.
func NewMockInstanceWithRegistry(chainID uint64, registry *Registry) *MockInstance {
	return &MockInstance{chainID: chainID, registry: registry}
}

// Registry exposes the underlying ciphertext store.
func (m *MockInstance) Registry() *Registry {
	return m.registry
}

func (m *MockInstance) CreateEncryptedInput(contractAddress, userAddress string) (fhevm.EncryptedInputBuilder, error) {
	if contractAddress == "" || userAddress == "" {
		return nil, fmt.Errorf("%w: empty contract or user address", ErrRelayerRejected)
	}

	return &mockInputBuilder{
		registry:        m.registry,
		contractAddress: contractAddress,
		userAddress:     userAddress,
	}, nil
}

func (m *MockInstance) PublicDecrypt(_ context.Context, handles []string) (any, error) {
	clearValues := make(map[string]any, len(handles))
	for _, handle := range handles {
		value, ok := m.registry.Lookup(handle)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownHandle, handle)
		}
		clearValues[handle] = value
	}

	return map[string]any{"clearValues": clearValues}, nil
}

func (m *MockInstance) UserDecrypt(_ context.Context, req fhevm.UserDecryptRequest) (map[string]any, error) {
	if req.Signature == "" || req.PublicKey == "" {
		return nil, fmt.Errorf("%w: missing decryption credential", ErrRelayerRejected)
	}

	result := make(map[string]any, len(req.Pairs))
	for _, pair := range req.Pairs {
		value, ok := m.registry.Lookup(pair.Handle)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownHandle, pair.Handle)
		}
		result[pair.Handle] = value
	}

	return result, nil
}

func (m *MockInstance) GenerateKeypair() (models.Keypair, error) {
	return generateKeypair()
}

// PublicKey returns deterministic key material derived from the chain id, so
// mocked chains still expose a stable, non-empty public key.
func (m *MockInstance) PublicKey() string {
	return hexutil.Encode(crypto.Keccak256([]byte(fmt.Sprintf("mock-fhe-key-%d", m.chainID))))
}

type mockInputBuilder struct {
	registry        *Registry
	contractAddress string
	userAddress     string
	values          []uint64
}

func (b *mockInputBuilder) Add32(value uint32) fhevm.EncryptedInputBuilder {
	b.values = append(b.values, uint64(value))
	return b
}

func (b *mockInputBuilder) Encrypt(_ context.Context) (fhevm.EncryptedInputResult, error) {
	if len(b.values) == 0 {
		return fhevm.EncryptedInputResult{}, fmt.Errorf("%w: empty encrypted input", ErrRelayerRejected)
	}

	handles, proof := b.registry.Encrypt(b.contractAddress, b.userAddress, b.values)

	rawHandles := make([][]byte, 0, len(handles))
	for _, handle := range handles {
		raw, err := hexutil.Decode(handle)
		if err != nil {
			return fhevm.EncryptedInputResult{}, fmt.Errorf("decode handle %q: %w", handle, err)
		}
		rawHandles = append(rawHandles, raw)
	}

	rawProof, err := hexutil.Decode(proof)
	if err != nil {
		return fhevm.EncryptedInputResult{}, fmt.Errorf("decode input proof: %w", err)
	}

	return fhevm.EncryptedInputResult{Handles: rawHandles, InputProof: rawProof}, nil
}
