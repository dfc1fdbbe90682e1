package fhevm

import (
	"context"

	"github.com/ulmaulana/FHETalk-sub001/models"
)

//go:generate mockgen -source=instance.go -destination=../mock/fhevm_instance_mock.go -package=mock

// Instance is the external capability object the client delegates all
// cryptographic work to. Implementations talk to a relayer (see
// internal/relayer) or stay fully in-process for mock chains and tests.
type Instance interface {
	// CreateEncryptedInput starts an encrypted-input builder bound to the
	// target contract and the user address allowed to use the resulting
	// handles.
	CreateEncryptedInput(contractAddress, userAddress string) (EncryptedInputBuilder, error)

	// PublicDecrypt resolves publicly decryptable handles to clear values.
	// The result shape varies across relayer versions; callers must go
	// through the client's normalization.
	PublicDecrypt(ctx context.Context, handles []string) (any, error)

	// UserDecrypt re-encrypts the requested handles to the credential's
	// ephemeral key and returns clear values keyed by handle.
	UserDecrypt(ctx context.Context, req UserDecryptRequest) (map[string]any, error)

	// GenerateKeypair produces a fresh ephemeral decryption keypair.
	GenerateKeypair() (models.Keypair, error)

	// PublicKey returns the chain's FHE public key material, 0x-prefixed.
	PublicKey() string
}

// EncryptedInputBuilder accumulates plaintext values and produces handles
// plus a single input proof covering all of them.
type EncryptedInputBuilder interface {
	// Add32 appends a 32-bit value to the input. Returns the builder for
	// chaining.
	Add32(value uint32) EncryptedInputBuilder

	// Encrypt finalizes the input, producing one handle per added value and
	// the accompanying proof.
	Encrypt(ctx context.Context) (EncryptedInputResult, error)
}

// EncryptedInputResult is the raw builder output before hex conversion.
type EncryptedInputResult struct {
	Handles    [][]byte
	InputProof []byte
}

// HandleContractPair names one handle together with the contract it belongs
// to, as required by the relayer's user-decrypt endpoint.
type HandleContractPair struct {
	Handle          string `json:"handle"`
	ContractAddress string `json:"contractAddress"`
}

// UserDecryptRequest carries the handles to decrypt plus the seven credential
// fields of a [models.DecryptionSignature].
type UserDecryptRequest struct {
	Pairs []HandleContractPair

	PrivateKey        string
	PublicKey         string
	Signature         string
	ContractAddresses []string
	UserAddress       string
	StartTimestamp    int64
	DurationDays      int64
}

// InstanceConfig is the input to an [InstanceFactory].
type InstanceConfig struct {
	// Provider is the JSON-RPC endpoint of the target chain.
	Provider string

	ChainID uint64

	// MockChains maps chain ids to local RPC endpoints that should get an
	// in-process mock instance instead of the real relayer.
	MockChains map[uint64]string

	// OnStatusChange, when set, receives coarse progress labels while the
	// factory works (key fetch, relayer handshake).
	OnStatusChange func(string)
}

// InstanceFactory creates instances. Creation observes ctx: cancellation
// must abort any in-flight network work.
type InstanceFactory interface {
	CreateInstance(ctx context.Context, cfg InstanceConfig) (Instance, error)
}

// InstanceFactoryFunc adapts a function to the [InstanceFactory] interface.
type InstanceFactoryFunc func(ctx context.Context, cfg InstanceConfig) (Instance, error)

func (f InstanceFactoryFunc) CreateInstance(ctx context.Context, cfg InstanceConfig) (Instance, error) {
	return f(ctx, cfg)
}
