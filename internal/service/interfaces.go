// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/ulmaulana/FHETalk-sub001/internal/fhevm"
	"github.com/ulmaulana/FHETalk-sub001/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// FhevmClient is the slice of *fhevm.Client the services depend on.
type FhevmClient interface {
	// State returns a snapshot of the client lifecycle state.
	State() fhevm.ClientState

	// Encrypt encrypts a single value for the given contract.
	Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptedValue, error)

	// Decrypt resolves a handle to its clear value.
	Decrypt(ctx context.Context, req models.DecryptRequest) (uint64, error)
}

// DecryptionService manages user-decryption credentials and performs
// decryption through the fhevm client.
type DecryptionService interface {
	// EnsureCredential returns a valid cached credential for the contract
	// set, creating and caching a fresh one when none exists or the cached
	// one expired.
	EnsureCredential(ctx context.Context, contracts []string) (*models.DecryptionSignature, error)

	// DecryptUser resolves a handle with a user-decryption credential.
	DecryptUser(ctx context.Context, handle, contractAddress string) (uint64, error)

	// DecryptPublic resolves a publicly decryptable handle.
	DecryptPublic(ctx context.Context, handle string) (uint64, error)

	// PurgeExpired removes credentials whose validity window has closed.
	// Returns the number of purged entries.
	PurgeExpired(ctx context.Context) int
}

// MessagingService implements the chat flows: sending encrypted messages,
// group management and syncing the local cache from the chain.
type MessagingService interface {
	SendDirectMessage(ctx context.Context, to string, value uint64) (models.Message, error)
	SendGroupMessage(ctx context.Context, groupID uint64, value uint64) (models.Message, error)

	CreateGroup(ctx context.Context, name string) (string, error)
	JoinGroup(ctx context.Context, groupID uint64) (string, error)

	// RefreshGroups fetches the group list from the chain and merges it into
	// the local cache.
	RefreshGroups(ctx context.Context) ([]models.Group, error)

	// GetGroups returns the cached group list.
	GetGroups(ctx context.Context) ([]models.Group, error)

	// SyncGroupMessages fetches a group's messages from the chain, decrypts
	// what it can and returns the merged conversation.
	SyncGroupMessages(ctx context.Context, groupID uint64) ([]models.Message, error)

	// SyncDirectMessages does the same for a DM conversation.
	SyncDirectMessages(ctx context.Context, peer string) ([]models.Message, error)

	// SyncAll refreshes groups and every group conversation. Used by the
	// background sync worker.
	SyncAll(ctx context.Context) error

	// GetConversation returns the cached messages of one conversation.
	GetConversation(ctx context.Context, conversationKey string) ([]models.Message, error)
}
