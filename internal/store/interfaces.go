package store

import (
	"context"

	"github.com/ulmaulana/FHETalk-sub001/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SignatureStore caches user-decryption credentials keyed by
// [models.SignatureCacheKey]. Implementations are best-effort: failures are
// logged and swallowed, Get returns nil both for missing keys and on error.
// See the package documentation for the rationale.
type SignatureStore interface {
	Get(ctx context.Context, key string) *models.DecryptionSignature
	Set(ctx context.Context, key string, sig *models.DecryptionSignature)
	Remove(ctx context.Context, key string)
	Clear(ctx context.Context)

	// Keys returns all cached keys, used by the signature janitor to find
	// expired credentials.
	Keys(ctx context.Context) []string
}

// MessageRepository is the local cache of chain messages.
type MessageRepository interface {
	// SaveMessages upserts messages by handle; a message already cached for
	// the same handle keeps its decrypted value.
	SaveMessages(ctx context.Context, messages ...models.Message) error

	// GetConversation returns the cached messages of one conversation in
	// ascending send order.
	GetConversation(ctx context.Context, conversationKey string) ([]models.Message, error)

	// SetDecryptedValue records the locally decrypted payload of a message.
	SetDecryptedValue(ctx context.Context, handle string, value uint64) error
}

// GroupRepository caches group metadata fetched from the contract.
type GroupRepository interface {
	SaveGroups(ctx context.Context, groups ...models.Group) error
	GetGroups(ctx context.Context) ([]models.Group, error)
}
