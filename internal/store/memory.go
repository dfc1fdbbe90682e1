package store

import (
	"context"
	"sync"

	"github.com/ulmaulana/FHETalk-sub001/models"
)

// memorySignatureStore is the in-process [SignatureStore]. It is the default
// backend when no storage DSN is configured and the backend used by tests.
type memorySignatureStore struct {
	mu   sync.RWMutex
	data map[string]models.DecryptionSignature
}

// NewMemorySignatureStore returns an empty in-memory signature cache.
func NewMemorySignatureStore() SignatureStore {
	return &memorySignatureStore{data: make(map[string]models.DecryptionSignature)}
}

func (m *memorySignatureStore) Get(_ context.Context, key string) *models.DecryptionSignature {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sig, ok := m.data[key]
	if !ok {
		return nil
	}
	// Copy out so callers cannot mutate the cached value.
	out := sig
	out.ContractAddresses = append([]string(nil), sig.ContractAddresses...)
	return &out
}

func (m *memorySignatureStore) Set(_ context.Context, key string, sig *models.DecryptionSignature) {
	if sig == nil {
		return
	}

	stored := *sig
	stored.ContractAddresses = append([]string(nil), sig.ContractAddresses...)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = stored
}

func (m *memorySignatureStore) Remove(_ context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

func (m *memorySignatureStore) Clear(context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]models.DecryptionSignature)
}

func (m *memorySignatureStore) Keys(context.Context) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys
}
