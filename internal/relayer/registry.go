// SPDX-License-Identifier: Apache-2.0

package relayer

import (
	"encoding/binary"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Registry is an in-memory ciphertext store mapping handles to the clear
// values they were produced from. It backs the mock instance and the
// relayertest server; a real relayer keeps this state in its coprocessor.
type Registry struct {
	mu      sync.Mutex
	values  map[string]uint64
	counter uint64
}

// NewRegistry returns an empty ciphertext store.
func NewRegistry() *Registry {
	return &Registry{values: make(map[string]uint64)}
}

// Encrypt stores the given clear values and returns one opaque handle per
// value plus a proof covering the batch. Handles are unique across the
// registry's lifetime: a per-registry counter feeds the hash, so encrypting
// the same value twice yields distinct handles.
func (r *Registry) Encrypt(contractAddress, userAddress string, values []uint64) (handles []string, proof string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	handles = make([]string, 0, len(values))
	proofHasher := make([]byte, 0, len(values)*32)

	for _, value := range values {
		r.counter++

		var buf [16]byte
		binary.BigEndian.PutUint64(buf[:8], value)
		binary.BigEndian.PutUint64(buf[8:], r.counter)

		digest := crypto.Keccak256(
			[]byte(strings.ToLower(contractAddress)),
			[]byte(strings.ToLower(userAddress)),
			buf[:],
		)

		handle := hexutil.Encode(digest)
		r.values[handle] = value
		handles = append(handles, handle)
		proofHasher = append(proofHasher, digest...)
	}

	return handles, hexutil.Encode(crypto.Keccak256(proofHasher))
}

// Lookup resolves a handle to its clear value.
func (r *Registry) Lookup(handle string) (uint64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	value, ok := r.values[strings.ToLower(handle)]
	return value, ok
}
