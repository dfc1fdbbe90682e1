// SPDX-License-Identifier: Apache-2.0

package relayer

import (
	"github.com/ulmaulana/FHETalk-sub001/internal/fhevm"
)

// Wire types for the relayer REST API under /v1/. Shared by the HTTP
// instance and the relayertest server so both sides agree on field names.

// InputProofRequest asks the relayer to encrypt a batch of 32-bit values
// bound to one contract and one user address.
type InputProofRequest struct {
	ContractAddress string   `json:"contractAddress"`
	UserAddress     string   `json:"userAddress"`
	Values          []uint64 `json:"values"`
}

// InputProofResponse carries one handle per requested value and a single
// input proof covering the whole batch. All fields are 0x-prefixed hex.
type InputProofResponse struct {
	Handles    []string `json:"handles"`
	InputProof string   `json:"inputProof"`
}

// PublicDecryptRequest asks for the clear values of publicly decryptable
// handles.
type PublicDecryptRequest struct {
	Handles []string `json:"handles"`
}

// UserDecryptWireRequest is the credential-authenticated decryption request.
// The credential's private key never appears here: the relayer re-encrypts
// results to PublicKey and only the caller can open them.
type UserDecryptWireRequest struct {
	HandleContractPairs []fhevm.HandleContractPair `json:"handleContractPairs"`
	PublicKey           string                     `json:"publicKey"`
	Signature           string                     `json:"signature"`
	ContractAddresses   []string                   `json:"contractAddresses"`
	UserAddress         string                     `json:"userAddress"`
	StartTimestamp      int64                      `json:"startTimestamp"`
	DurationDays        int64                      `json:"durationDays"`
}

// KeysResponse carries the chain's FHE public key material.
type KeysResponse struct {
	PublicKey string `json:"publicKey"`
}
