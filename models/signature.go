package models

import (
	"sort"
	"strings"
	"time"
)

// DecryptionSignature is the credential bundle that authorizes user
// decryption of handles belonging to UserAddress for a set of contracts.
//
// The bundle is produced once per (user, contracts) pair: an ephemeral
// keypair is generated, and the wallet signs an EIP-712 message binding the
// ephemeral public key to the contract addresses and a validity window. The
// relayer re-derives the same digest and checks the signature before serving
// re-encrypted values. The SDK only carries the bundle around; it never
// mutates it.
type DecryptionSignature struct {
	// PrivateKey is the ephemeral decryption private key, 0x-prefixed hex.
	PrivateKey string `json:"privateKey"`

	// PublicKey is the ephemeral decryption public key, 0x-prefixed hex.
	PublicKey string `json:"publicKey"`

	// Signature is the wallet's EIP-712 signature over the credential,
	// 0x-prefixed hex.
	Signature string `json:"signature"`

	// ContractAddresses lists the contracts the credential is valid for.
	ContractAddresses []string `json:"contractAddresses"`

	// UserAddress is the wallet address that signed the credential.
	UserAddress string `json:"userAddress"`

	// StartTimestamp is the Unix time the validity window opens.
	StartTimestamp int64 `json:"startTimestamp"`

	// DurationDays is the validity window length in days.
	DurationDays int64 `json:"durationDays"`
}

// ExpiresAt returns the end of the credential's validity window.
func (s *DecryptionSignature) ExpiresAt() time.Time {
	return time.Unix(s.StartTimestamp, 0).Add(time.Duration(s.DurationDays) * 24 * time.Hour)
}

// IsValidAt reports whether the credential covers the given instant.
func (s *DecryptionSignature) IsValidAt(t time.Time) bool {
	start := time.Unix(s.StartTimestamp, 0)
	return !t.Before(start) && t.Before(s.ExpiresAt())
}

// SignatureCacheKey builds the storage key under which a credential for
// userAddress and contracts is cached. Contract addresses are lowercased and
// sorted so the key is insensitive to caller ordering.
func SignatureCacheKey(userAddress string, contracts []string) string {
	normalized := make([]string, len(contracts))
	for i, c := range contracts {
		normalized[i] = strings.ToLower(c)
	}
	sort.Strings(normalized)

	return strings.ToLower(userAddress) + ":" + strings.Join(normalized, ",")
}
