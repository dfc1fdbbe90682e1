// SPDX-License-Identifier: Apache-2.0

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// WalletKeystore manages the encrypted wallet key file.
type WalletKeystore interface {
	// Exists reports whether a keystore file is already present on disk.
	Exists() bool

	// Create generates a fresh wallet key, encrypts it under password and
	// writes the keystore file. Fails if a keystore already exists.
	Create(password string) (*Wallet, error)

	// Unlock decrypts the stored wallet key with password.
	Unlock(password string) (*Wallet, error)
}

// UserDecryptSignParams carries the fields covered by the EIP-712
// user-decryption signature.
type UserDecryptSignParams struct {
	// PublicKey is the 0x-prefixed ephemeral public key the relayer encrypts
	// results to.
	PublicKey string

	// ContractAddresses lists the contracts the credential is valid for.
	ContractAddresses []string

	// StartTimestamp is the credential's validity start, unix seconds.
	StartTimestamp int64

	// DurationDays is the credential's validity window in days.
	DurationDays int64
}

// DecryptionSigner produces the EIP-712 signature authorizing user
// decryption on behalf of a wallet.
type DecryptionSigner interface {
	SignUserDecryptRequest(wallet *Wallet, params UserDecryptSignParams) (string, error)
}
