// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdsa"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/argon2"
)

// Wallet is an unlocked wallet key held in client memory.
type Wallet struct {
	privateKey *ecdsa.PrivateKey
}

// NewWallet wraps an existing private key. Used by tests and the mock chain
// setup; production wallets come from the keystore.
func NewWallet(privateKey *ecdsa.PrivateKey) *Wallet {
	return &Wallet{privateKey: privateKey}
}

// Address returns the wallet's checksummed 0x address.
func (w *Wallet) Address() string {
	return ethcrypto.PubkeyToAddress(w.privateKey.PublicKey).Hex()
}

// PrivateKey exposes the raw key for transaction signing.
func (w *Wallet) PrivateKey() *ecdsa.PrivateKey {
	return w.privateKey
}

// keystoreFile is the on-disk JSON layout. Salt and EncryptedKey are
// standard-encoding Base64; the encrypted blob is nonce ‖ ciphertext.
type keystoreFile struct {
	Address      string `json:"address"`
	Salt         string `json:"salt"`
	EncryptedKey string `json:"encryptedKey"`
}

// fileKeystore is the private implementation of [WalletKeystore].
type fileKeystore struct {
	path string

	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewFileKeystore constructs a [WalletKeystore] backed by a JSON file at
// path, with the Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewFileKeystore(path string) WalletKeystore {
	return &fileKeystore{
		path:         path,
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// Exists implements [WalletKeystore].
func (k *fileKeystore) Exists() bool {
	_, err := os.Stat(k.path)
	return err == nil
}

// Create implements [WalletKeystore]. It generates a fresh secp256k1 key,
// wraps it under a password-derived key and writes the keystore file with
// 0600 permissions.
func (k *fileKeystore) Create(password string) (*Wallet, error) {
	if k.Exists() {
		return nil, ErrKeystoreExists
	}

	privateKey, err := ethcrypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generate wallet key: %w", err)
	}

	salt := make([]byte, 16)
	if _, err = io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	kek := k.deriveKEK(password, salt)
	encryptedKey, err := sealKey(ethcrypto.FromECDSA(privateKey), kek)
	if err != nil {
		return nil, fmt.Errorf("encrypt wallet key: %w", err)
	}

	wallet := NewWallet(privateKey)
	file := keystoreFile{
		Address:      wallet.Address(),
		Salt:         base64.StdEncoding.EncodeToString(salt),
		EncryptedKey: base64.StdEncoding.EncodeToString(encryptedKey),
	}

	payload, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal keystore: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(k.path), 0o700); err != nil {
		return nil, fmt.Errorf("create keystore dir: %w", err)
	}
	if err = os.WriteFile(k.path, payload, 0o600); err != nil {
		return nil, fmt.Errorf("write keystore: %w", err)
	}

	return wallet, nil
}

// Unlock implements [WalletKeystore]. An authentication-tag mismatch almost
// always means the user entered the wrong password, so it surfaces as
// [ErrWrongPassword].
func (k *fileKeystore) Unlock(password string) (*Wallet, error) {
	payload, err := os.ReadFile(k.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrKeystoreNotFound
		}
		return nil, fmt.Errorf("read keystore: %w", err)
	}

	var file keystoreFile
	if err = json.Unmarshal(payload, &file); err != nil {
		return nil, fmt.Errorf("unmarshal keystore: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(file.Salt)
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}
	encryptedKey, err := base64.StdEncoding.DecodeString(file.EncryptedKey)
	if err != nil {
		return nil, fmt.Errorf("decode encrypted key: %w", err)
	}

	kek := k.deriveKEK(password, salt)
	rawKey, err := openKey(encryptedKey, kek)
	if err != nil {
		return nil, ErrWrongPassword
	}

	privateKey, err := ethcrypto.ToECDSA(rawKey)
	if err != nil {
		return nil, fmt.Errorf("parse wallet key: %w", err)
	}

	return NewWallet(privateKey), nil
}

// deriveKEK derives a 256-bit key-encryption key from the password and salt
// using Argon2id. The result exists only in client memory.
func (k *fileKeystore) deriveKEK(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// sealKey wraps rawKey with kek using AES-256-GCM. A random 12-byte nonce is
// prepended to the ciphertext: blob = nonce ‖ ciphertext.
func sealKey(rawKey, kek []byte) ([]byte, error) {
	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return append(nonce, gcm.Seal(nil, nonce, rawKey, nil)...), nil
}

// openKey unwraps the blob produced by sealKey.
func openKey(blob, kek []byte) ([]byte, error) {
	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	rawKey, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return rawKey, nil
}
