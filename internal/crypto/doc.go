// Package crypto holds the client-side key management primitives: the
// encrypted wallet keystore and the EIP-712 signer producing user-decryption
// credentials.
//
// The wallet's secp256k1 key is stored in a JSON file, wrapped with
// AES-256-GCM under a key derived from the user's password via Argon2id. The
// key exists in clear only in client memory and is never transmitted.
package crypto
