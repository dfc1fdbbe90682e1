package models

// Keypair is an ephemeral X25519 keypair used for user decryption. The
// relayer encrypts clear values to PublicKey; the SDK opens them with
// PrivateKey. Both are 0x-prefixed hex strings.
type Keypair struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}
