package models

// EncryptedValue is the result of encrypting a single plaintext value for a
// target contract. Both fields are 0x-prefixed hex strings ready to be passed
// to a contract call.
type EncryptedValue struct {
	// Handle is the opaque on-chain reference to the encrypted value.
	Handle string `json:"handle"`

	// Proof is the zero-knowledge input proof attesting that the handle was
	// produced from a well-formed ciphertext.
	Proof string `json:"proof"`
}

// EncryptRequest describes a single-value encryption request.
type EncryptRequest struct {
	// Value is the plaintext to encrypt. The relayer encrypts it as a 32-bit
	// encrypted integer (euint32), so it must fit in uint32.
	Value uint64

	// ContractAddress is the contract the ciphertext is bound to.
	ContractAddress string

	// UserAddress is the address allowed to reference the resulting handle.
	UserAddress string
}

// DecryptRequest describes a decryption request for a single handle.
//
// Exactly one of UsePublicDecrypt or Signature must be set: public decryption
// needs no credential, user decryption needs the full EIP-712 credential
// bundle.
type DecryptRequest struct {
	Handle          string
	ContractAddress string

	// Signature is the cached user-decryption credential. Nil for public
	// decryption.
	Signature *DecryptionSignature

	// UsePublicDecrypt selects the public decryption path.
	UsePublicDecrypt bool
}
