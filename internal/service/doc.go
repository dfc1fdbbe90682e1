// Package service holds the client's business logic: credential management
// for user decryption and the messaging flows tying together the fhevm
// client, the contract adapter and the local cache.
//
// Services are constructor-injected and depend on interfaces only, so every
// collaborator can be replaced by a mock in tests.
package service
