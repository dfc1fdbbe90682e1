// SPDX-License-Identifier: Apache-2.0

// Package store holds the client-side persistence layer: the pluggable
// decryption-signature cache and the SQLite message cache.
//
// The signature cache ([SignatureStore]) is deliberately best-effort: a
// credential can always be re-created by asking the wallet to sign again, so
// storage failures are logged at warning level and swallowed instead of
// failing the decryption path. Both an in-memory and a SQLite-backed
// implementation are provided.
//
// The message cache ([MessageRepository], [GroupRepository]) is a regular
// repository over SQLite: messages fetched from the chain are merged into it
// so conversations render instantly on the next start, and decrypted values
// are persisted per device. Schema management is done with goose migrations
// embedded in the migrations package.
package store
