// SPDX-License-Identifier: Apache-2.0

// Package fhevm implements the client-side lifecycle for talking to an
// FHE-enabled EVM chain through a relayer.
//
// The central type is [Client], a small state machine
// (idle → loading → ready/error) wrapping an external [Instance] capability
// that performs the actual cryptography. The client owns exactly one piece of
// mutable state, a [ClientState] record, and every mutation goes through a
// pure transition function (see state.go) that returns the next state plus
// the event callbacks to fire. This keeps the lifecycle testable without any
// timing dependencies.
//
// Encrypt and Decrypt are stateless with respect to each other and may be
// called concurrently once the client is ready. Initialize is idempotent: a
// second call while loading or ready is a no-op, so an instance is never
// created twice. Destroy and Refresh cancel in-flight initialization through
// the client-owned lifecycle context, which is merged with the caller's
// context on every Initialize call.
//
// All failures crossing the client boundary are wrapped into [*ClientError]
// with a stable machine-readable code; the underlying error is preserved as
// the cause and available via errors.Unwrap.
package fhevm
