// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

// Business errors surfaced to the presentation layer.
var (
	// ErrClientNotReady indicates the fhevm client has not finished
	// initialization.
	ErrClientNotReady = errors.New("fhevm client is not ready")
	// ErrRelayerUnreachable indicates the relayer could not be reached or
	// failed server-side.
	ErrRelayerUnreachable = errors.New("relayer unreachable")
	// ErrRequestRejected indicates the relayer or chain refused the request
	// as malformed or unauthorized.
	ErrRequestRejected = errors.New("request rejected")
	// ErrInvalidRecipient indicates a malformed recipient or peer address.
	ErrInvalidRecipient = errors.New("invalid recipient address")
	// ErrValueTooLarge indicates a message value that does not fit in the
	// 32-bit encrypted integer the contract stores.
	ErrValueTooLarge = errors.New("message value does not fit in 32 bits")
)
