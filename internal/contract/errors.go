// SPDX-License-Identifier: Apache-2.0

package contract

import "errors"

var (
	// ErrInvalidAddress indicates a malformed 0x address argument.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrInvalidEncryptedValue indicates a handle or proof that is not valid
	// hex of the expected length.
	ErrInvalidEncryptedValue = errors.New("invalid encrypted value")
)
