// SPDX-License-Identifier: Apache-2.0

package crypto

import "errors"

var (
	// ErrKeystoreNotFound indicates no keystore file exists at the configured
	// path.
	ErrKeystoreNotFound = errors.New("keystore not found")
	// ErrKeystoreExists indicates Create was called while a keystore file is
	// already present.
	ErrKeystoreExists = errors.New("keystore already exists")
	// ErrWrongPassword indicates the password-derived key failed to open the
	// keystore (authentication-tag mismatch).
	ErrWrongPassword = errors.New("wrong keystore password")
)
