// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidChainConfigs indicates invalid chain settings
	// (for example, zero chain id or missing RPC endpoint).
	ErrInvalidChainConfigs = errors.New("invalid chain configuration")
	// ErrInvalidRelayerConfigs indicates invalid relayer settings
	// (for example, missing URL for a non-mocked chain or zero timeout).
	ErrInvalidRelayerConfigs = errors.New("invalid relayer configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing keystore path or non-positive validity window).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sync or janitor interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
