// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the FHETalk
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the wallet keystore
	// location and decryption-credential lifetime.
	App App `envPrefix:"APP_"`

	// Chain holds the target chain settings: RPC endpoint, chain id and the
	// FHETalk contract address.
	Chain Chain `envPrefix:"CHAIN_"`

	// Relayer holds the FHE relayer endpoint settings.
	Relayer Relayer `envPrefix:"RELAYER_"`

	// Storage holds the local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged on top of the values already
	// loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level client settings.
type App struct {
	// KeystorePath is the path of the encrypted wallet keystore file.
	// Env: APP_KEYSTORE_PATH
	KeystorePath string `env:"KEYSTORE_PATH"`

	// SignatureValidityDays is the validity window requested for newly
	// created decryption credentials.
	// Env: APP_SIGNATURE_VALIDITY_DAYS
	SignatureValidityDays int64 `env:"SIGNATURE_VALIDITY_DAYS"`
}

// Chain holds the target chain settings.
type Chain struct {
	// RPCURL is the JSON-RPC endpoint of the target chain
	// (e.g. "http://localhost:8545").
	// Env: CHAIN_RPC_URL
	RPCURL string `env:"RPC_URL"`

	// ChainID is the numeric id of the target chain (e.g. 11155111 for
	// Sepolia, 31337 for a local hardhat node).
	// Env: CHAIN_ID
	ChainID uint64 `env:"ID"`

	// ContractAddress is the deployed FHETalk contract address.
	// Env: CHAIN_CONTRACT_ADDRESS
	ContractAddress string `env:"CONTRACT_ADDRESS"`

	// MockChains maps chain ids to local RPC endpoints that are served by
	// the in-process mock instance instead of the real relayer
	// (e.g. "31337:http://localhost:8545").
	// Env: CHAIN_MOCK_CHAINS
	MockChains map[uint64]string `env:"MOCK_CHAINS"`
}

// Relayer holds the FHE relayer endpoint settings.
type Relayer struct {
	// URL is the base URL of the relayer REST API.
	// Env: RELAYER_URL
	URL string `env:"URL"`

	// RequestTimeout is the per-request timeout for relayer calls
	// (e.g. "30s", "1m").
	// Env: RELAYER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the local SQLite settings.
	DB ClientDB `envPrefix:"DB_"`
}

// ClientDB holds the local database connection settings.
type ClientDB struct {
	// DSN is the SQLite file path, or ":memory:" for a throwaway database.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Fallback values applied by the config builder when no source sets a field.
const (
	defaultRelayerTimeout  = 30 * time.Second
	defaultSyncInterval    = 30 * time.Second
	defaultJanitorInterval = 10 * time.Minute
)

// Workers holds background job settings.
type Workers struct {
	// SyncInterval defines how often the message sync job refreshes the
	// local cache from the chain.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// JanitorInterval defines how often expired decryption credentials are
	// purged from the signature cache.
	// Env: WORKERS_JANITOR_INTERVAL
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Built-in defaults are merged last and only fill fields no source set.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
