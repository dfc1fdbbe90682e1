// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_KEYSTORE_PATH":           "/home/user/.fhetalk/keystore.json",
		"APP_SIGNATURE_VALIDITY_DAYS": "14",

		"CHAIN_RPC_URL":          "http://localhost:8545",
		"CHAIN_ID":               "31337",
		"CHAIN_CONTRACT_ADDRESS": "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		"CHAIN_MOCK_CHAINS":      "31337:http://localhost:8545",

		"RELAYER_URL":             "https://relayer.example.org",
		"RELAYER_REQUEST_TIMEOUT": "45s",

		"STORAGE_DB_DSN": "/var/lib/fhetalk/client.db",

		"WORKERS_SYNC_INTERVAL":    "15s",
		"WORKERS_JANITOR_INTERVAL": "5m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "/home/user/.fhetalk/keystore.json", cfg.App.KeystorePath)
	assert.Equal(t, int64(14), cfg.App.SignatureValidityDays)

	assert.Equal(t, "http://localhost:8545", cfg.Chain.RPCURL)
	assert.Equal(t, uint64(31337), cfg.Chain.ChainID)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", cfg.Chain.ContractAddress)
	assert.Equal(t, map[uint64]string{31337: "http://localhost:8545"}, cfg.Chain.MockChains)

	assert.Equal(t, "https://relayer.example.org", cfg.Relayer.URL)
	assert.Equal(t, 45*time.Second, cfg.Relayer.RequestTimeout)

	assert.Equal(t, "/var/lib/fhetalk/client.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 15*time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, 5*time.Minute, cfg.Workers.JanitorInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CHAIN_RPC_URL": "http://localhost:8545",
		"RELAYER_URL":   "https://relayer.example.org",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// Chain partially filled
	assert.Equal(t, "http://localhost:8545", cfg.Chain.RPCURL)
	assert.Zero(t, cfg.Chain.ChainID)
	assert.Empty(t, cfg.Chain.ContractAddress)

	// Relayer partially filled
	assert.Equal(t, "https://relayer.example.org", cfg.Relayer.URL)
	assert.Zero(t, cfg.Relayer.RequestTimeout)

	// Others untouched
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Workers{}, cfg.Workers)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "", cfg.JSONFilePath)

	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Relayer{}, cfg.Relayer)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Workers{}, cfg.Workers)
}

func TestParseEnv_MockChainsMultipleEntries(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CHAIN_MOCK_CHAINS": "31337:http://localhost:8545,1337:http://localhost:7545",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[uint64]string{
		31337: "http://localhost:8545",
		1337:  "http://localhost:7545",
	}, cfg.Chain.MockChains)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"RELAYER_REQUEST_TIMEOUT": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	// Error wording may vary depending on parseEnv internals; assert loosely.
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"RELAYER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Relayer.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_KEYSTORE_PATH",
		"APP_SIGNATURE_VALIDITY_DAYS",

		"CHAIN_RPC_URL",
		"CHAIN_ID",
		"CHAIN_CONTRACT_ADDRESS",
		"CHAIN_MOCK_CHAINS",

		"RELAYER_URL",
		"RELAYER_REQUEST_TIMEOUT",

		"STORAGE_DB_DSN",

		"WORKERS_SYNC_INTERVAL",
		"WORKERS_JANITOR_INTERVAL",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
