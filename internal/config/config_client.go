// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
)

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds the local database settings.
	DB ClientDB
}

// ClientConfig is the runtime configuration view handed to the client
// application, assembled from [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App App
	// Chain contains the target chain settings.
	Chain Chain
	// Relayer contains the relayer endpoint settings.
	Relayer Relayer
	// Storage contains local persistence settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers Workers
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:     cfg.App,
		Chain:   cfg.Chain,
		Relayer: cfg.Relayer,
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: cfg.Workers,
	}

	return clientCfg, clientCfg.validate()
}

// Mocked reports whether the configured chain is served by the in-process
// mock instance instead of the real relayer.
func (cfg *ClientConfig) Mocked() bool {
	_, ok := cfg.Chain.MockChains[cfg.Chain.ChainID]
	return ok
}
