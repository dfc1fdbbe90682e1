// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the client view performs the real checks in
// [ClientConfig.validate] once the runtime mode (mocked or relayer-backed)
// is known.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Chain.ChainID == 0 || cfg.Chain.RPCURL == "" {
		return ErrInvalidChainConfigs
	}

	// A mocked chain needs no relayer endpoint; everything else does.
	if !cfg.Mocked() && cfg.Relayer.URL == "" {
		return ErrInvalidRelayerConfigs
	}
	if cfg.Relayer.RequestTimeout == 0 {
		return ErrInvalidRelayerConfigs
	}

	if cfg.Workers.SyncInterval == 0 || cfg.Workers.JanitorInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.KeystorePath == "" || cfg.App.SignatureValidityDays <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
