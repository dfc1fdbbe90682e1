// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"flag"
	"strconv"
	"strings"
	"time"
)

// MockChainsValue holds a chain-id to RPC-endpoint mapping parsed from a
// command-line flag. It implements the flag.Value interface.
type MockChainsValue struct {
	chains map[uint64]string
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-rpc-url chain JSON-RPC endpoint
//	-chain-id numeric chain id
//	-contract deployed FHETalk contract address
//	-relayer-url relayer REST base URL
//	-relayer-timeout relayer request timeout (e.g., "30s", "1m")
//	-keystore encrypted wallet keystore path
//	-d local database DSN (SQLite file path)
//	-c/-config json file path with configs
//	-mock-chains chain-id:rpc-url pairs served by the mock instance
//	-sync-interval message sync job interval (e.g., "30s")
//	-janitor-interval signature janitor interval (e.g., "10m")
//	-signature-validity-days validity window for new decryption credentials
func ParseFlags() *StructuredConfig {
	var rpcURL string
	var chainID uint64
	var contractAddress string
	var relayerURL string
	var relayerTimeout time.Duration
	var keystorePath string
	var databaseDSN string
	var jsonConfigPath string
	var mockChains MockChainsValue
	var syncInterval time.Duration
	var janitorInterval time.Duration
	var signatureValidityDays int64

	flag.StringVar(&rpcURL, "rpc-url", "", "Chain JSON-RPC endpoint")
	flag.Uint64Var(&chainID, "chain-id", 0, "Numeric chain id")
	flag.StringVar(&contractAddress, "contract", "", "FHETalk contract address")
	flag.StringVar(&relayerURL, "relayer-url", "", "Relayer REST base URL")
	flag.DurationVar(&relayerTimeout, "relayer-timeout", 0, "Relayer request timeout (e.g., 30s, 1m)")
	flag.StringVar(&keystorePath, "keystore", "", "Encrypted wallet keystore path")
	flag.StringVar(&databaseDSN, "d", "", "Local database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.Var(&mockChains, "mock-chains", "Mocked chains as id:rpc-url pairs, comma separated")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Message sync interval (e.g., 30s)")
	flag.DurationVar(&janitorInterval, "janitor-interval", 0, "Signature janitor interval (e.g., 10m)")
	flag.Int64Var(&signatureValidityDays, "signature-validity-days", 0, "Decryption credential validity in days")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			KeystorePath:          keystorePath,
			SignatureValidityDays: signatureValidityDays,
		},
		Chain: Chain{
			RPCURL:          rpcURL,
			ChainID:         chainID,
			ContractAddress: contractAddress,
			MockChains:      mockChains.chains,
		},
		Relayer: Relayer{
			URL:            relayerURL,
			RequestTimeout: relayerTimeout,
		},
		Storage: Storage{
			DB: ClientDB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			SyncInterval:    syncInterval,
			JanitorInterval: janitorInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns the canonical "id:url,id:url" form of the mapping.
func (v *MockChainsValue) String() string {
	if len(v.chains) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(v.chains))
	for id, url := range v.chains {
		pairs = append(pairs, strconv.FormatUint(id, 10)+":"+url)
	}

	return strings.Join(pairs, ",")
}

// Set parses the input string of form id:url[,id:url...] and populates the
// mapping. The chain id must be a positive integer; the URL part is taken
// verbatim, so it may itself contain colons.
func (v *MockChainsValue) Set(s string) error {
	chains := make(map[uint64]string)

	for _, pair := range strings.Split(s, ",") {
		idAndURL := strings.SplitN(pair, ":", 2)
		if len(idAndURL) != 2 || idAndURL[1] == "" {
			return errors.New("need mocked chains in a form `id:url`")
		}

		id, err := strconv.ParseUint(idAndURL[0], 10, 64)
		if err != nil {
			return err
		}
		if id == 0 {
			return errors.New("chain id is a positive integer")
		}

		chains[id] = idAndURL[1]
	}

	v.chains = chains
	return nil
}
