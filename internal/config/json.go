// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags. Durations
// are expressed as strings ("30s", "10m") and mock chain ids as string keys,
// so the file stays editable by hand.
type StructuredJSONConfig struct {
	App struct {
		KeystorePath          string `json:"keystore_path"`
		SignatureValidityDays int64  `json:"signature_validity_days"`
	} `json:"app,omitempty"`

	Chain struct {
		RPCURL          string            `json:"rpc_url"`
		ChainID         uint64            `json:"chain_id"`
		ContractAddress string            `json:"contract_address"`
		MockChains      map[string]string `json:"mock_chains"`
	} `json:"chain,omitempty"`

	Relayer struct {
		URL            string   `json:"url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"relayer,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		SyncInterval    Duration `json:"sync_interval"`
		JanitorInterval Duration `json:"janitor_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	mockChains, err := parseMockChains(jsonCfg.Chain.MockChains)
	if err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			KeystorePath:          jsonCfg.App.KeystorePath,
			SignatureValidityDays: jsonCfg.App.SignatureValidityDays,
		},
		Chain: Chain{
			RPCURL:          jsonCfg.Chain.RPCURL,
			ChainID:         jsonCfg.Chain.ChainID,
			ContractAddress: jsonCfg.Chain.ContractAddress,
			MockChains:      mockChains,
		},
		Relayer: Relayer{
			URL:            jsonCfg.Relayer.URL,
			RequestTimeout: time.Duration(jsonCfg.Relayer.RequestTimeout),
		},
		Storage: Storage{
			DB: ClientDB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Workers: Workers{
			SyncInterval:    time.Duration(jsonCfg.Workers.SyncInterval),
			JanitorInterval: time.Duration(jsonCfg.Workers.JanitorInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

func parseMockChains(raw map[string]string) (map[uint64]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	chains := make(map[uint64]string, len(raw))
	for key, url := range raw {
		id, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid mock chain id %q: %w", key, err)
		}
		chains[id] = url
	}

	return chains, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
