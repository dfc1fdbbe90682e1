// SPDX-License-Identifier: Apache-2.0

package relayer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ulmaulana/FHETalk-sub001/internal/fhevm"
	"github.com/ulmaulana/FHETalk-sub001/internal/logger"
)

// Config holds the relayer endpoint settings for a [Factory].
type Config struct {
	// BaseURL is the relayer REST base URL (e.g. "https://relayer.example.org").
	BaseURL string
	// Timeout is the per-request timeout for relayer calls.
	Timeout time.Duration
}

// Factory creates fhevm instances. Mocked chains get an in-process
// [MockInstance]; everything else gets an HTTP instance bound to the
// configured relayer.
type Factory struct {
	client *resty.Client
	log    *logger.Logger
}

// NewFactory builds a Factory around a shared resty client.
func NewFactory(cfg Config, log *logger.Logger) *Factory {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Factory{client: cli, log: log}
}

// CreateInstance implements fhevm.InstanceFactory. Creation observes ctx:
// the key fetch is aborted when ctx is cancelled.
func (f *Factory) CreateInstance(ctx context.Context, cfg fhevm.InstanceConfig) (fhevm.Instance, error) {
	if _, mocked := cfg.MockChains[cfg.ChainID]; mocked {
		report(cfg.OnStatusChange, "creating mock instance")
		f.log.Debug().Uint64("chainID", cfg.ChainID).Msg("serving chain with mock instance")
		return NewMockInstance(cfg.ChainID), nil
	}

	report(cfg.OnStatusChange, "fetching FHE keys")

	resp, err := f.client.R().SetContext(ctx).Get("/v1/keys")
	if err != nil {
		return nil, fmt.Errorf("fetch keys request: %w", err)
	}
	if err = mapRelayerError(resp); err != nil {
		return nil, err
	}

	var keys KeysResponse
	if err = json.Unmarshal(resp.Body(), &keys); err != nil {
		return nil, fmt.Errorf("decode keys response: %w", err)
	}
	if keys.PublicKey == "" {
		return nil, fmt.Errorf("%w: empty public key", ErrRelayerRejected)
	}

	report(cfg.OnStatusChange, "relayer instance ready")
	f.log.Debug().Uint64("chainID", cfg.ChainID).Msg("relayer instance created")

	return &httpInstance{
		client:    f.client,
		publicKey: keys.PublicKey,
		log:       f.log.GetChildLogger(),
	}, nil
}

func report(onStatusChange func(string), status string) {
	if onStatusChange != nil {
		onStatusChange(status)
	}
}
