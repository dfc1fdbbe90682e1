// SPDX-License-Identifier: Apache-2.0

package relayer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-resty/resty/v2"

	"github.com/ulmaulana/FHETalk-sub001/internal/fhevm"
	"github.com/ulmaulana/FHETalk-sub001/internal/logger"
	"github.com/ulmaulana/FHETalk-sub001/models"
)

// httpInstance implements fhevm.Instance against the relayer REST API.
type httpInstance struct {
	client    *resty.Client
	publicKey string
	log       *logger.Logger
}

func (i *httpInstance) CreateEncryptedInput(contractAddress, userAddress string) (fhevm.EncryptedInputBuilder, error) {
	if contractAddress == "" || userAddress == "" {
		return nil, fmt.Errorf("%w: empty contract or user address", ErrRelayerRejected)
	}

	return &inputBuilder{
		instance:        i,
		contractAddress: contractAddress,
		userAddress:     userAddress,
	}, nil
}

func (i *httpInstance) PublicDecrypt(ctx context.Context, handles []string) (any, error) {
	resp, err := i.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(PublicDecryptRequest{Handles: handles}).
		Post("/v1/public-decrypt")
	if err != nil {
		return nil, fmt.Errorf("public decrypt request: %w", err)
	}
	if err = mapRelayerError(resp); err != nil {
		return nil, err
	}

	// The response shape varies across relayer versions, so it is decoded
	// into an untyped value and normalized by the caller.
	var result any
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode public decrypt response: %w", err)
	}

	return result, nil
}

func (i *httpInstance) UserDecrypt(ctx context.Context, req fhevm.UserDecryptRequest) (map[string]any, error) {
	wireReq := UserDecryptWireRequest{
		HandleContractPairs: req.Pairs,
		PublicKey:           req.PublicKey,
		Signature:           req.Signature,
		ContractAddresses:   req.ContractAddresses,
		UserAddress:         req.UserAddress,
		StartTimestamp:      req.StartTimestamp,
		DurationDays:        req.DurationDays,
	}

	resp, err := i.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(wireReq).
		Post("/v1/user-decrypt")
	if err != nil {
		return nil, fmt.Errorf("user decrypt request: %w", err)
	}
	if err = mapRelayerError(resp); err != nil {
		return nil, err
	}

	var result map[string]any
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode user decrypt response: %w", err)
	}

	return result, nil
}

func (i *httpInstance) GenerateKeypair() (models.Keypair, error) {
	return generateKeypair()
}

func (i *httpInstance) PublicKey() string {
	return i.publicKey
}

// inputBuilder accumulates 32-bit values and submits them to the relayer's
// input-proof endpoint in one batch.
type inputBuilder struct {
	instance        *httpInstance
	contractAddress string
	userAddress     string
	values          []uint64
}

func (b *inputBuilder) Add32(value uint32) fhevm.EncryptedInputBuilder {
	b.values = append(b.values, uint64(value))
	return b
}

func (b *inputBuilder) Encrypt(ctx context.Context) (fhevm.EncryptedInputResult, error) {
	if len(b.values) == 0 {
		return fhevm.EncryptedInputResult{}, fmt.Errorf("%w: empty encrypted input", ErrRelayerRejected)
	}

	wireReq := InputProofRequest{
		ContractAddress: b.contractAddress,
		UserAddress:     b.userAddress,
		Values:          b.values,
	}

	resp, err := b.instance.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(wireReq).
		Post("/v1/input-proof")
	if err != nil {
		return fhevm.EncryptedInputResult{}, fmt.Errorf("input proof request: %w", err)
	}
	if err = mapRelayerError(resp); err != nil {
		return fhevm.EncryptedInputResult{}, err
	}

	var wireResp InputProofResponse
	if err = json.Unmarshal(resp.Body(), &wireResp); err != nil {
		return fhevm.EncryptedInputResult{}, fmt.Errorf("decode input proof response: %w", err)
	}

	handles := make([][]byte, 0, len(wireResp.Handles))
	for _, handle := range wireResp.Handles {
		raw, err := hexutil.Decode(handle)
		if err != nil {
			return fhevm.EncryptedInputResult{}, fmt.Errorf("decode handle %q: %w", handle, err)
		}
		handles = append(handles, raw)
	}

	proof, err := hexutil.Decode(wireResp.InputProof)
	if err != nil {
		return fhevm.EncryptedInputResult{}, fmt.Errorf("decode input proof: %w", err)
	}

	return fhevm.EncryptedInputResult{Handles: handles, InputProof: proof}, nil
}
