// SPDX-License-Identifier: Apache-2.0

package contract

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/ulmaulana/FHETalk-sub001/internal/crypto"
	"github.com/ulmaulana/FHETalk-sub001/internal/logger"
	"github.com/ulmaulana/FHETalk-sub001/models"
)

// ethAdapter is the private implementation of [Messaging].
type ethAdapter struct {
	backend  Backend
	abi      abi.ABI
	contract common.Address
	wallet   *crypto.Wallet
	chainID  *big.Int
	log      *logger.Logger
}

// Dial connects to the chain's JSON-RPC endpoint and returns it as a
// [Backend].
func Dial(rpcURL string) (Backend, error) {
	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}
	return client, nil
}

// NewAdapter builds a [Messaging] adapter bound to one contract, one wallet
// and one chain.
func NewAdapter(backend Backend, contractAddress string, chainID uint64, wallet *crypto.Wallet, log *logger.Logger) (Messaging, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, contractAddress)
	}
	if log == nil {
		log = logger.Nop()
	}

	parsed, err := parseABI()
	if err != nil {
		return nil, fmt.Errorf("parse contract abi: %w", err)
	}

	return &ethAdapter{
		backend:  backend,
		abi:      parsed,
		contract: common.HexToAddress(contractAddress),
		wallet:   wallet,
		chainID:  new(big.Int).SetUint64(chainID),
		log:      log,
	}, nil
}

func (a *ethAdapter) CreateGroup(ctx context.Context, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("empty group name")
	}
	return a.submit(ctx, "createGroup", name)
}

func (a *ethAdapter) JoinGroup(ctx context.Context, groupID uint64) (string, error) {
	return a.submit(ctx, "joinGroup", new(big.Int).SetUint64(groupID))
}

func (a *ethAdapter) SendGroupMessage(ctx context.Context, groupID uint64, value models.EncryptedValue) (string, error) {
	handle, proof, err := decodeEncryptedValue(value)
	if err != nil {
		return "", err
	}
	return a.submit(ctx, "sendGroupMessage", new(big.Int).SetUint64(groupID), handle, proof)
}

func (a *ethAdapter) SendDirectMessage(ctx context.Context, to string, value models.EncryptedValue) (string, error) {
	if !common.IsHexAddress(to) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, to)
	}
	handle, proof, err := decodeEncryptedValue(value)
	if err != nil {
		return "", err
	}
	return a.submit(ctx, "sendDirectMessage", common.HexToAddress(to), handle, proof)
}

func (a *ethAdapter) GetGroupMessages(ctx context.Context, groupID uint64) ([]models.Message, error) {
	out, err := a.call(ctx, "getGroupMessages", new(big.Int).SetUint64(groupID))
	if err != nil {
		return nil, err
	}

	raw := *abi.ConvertType(out[0], new([]chainMessage)).(*[]chainMessage)

	messages := make([]models.Message, 0, len(raw))
	for _, m := range raw {
		messages = append(messages, models.Message{
			Kind:    models.GroupMessage,
			GroupID: groupID,
			Sender:  strings.ToLower(m.Sender.Hex()),
			Handle:  hexutil.Encode(m.Handle[:]),
			SentAt:  time.Unix(m.SentAt.Int64(), 0).UTC(),
		})
	}

	return messages, nil
}

func (a *ethAdapter) GetDirectMessages(ctx context.Context, peer string) ([]models.Message, error) {
	if !common.IsHexAddress(peer) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, peer)
	}

	out, err := a.call(ctx, "getDirectMessages", common.HexToAddress(peer))
	if err != nil {
		return nil, err
	}

	raw := *abi.ConvertType(out[0], new([]chainMessage)).(*[]chainMessage)

	messages := make([]models.Message, 0, len(raw))
	for _, m := range raw {
		messages = append(messages, models.Message{
			Kind:   models.DirectMessage,
			Peer:   strings.ToLower(peer),
			Sender: strings.ToLower(m.Sender.Hex()),
			Handle: hexutil.Encode(m.Handle[:]),
			SentAt: time.Unix(m.SentAt.Int64(), 0).UTC(),
		})
	}

	return messages, nil
}

func (a *ethAdapter) GetGroups(ctx context.Context) ([]models.Group, error) {
	out, err := a.call(ctx, "getGroups")
	if err != nil {
		return nil, err
	}

	raw := *abi.ConvertType(out[0], new([]chainGroup)).(*[]chainGroup)

	groups := make([]models.Group, 0, len(raw))
	for _, g := range raw {
		groups = append(groups, models.Group{
			ID:        g.Id.Uint64(),
			Name:      g.Name,
			Creator:   strings.ToLower(g.Creator.Hex()),
			CreatedAt: time.Unix(g.CreatedAt.Int64(), 0).UTC(),
		})
	}

	return groups, nil
}

func (a *ethAdapter) GetGroupMembers(ctx context.Context, groupID uint64) ([]string, error) {
	out, err := a.call(ctx, "getGroupMembers", new(big.Int).SetUint64(groupID))
	if err != nil {
		return nil, err
	}

	raw := *abi.ConvertType(out[0], new([]common.Address)).(*[]common.Address)

	members := make([]string, 0, len(raw))
	for _, addr := range raw {
		members = append(members, strings.ToLower(addr.Hex()))
	}

	return members, nil
}

// call packs an eth_call, executes it against the latest block and unpacks
// the outputs.
func (a *ethAdapter) call(ctx context.Context, method string, args ...any) ([]any, error) {
	data, err := a.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	from := common.HexToAddress(a.wallet.Address())
	out, err := a.backend.CallContract(ctx, ethereum.CallMsg{
		From: from,
		To:   &a.contract,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}

	unpacked, err := a.abi.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}

	return unpacked, nil
}

// submit packs, signs and sends a state-changing transaction, returning its
// hash without waiting for inclusion.
func (a *ethAdapter) submit(ctx context.Context, method string, args ...any) (string, error) {
	data, err := a.abi.Pack(method, args...)
	if err != nil {
		return "", fmt.Errorf("pack %s: %w", method, err)
	}

	from := common.HexToAddress(a.wallet.Address())

	nonce, err := a.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return "", fmt.Errorf("fetch nonce: %w", err)
	}

	gasPrice, err := a.backend.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("suggest gas price: %w", err)
	}

	gasLimit, err := a.backend.EstimateGas(ctx, ethereum.CallMsg{
		From: from,
		To:   &a.contract,
		Data: data,
	})
	if err != nil {
		return "", fmt.Errorf("estimate gas: %w", err)
	}

	tx := types.NewTransaction(nonce, a.contract, big.NewInt(0), gasLimit, gasPrice, data)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(a.chainID), a.wallet.PrivateKey())
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	if err = a.backend.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("send transaction: %w", err)
	}

	a.log.Debug().
		Str("method", method).
		Str("tx", signed.Hash().Hex()).
		Msg("transaction submitted")

	return signed.Hash().Hex(), nil
}

// decodeEncryptedValue converts the hex handle/proof pair into the ABI types
// the contract expects: a bytes32 handle and a variable-length proof.
func decodeEncryptedValue(value models.EncryptedValue) ([32]byte, []byte, error) {
	var handle [32]byte

	rawHandle, err := hexutil.Decode(value.Handle)
	if err != nil || len(rawHandle) != 32 {
		return handle, nil, fmt.Errorf("%w: handle %q", ErrInvalidEncryptedValue, value.Handle)
	}
	copy(handle[:], rawHandle)

	proof, err := hexutil.Decode(value.Proof)
	if err != nil || len(proof) == 0 {
		return handle, nil, fmt.Errorf("%w: empty or malformed proof", ErrInvalidEncryptedValue)
	}

	return handle, proof, nil
}
