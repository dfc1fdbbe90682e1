// SPDX-License-Identifier: Apache-2.0

package contract

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/ulmaulana/FHETalk-sub001/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/contract_mock.go -package=mock

// Messaging is the FHETalk contract surface the services depend on. Write
// operations return the submitted transaction hash; confirmation is not
// awaited.
type Messaging interface {
	CreateGroup(ctx context.Context, name string) (string, error)
	JoinGroup(ctx context.Context, groupID uint64) (string, error)
	SendGroupMessage(ctx context.Context, groupID uint64, value models.EncryptedValue) (string, error)
	SendDirectMessage(ctx context.Context, to string, value models.EncryptedValue) (string, error)

	GetGroupMessages(ctx context.Context, groupID uint64) ([]models.Message, error)
	GetDirectMessages(ctx context.Context, peer string) ([]models.Message, error)
	GetGroups(ctx context.Context) ([]models.Group, error)
	GetGroupMembers(ctx context.Context, groupID uint64) ([]string, error)
}

// Backend is the subset of ethclient.Client the adapter needs. Narrowing the
// dependency keeps the adapter testable without a node.
type Backend interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}
