// SPDX-License-Identifier: Apache-2.0

package contract

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulmaulana/FHETalk-sub001/internal/crypto"
	"github.com/ulmaulana/FHETalk-sub001/internal/logger"
	"github.com/ulmaulana/FHETalk-sub001/models"
)

const (
	testContractAddress = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	testPeerAddress     = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	testChainID         = uint64(31337)
)

// fakeBackend answers eth_calls with pre-packed outputs and records sent
// transactions.
type fakeBackend struct {
	outputs  map[string][]byte
	lastCall *ethereum.CallMsg
	sent     []*types.Transaction
}

func (f *fakeBackend) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.lastCall = &msg

	parsed, err := parseABI()
	if err != nil {
		return nil, err
	}
	method, err := parsed.MethodById(msg.Data[:4])
	if err != nil {
		return nil, err
	}

	out, ok := f.outputs[method.Name]
	if !ok {
		return nil, errors.New("unexpected call: " + method.Name)
	}
	return out, nil
}

func (f *fakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return 7, nil
}

func (f *fakeBackend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *fakeBackend) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return 100_000, nil
}

func (f *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.sent = append(f.sent, tx)
	return nil
}

func newTestAdapter(t *testing.T) (Messaging, *fakeBackend, *crypto.Wallet) {
	t.Helper()

	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	wallet := crypto.NewWallet(key)

	backend := &fakeBackend{outputs: make(map[string][]byte)}
	adapter, err := NewAdapter(backend, testContractAddress, testChainID, wallet, logger.Nop())
	require.NoError(t, err)

	return adapter, backend, wallet
}

func packOutput(t *testing.T, method string, values ...any) []byte {
	t.Helper()
	parsed, err := parseABI()
	require.NoError(t, err)
	out, err := parsed.Methods[method].Outputs.Pack(values...)
	require.NoError(t, err)
	return out
}

func testEncryptedValue() models.EncryptedValue {
	return models.EncryptedValue{
		Handle: "0x" + strings.Repeat("ab", 32),
		Proof:  "0x" + strings.Repeat("cd", 16),
	}
}

func TestNewAdapter_InvalidContractAddress(t *testing.T) {
	_, err := NewAdapter(&fakeBackend{}, "not-an-address", testChainID, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestAdapter_GetGroupMessages(t *testing.T) {
	adapter, backend, _ := newTestAdapter(t)

	sentAt := time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC)
	var handle [32]byte
	copy(handle[:], hexutil.MustDecode("0x"+strings.Repeat("ab", 32)))

	backend.outputs["getGroupMessages"] = packOutput(t, "getGroupMessages", []chainMessage{
		{
			Sender: common.HexToAddress(testPeerAddress),
			Handle: handle,
			SentAt: big.NewInt(sentAt.Unix()),
		},
	})

	messages, err := adapter.GetGroupMessages(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	assert.Equal(t, models.GroupMessage, messages[0].Kind)
	assert.Equal(t, uint64(3), messages[0].GroupID)
	assert.Equal(t, strings.ToLower(testPeerAddress), messages[0].Sender)
	assert.Equal(t, "0x"+strings.Repeat("ab", 32), messages[0].Handle)
	assert.Equal(t, sentAt, messages[0].SentAt)
	assert.Nil(t, messages[0].Value)
}

func TestAdapter_GetDirectMessages(t *testing.T) {
	adapter, backend, wallet := newTestAdapter(t)

	var handle [32]byte
	copy(handle[:], hexutil.MustDecode("0x"+strings.Repeat("01", 32)))

	backend.outputs["getDirectMessages"] = packOutput(t, "getDirectMessages", []chainMessage{
		{
			Sender: common.HexToAddress(wallet.Address()),
			Handle: handle,
			SentAt: big.NewInt(1700000000),
		},
	})

	messages, err := adapter.GetDirectMessages(context.Background(), testPeerAddress)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	assert.Equal(t, models.DirectMessage, messages[0].Kind)
	assert.Equal(t, strings.ToLower(testPeerAddress), messages[0].Peer)
	assert.Equal(t, strings.ToLower(wallet.Address()), messages[0].Sender)

	// The read goes out as an eth_call from the wallet address.
	require.NotNil(t, backend.lastCall)
	assert.Equal(t, common.HexToAddress(wallet.Address()), backend.lastCall.From)
}

func TestAdapter_GetDirectMessages_InvalidPeer(t *testing.T) {
	adapter, _, _ := newTestAdapter(t)

	_, err := adapter.GetDirectMessages(context.Background(), "bogus")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestAdapter_GetGroups(t *testing.T) {
	adapter, backend, _ := newTestAdapter(t)

	backend.outputs["getGroups"] = packOutput(t, "getGroups", []chainGroup{
		{
			Id:        big.NewInt(1),
			Name:      "fhe-fans",
			Creator:   common.HexToAddress(testPeerAddress),
			CreatedAt: big.NewInt(1700000000),
		},
	})

	groups, err := adapter.GetGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)

	assert.Equal(t, uint64(1), groups[0].ID)
	assert.Equal(t, "fhe-fans", groups[0].Name)
	assert.Equal(t, strings.ToLower(testPeerAddress), groups[0].Creator)
}

func TestAdapter_GetGroupMembers(t *testing.T) {
	adapter, backend, _ := newTestAdapter(t)

	backend.outputs["getGroupMembers"] = packOutput(t, "getGroupMembers", []common.Address{
		common.HexToAddress(testPeerAddress),
		common.HexToAddress(testContractAddress),
	})

	members, err := adapter.GetGroupMembers(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{
		strings.ToLower(testPeerAddress),
		strings.ToLower(testContractAddress),
	}, members)
}

func TestAdapter_SendDirectMessage(t *testing.T) {
	adapter, backend, wallet := newTestAdapter(t)

	txHash, err := adapter.SendDirectMessage(context.Background(), testPeerAddress, testEncryptedValue())
	require.NoError(t, err)
	require.Len(t, backend.sent, 1)

	tx := backend.sent[0]
	assert.Equal(t, txHash, tx.Hash().Hex())
	assert.Equal(t, common.HexToAddress(testContractAddress), *tx.To())
	assert.Equal(t, uint64(7), tx.Nonce())

	// Call data matches the packed method input.
	parsed, err := parseABI()
	require.NoError(t, err)
	var handle [32]byte
	copy(handle[:], hexutil.MustDecode("0x"+strings.Repeat("ab", 32)))
	expected, err := parsed.Pack("sendDirectMessage",
		common.HexToAddress(testPeerAddress), handle, hexutil.MustDecode("0x"+strings.Repeat("cd", 16)))
	require.NoError(t, err)
	assert.Equal(t, expected, tx.Data())

	// The signature recovers to the wallet address.
	sender, err := types.Sender(types.LatestSignerForChainID(new(big.Int).SetUint64(testChainID)), tx)
	require.NoError(t, err)
	assert.Equal(t, wallet.Address(), sender.Hex())
}

func TestAdapter_SendGroupMessage(t *testing.T) {
	adapter, backend, _ := newTestAdapter(t)

	_, err := adapter.SendGroupMessage(context.Background(), 5, testEncryptedValue())
	require.NoError(t, err)
	require.Len(t, backend.sent, 1)
}

func TestAdapter_SendDirectMessage_InvalidRecipient(t *testing.T) {
	adapter, _, _ := newTestAdapter(t)

	_, err := adapter.SendDirectMessage(context.Background(), "bogus", testEncryptedValue())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestAdapter_SendGroupMessage_MalformedValue(t *testing.T) {
	adapter, _, _ := newTestAdapter(t)

	tests := []struct {
		name  string
		value models.EncryptedValue
	}{
		{"short handle", models.EncryptedValue{Handle: "0xab", Proof: "0xcd"}},
		{"bad hex handle", models.EncryptedValue{Handle: "zz", Proof: "0xcd"}},
		{"empty proof", models.EncryptedValue{Handle: "0x" + strings.Repeat("ab", 32), Proof: "0x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := adapter.SendGroupMessage(context.Background(), 1, tt.value)
			assert.ErrorIs(t, err, ErrInvalidEncryptedValue)
		})
	}
}

func TestAdapter_CreateGroup_EmptyName(t *testing.T) {
	adapter, _, _ := newTestAdapter(t)

	_, err := adapter.CreateGroup(context.Background(), "   ")
	assert.Error(t, err)
}
