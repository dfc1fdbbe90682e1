// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// eip712Signer is the private implementation of [DecryptionSigner]. It signs
// UserDecryptRequestVerification typed data the relayer verifies before
// serving re-encrypted values.
type eip712Signer struct {
	chainID           uint64
	verifyingContract string
}

// NewEIP712Signer constructs a [DecryptionSigner] bound to a chain and the
// decryption-verifier contract address.
func NewEIP712Signer(chainID uint64, verifyingContract string) DecryptionSigner {
	return &eip712Signer{chainID: chainID, verifyingContract: verifyingContract}
}

// SignUserDecryptRequest implements [DecryptionSigner]. The returned
// signature is 0x-prefixed with the recovery id in Ethereum's 27/28 form.
func (s *eip712Signer) SignUserDecryptRequest(wallet *Wallet, params UserDecryptSignParams) (string, error) {
	if wallet == nil {
		return "", fmt.Errorf("nil wallet")
	}

	contractAddresses := make([]any, 0, len(params.ContractAddresses))
	for _, address := range params.ContractAddresses {
		contractAddresses = append(contractAddresses, address)
	}

	typedData := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": {
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			"UserDecryptRequestVerification": {
				{Name: "publicKey", Type: "bytes"},
				{Name: "contractAddresses", Type: "address[]"},
				{Name: "contractsChainId", Type: "uint256"},
				{Name: "startTimestamp", Type: "uint256"},
				{Name: "durationDays", Type: "uint256"},
			},
		},
		PrimaryType: "UserDecryptRequestVerification",
		Domain: apitypes.TypedDataDomain{
			Name:              "Decryption",
			Version:           "1",
			ChainId:           math.NewHexOrDecimal256(int64(s.chainID)),
			VerifyingContract: s.verifyingContract,
		},
		Message: apitypes.TypedDataMessage{
			"publicKey":         params.PublicKey,
			"contractAddresses": contractAddresses,
			"contractsChainId":  new(big.Int).SetUint64(s.chainID).String(),
			"startTimestamp":    big.NewInt(params.StartTimestamp).String(),
			"durationDays":      big.NewInt(params.DurationDays).String(),
		},
	}

	digest, _, err := apitypes.TypedDataAndHash(typedData)
	if err != nil {
		return "", fmt.Errorf("hash typed data: %w", err)
	}

	signature, err := ethcrypto.Sign(digest, wallet.PrivateKey())
	if err != nil {
		return "", fmt.Errorf("sign typed data: %w", err)
	}

	// Normalize the recovery id to the 27/28 convention contracts expect.
	signature[64] += 27

	return hexutil.Encode(signature), nil
}
