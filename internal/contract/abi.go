// SPDX-License-Identifier: Apache-2.0

package contract

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// fhetalkABIJSON is the ABI of the FHETalk messaging contract. Message
// payloads live on-chain only as euint32 handles; the clear values never
// appear in any of these signatures.
const fhetalkABIJSON = `[
  {"type":"function","name":"createGroup","stateMutability":"nonpayable",
   "inputs":[{"name":"name","type":"string"}],
   "outputs":[{"name":"groupId","type":"uint256"}]},
  {"type":"function","name":"joinGroup","stateMutability":"nonpayable",
   "inputs":[{"name":"groupId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"sendGroupMessage","stateMutability":"nonpayable",
   "inputs":[{"name":"groupId","type":"uint256"},
             {"name":"handle","type":"bytes32"},
             {"name":"inputProof","type":"bytes"}],"outputs":[]},
  {"type":"function","name":"sendDirectMessage","stateMutability":"nonpayable",
   "inputs":[{"name":"to","type":"address"},
             {"name":"handle","type":"bytes32"},
             {"name":"inputProof","type":"bytes"}],"outputs":[]},
  {"type":"function","name":"getGroupMessages","stateMutability":"view",
   "inputs":[{"name":"groupId","type":"uint256"}],
   "outputs":[{"name":"messages","type":"tuple[]","components":[
     {"name":"sender","type":"address"},
     {"name":"handle","type":"bytes32"},
     {"name":"sentAt","type":"uint256"}]}]},
  {"type":"function","name":"getDirectMessages","stateMutability":"view",
   "inputs":[{"name":"peer","type":"address"}],
   "outputs":[{"name":"messages","type":"tuple[]","components":[
     {"name":"sender","type":"address"},
     {"name":"handle","type":"bytes32"},
     {"name":"sentAt","type":"uint256"}]}]},
  {"type":"function","name":"getGroups","stateMutability":"view",
   "inputs":[],
   "outputs":[{"name":"groups","type":"tuple[]","components":[
     {"name":"id","type":"uint256"},
     {"name":"name","type":"string"},
     {"name":"creator","type":"address"},
     {"name":"createdAt","type":"uint256"}]}]},
  {"type":"function","name":"getGroupMembers","stateMutability":"view",
   "inputs":[{"name":"groupId","type":"uint256"}],
   "outputs":[{"name":"members","type":"address[]"}]}
]`

// chainMessage mirrors the contract's message tuple for ABI decoding.
type chainMessage struct {
	Sender common.Address
	Handle [32]byte
	SentAt *big.Int
}

// chainGroup mirrors the contract's group tuple for ABI decoding.
type chainGroup struct {
	Id        *big.Int
	Name      string
	Creator   common.Address
	CreatedAt *big.Int
}

func parseABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(fhetalkABIJSON))
}
