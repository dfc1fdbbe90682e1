// SPDX-License-Identifier: Apache-2.0

package relayer

import (
	"crypto/rand"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/curve25519"

	"github.com/ulmaulana/FHETalk-sub001/models"
)

// generateKeypair produces a fresh ephemeral X25519 keypair. The relayer
// encrypts user-decrypt results to the public half; the private half never
// leaves the client.
func generateKeypair() (models.Keypair, error) {
	private := make([]byte, curve25519.ScalarSize)
	if _, err := rand.Read(private); err != nil {
		return models.Keypair{}, fmt.Errorf("generate keypair: %w", err)
	}

	public, err := curve25519.X25519(private, curve25519.Basepoint)
	if err != nil {
		return models.Keypair{}, fmt.Errorf("generate keypair: %w", err)
	}

	return models.Keypair{
		PublicKey:  hexutil.Encode(public),
		PrivateKey: hexutil.Encode(private),
	}, nil
}
