// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ulmaulana/FHETalk-sub001/internal/crypto"
	"github.com/ulmaulana/FHETalk-sub001/internal/logger"
	"github.com/ulmaulana/FHETalk-sub001/internal/store"
	"github.com/ulmaulana/FHETalk-sub001/models"
)

// decryptionService is the private implementation of [DecryptionService].
//
// Credentials are cached per (user, contract set) key. A credential is
// created lazily: ephemeral keypair from the fhevm instance, EIP-712
// signature from the wallet, validity window from validityDays. Cache
// failures are invisible here: the store swallows them and a fresh
// credential is simply created next time.
type decryptionService struct {
	client       FhevmClient
	signer       crypto.DecryptionSigner
	wallet       *crypto.Wallet
	signatures   store.SignatureStore
	validityDays int64
	log          *logger.Logger

	// now is injectable for expiry tests.
	now func() time.Time
}

// NewDecryptionService wires a [DecryptionService].
func NewDecryptionService(
	client FhevmClient,
	signer crypto.DecryptionSigner,
	wallet *crypto.Wallet,
	signatures store.SignatureStore,
	validityDays int64,
	log *logger.Logger,
) DecryptionService {
	if log == nil {
		log = logger.Nop()
	}
	if validityDays <= 0 {
		validityDays = 7
	}

	return &decryptionService{
		client:       client,
		signer:       signer,
		wallet:       wallet,
		signatures:   signatures,
		validityDays: validityDays,
		log:          log,
		now:          time.Now,
	}
}

// EnsureCredential implements [DecryptionService].
func (s *decryptionService) EnsureCredential(ctx context.Context, contracts []string) (*models.DecryptionSignature, error) {
	key := models.SignatureCacheKey(s.wallet.Address(), contracts)

	if cached := s.signatures.Get(ctx, key); cached != nil && cached.IsValidAt(s.now()) {
		return cached, nil
	}

	credential, err := s.createCredential(contracts)
	if err != nil {
		return nil, err
	}

	s.signatures.Set(ctx, key, credential)
	s.log.Debug().Str("key", key).Time("expiresAt", credential.ExpiresAt()).Msg("decryption credential created")

	return credential, nil
}

func (s *decryptionService) createCredential(contracts []string) (*models.DecryptionSignature, error) {
	state := s.client.State()
	if !state.Initialized || state.Instance == nil {
		return nil, ErrClientNotReady
	}

	keypair, err := state.Instance.GenerateKeypair()
	if err != nil {
		return nil, fmt.Errorf("generate keypair: %w", mapTransportError(err))
	}

	startTimestamp := s.now().Unix()
	signature, err := s.signer.SignUserDecryptRequest(s.wallet, crypto.UserDecryptSignParams{
		PublicKey:         keypair.PublicKey,
		ContractAddresses: contracts,
		StartTimestamp:    startTimestamp,
		DurationDays:      s.validityDays,
	})
	if err != nil {
		return nil, fmt.Errorf("sign decryption credential: %w", err)
	}

	return &models.DecryptionSignature{
		PrivateKey:        keypair.PrivateKey,
		PublicKey:         keypair.PublicKey,
		Signature:         signature,
		ContractAddresses: contracts,
		UserAddress:       s.wallet.Address(),
		StartTimestamp:    startTimestamp,
		DurationDays:      s.validityDays,
	}, nil
}

// DecryptUser implements [DecryptionService].
func (s *decryptionService) DecryptUser(ctx context.Context, handle, contractAddress string) (uint64, error) {
	credential, err := s.EnsureCredential(ctx, []string{contractAddress})
	if err != nil {
		return 0, err
	}

	value, err := s.client.Decrypt(ctx, models.DecryptRequest{
		Handle:          handle,
		ContractAddress: contractAddress,
		Signature:       credential,
	})
	if err != nil {
		return 0, mapTransportError(err)
	}

	return value, nil
}

// DecryptPublic implements [DecryptionService].
func (s *decryptionService) DecryptPublic(ctx context.Context, handle string) (uint64, error) {
	value, err := s.client.Decrypt(ctx, models.DecryptRequest{
		Handle:           handle,
		UsePublicDecrypt: true,
	})
	if err != nil {
		return 0, mapTransportError(err)
	}

	return value, nil
}

// PurgeExpired implements [DecryptionService].
func (s *decryptionService) PurgeExpired(ctx context.Context) int {
	now := s.now()
	purged := 0

	for _, key := range s.signatures.Keys(ctx) {
		credential := s.signatures.Get(ctx, key)
		if credential == nil || credential.IsValidAt(now) {
			continue
		}

		s.signatures.Remove(ctx, key)
		purged++
	}

	if purged > 0 {
		s.log.Info().Int("purged", purged).Msg("expired decryption credentials removed")
	}

	return purged
}
