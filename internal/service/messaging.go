// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ulmaulana/FHETalk-sub001/internal/contract"
	"github.com/ulmaulana/FHETalk-sub001/internal/logger"
	"github.com/ulmaulana/FHETalk-sub001/internal/store"
	"github.com/ulmaulana/FHETalk-sub001/models"
)

// messagingService is the private implementation of [MessagingService].
type messagingService struct {
	client          FhevmClient
	chain           contract.Messaging
	decryption      DecryptionService
	messages        store.MessageRepository
	groups          store.GroupRepository
	walletAddress   string
	contractAddress string
	log             *logger.Logger

	now func() time.Time
}

// NewMessagingService wires a [MessagingService].
func NewMessagingService(
	client FhevmClient,
	chain contract.Messaging,
	decryption DecryptionService,
	messages store.MessageRepository,
	groups store.GroupRepository,
	walletAddress string,
	contractAddress string,
	log *logger.Logger,
) MessagingService {
	if log == nil {
		log = logger.Nop()
	}

	return &messagingService{
		client:          client,
		chain:           chain,
		decryption:      decryption,
		messages:        messages,
		groups:          groups,
		walletAddress:   strings.ToLower(walletAddress),
		contractAddress: contractAddress,
		log:             log,
		now:             time.Now,
	}
}

// SendDirectMessage implements [MessagingService]: encrypt the value, submit
// it on-chain, then cache the message locally with the clear value already
// set (the sender knows its own plaintext).
func (s *messagingService) SendDirectMessage(ctx context.Context, to string, value uint64) (models.Message, error) {
	encrypted, err := s.encrypt(ctx, value)
	if err != nil {
		return models.Message{}, err
	}

	if _, err = s.chain.SendDirectMessage(ctx, to, encrypted); err != nil {
		return models.Message{}, mapTransportError(err)
	}

	message := models.Message{
		ClientID: uuid.NewString(),
		Kind:     models.DirectMessage,
		Peer:     strings.ToLower(to),
		Sender:   s.walletAddress,
		Handle:   encrypted.Handle,
		Value:    &value,
		SentAt:   s.now().UTC(),
	}

	if err = s.messages.SaveMessages(ctx, message); err != nil {
		s.log.Warn().Err(err).Msg("failed to cache sent message")
	}

	return message, nil
}

// SendGroupMessage implements [MessagingService].
func (s *messagingService) SendGroupMessage(ctx context.Context, groupID uint64, value uint64) (models.Message, error) {
	encrypted, err := s.encrypt(ctx, value)
	if err != nil {
		return models.Message{}, err
	}

	if _, err = s.chain.SendGroupMessage(ctx, groupID, encrypted); err != nil {
		return models.Message{}, mapTransportError(err)
	}

	message := models.Message{
		ClientID: uuid.NewString(),
		Kind:     models.GroupMessage,
		GroupID:  groupID,
		Sender:   s.walletAddress,
		Handle:   encrypted.Handle,
		Value:    &value,
		SentAt:   s.now().UTC(),
	}

	if err = s.messages.SaveMessages(ctx, message); err != nil {
		s.log.Warn().Err(err).Msg("failed to cache sent message")
	}

	return message, nil
}

func (s *messagingService) encrypt(ctx context.Context, value uint64) (models.EncryptedValue, error) {
	if value > math.MaxUint32 {
		return models.EncryptedValue{}, ErrValueTooLarge
	}

	encrypted, err := s.client.Encrypt(ctx, models.EncryptRequest{
		Value:           value,
		ContractAddress: s.contractAddress,
		UserAddress:     s.walletAddress,
	})
	if err != nil {
		return models.EncryptedValue{}, mapTransportError(err)
	}

	return encrypted, nil
}

// CreateGroup implements [MessagingService].
func (s *messagingService) CreateGroup(ctx context.Context, name string) (string, error) {
	txHash, err := s.chain.CreateGroup(ctx, name)
	if err != nil {
		return "", mapTransportError(err)
	}
	return txHash, nil
}

// JoinGroup implements [MessagingService].
func (s *messagingService) JoinGroup(ctx context.Context, groupID uint64) (string, error) {
	txHash, err := s.chain.JoinGroup(ctx, groupID)
	if err != nil {
		return "", mapTransportError(err)
	}
	return txHash, nil
}

// RefreshGroups implements [MessagingService].
func (s *messagingService) RefreshGroups(ctx context.Context) ([]models.Group, error) {
	groups, err := s.chain.GetGroups(ctx)
	if err != nil {
		return nil, mapTransportError(err)
	}

	if err = s.groups.SaveGroups(ctx, groups...); err != nil {
		s.log.Warn().Err(err).Msg("failed to cache groups")
	}

	return groups, nil
}

// GetGroups implements [MessagingService].
func (s *messagingService) GetGroups(ctx context.Context) ([]models.Group, error) {
	return s.groups.GetGroups(ctx)
}

// SyncGroupMessages implements [MessagingService].
func (s *messagingService) SyncGroupMessages(ctx context.Context, groupID uint64) ([]models.Message, error) {
	fetched, err := s.chain.GetGroupMessages(ctx, groupID)
	if err != nil {
		return nil, mapTransportError(err)
	}

	key := (&models.Message{Kind: models.GroupMessage, GroupID: groupID}).ConversationKey()
	return s.mergeAndDecrypt(ctx, key, fetched)
}

// SyncDirectMessages implements [MessagingService].
func (s *messagingService) SyncDirectMessages(ctx context.Context, peer string) ([]models.Message, error) {
	fetched, err := s.chain.GetDirectMessages(ctx, peer)
	if err != nil {
		return nil, mapTransportError(err)
	}

	key := (&models.Message{Kind: models.DirectMessage, Peer: peer}).ConversationKey()
	return s.mergeAndDecrypt(ctx, key, fetched)
}

// mergeAndDecrypt upserts fetched messages into the cache, attempts to
// decrypt any message still lacking a clear value, and returns the merged
// conversation. Decryption failures are per-message and non-fatal: the
// message stays cached undecrypted and a later sync retries.
func (s *messagingService) mergeAndDecrypt(ctx context.Context, conversationKey string, fetched []models.Message) ([]models.Message, error) {
	if len(fetched) > 0 {
		if err := s.messages.SaveMessages(ctx, fetched...); err != nil {
			return nil, err
		}
	}

	cached, err := s.messages.GetConversation(ctx, conversationKey)
	if err != nil {
		return nil, err
	}

	for i := range cached {
		if cached[i].Decrypted() {
			continue
		}

		value, err := s.decryption.DecryptUser(ctx, cached[i].Handle, s.contractAddress)
		if err != nil {
			s.log.Warn().Err(err).Str("handle", cached[i].Handle).Msg("message decryption failed")
			continue
		}

		if err = s.messages.SetDecryptedValue(ctx, cached[i].Handle, value); err != nil {
			s.log.Warn().Err(err).Str("handle", cached[i].Handle).Msg("failed to cache decrypted value")
		}
		cached[i].Value = &value
	}

	return cached, nil
}

// SyncAll implements [MessagingService]: refresh the group list and sync
// every group conversation. Per-group failures are logged and skipped so one
// broken group does not stall the rest.
func (s *messagingService) SyncAll(ctx context.Context) error {
	groups, err := s.RefreshGroups(ctx)
	if err != nil {
		return err
	}

	for _, group := range groups {
		if _, err := s.SyncGroupMessages(ctx, group.ID); err != nil {
			s.log.Warn().Err(err).Uint64("groupID", group.ID).Msg("group sync failed")
		}
	}

	return nil
}

// GetConversation implements [MessagingService].
func (s *messagingService) GetConversation(ctx context.Context, conversationKey string) ([]models.Message, error) {
	return s.messages.GetConversation(ctx, conversationKey)
}
