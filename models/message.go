package models

import (
	"strconv"
	"strings"
	"time"
)

// MessageKind distinguishes group messages from direct messages.
type MessageKind string

const (
	GroupMessage  MessageKind = "group"
	DirectMessage MessageKind = "direct"
)

// Message is one encrypted chat message, either fetched from the chain or
// composed locally. The payload itself never leaves the chain in clear form:
// Handle references the on-chain ciphertext, and Value is populated only
// after a successful decryption on this device.
type Message struct {
	// ClientID is the locally generated UUID used as the cache primary key.
	ClientID string

	Kind MessageKind

	// GroupID identifies the group for group messages; zero for DMs.
	GroupID uint64

	// Peer is the counterparty address for direct messages; empty for group
	// messages.
	Peer string

	// Sender is the address that sent the message on-chain.
	Sender string

	// Handle references the encrypted payload on-chain.
	Handle string

	// Value is the decrypted payload, nil until decrypted locally.
	Value *uint64

	SentAt time.Time
}

// Decrypted reports whether the message payload has been decrypted locally.
func (m *Message) Decrypted() bool {
	return m.Value != nil
}

// ConversationKey returns the cache key grouping messages of one
// conversation: the group id for group chats, the peer address for DMs.
func (m *Message) ConversationKey() string {
	if m.Kind == GroupMessage {
		return "group:" + strconv.FormatUint(m.GroupID, 10)
	}
	return "dm:" + strings.ToLower(m.Peer)
}
