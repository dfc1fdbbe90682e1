package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ulmaulana/FHETalk-sub001/internal/logger"
	"github.com/ulmaulana/FHETalk-sub001/models"
)

type messageRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewMessageRepository returns the SQLite-backed [MessageRepository].
func NewMessageRepository(db *DB, log *logger.Logger) MessageRepository {
	return &messageRepository{db: db, logger: log}
}

func (r *messageRepository) SaveMessages(ctx context.Context, messages ...models.Message) error {
	for _, m := range messages {
		clientID := m.ClientID
		if clientID == "" {
			clientID = uuid.NewString()
		}

		query, args, err := buildUpsertMessageQuery(
			clientID,
			string(m.Kind),
			m.GroupID,
			strings.ToLower(m.Peer),
			strings.ToLower(m.Sender),
			m.Handle,
			m.SentAt.Unix(),
		)
		if err != nil {
			return fmt.Errorf("build message upsert: %w", err)
		}

		if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).Str("handle", m.Handle).Msg("failed to cache message")
			return fmt.Errorf("save message (handle=%s): %w", m.Handle, err)
		}

		if m.Value != nil {
			if err = r.SetDecryptedValue(ctx, m.Handle, *m.Value); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *messageRepository) GetConversation(ctx context.Context, conversationKey string) ([]models.Message, error) {
	kind, groupID, peer, err := parseConversationKey(conversationKey)
	if err != nil {
		return nil, err
	}

	query, args, err := buildSelectConversationQuery(kind, groupID, peer)
	if err != nil {
		return nil, fmt.Errorf("build conversation select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("conversation", conversationKey).Msg("failed to query conversation")
		return nil, fmt.Errorf("query conversation: %w", err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var (
			m      models.Message
			kind   string
			value  sql.NullInt64
			sentAt int64
		)
		if err = rows.Scan(&m.ClientID, &kind, &m.GroupID, &m.Peer, &m.Sender, &m.Handle, &value, &sentAt); err != nil {
			return nil, fmt.Errorf("scan message row: %w", err)
		}

		m.Kind = models.MessageKind(kind)
		m.SentAt = time.Unix(sentAt, 0)
		if value.Valid {
			v := uint64(value.Int64)
			m.Value = &v
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversation rows: %w", err)
	}

	return messages, nil
}

func (r *messageRepository) SetDecryptedValue(ctx context.Context, handle string, value uint64) error {
	query, args, err := buildSetDecryptedValueQuery(handle, value)
	if err != nil {
		return fmt.Errorf("build decrypted value update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("store decrypted value: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("store decrypted value: %w", err)
	}
	if affected == 0 {
		return ErrMessageNotFound
	}

	return nil
}

// parseConversationKey splits the "group:<id>" / "dm:<peer>" keys produced by
// [models.Message.ConversationKey].
func parseConversationKey(key string) (kind string, groupID uint64, peer string, err error) {
	switch {
	case strings.HasPrefix(key, "group:"):
		id, parseErr := strconv.ParseUint(key[len("group:"):], 10, 64)
		if parseErr != nil {
			return "", 0, "", fmt.Errorf("invalid conversation key %q: %w", key, parseErr)
		}
		return "group", id, "", nil

	case strings.HasPrefix(key, "dm:"):
		return "direct", 0, strings.ToLower(key[len("dm:"):]), nil

	default:
		return "", 0, "", fmt.Errorf("invalid conversation key %q", key)
	}
}
