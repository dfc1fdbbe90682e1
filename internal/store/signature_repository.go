package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/ulmaulana/FHETalk-sub001/internal/logger"
	"github.com/ulmaulana/FHETalk-sub001/models"
)

// sqliteSignatureStore persists decryption credentials in the local SQLite
// database so they survive restarts. Like every [SignatureStore], it is
// best-effort: failures are logged as warnings and swallowed.
type sqliteSignatureStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteSignatureStore returns a [SignatureStore] backed by db.
func NewSQLiteSignatureStore(db *DB, log *logger.Logger) SignatureStore {
	return &sqliteSignatureStore{db: db, logger: log}
}

func (s *sqliteSignatureStore) Get(ctx context.Context, key string) *models.DecryptionSignature {
	query, args, err := buildSelectSignatureQuery(key)
	if err != nil {
		s.warn(err, "build signature select")
		return nil
	}

	var payload []byte
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.warn(err, "read cached signature")
		}
		return nil
	}

	var sig models.DecryptionSignature
	if err = json.Unmarshal(payload, &sig); err != nil {
		s.warn(err, "decode cached signature")
		return nil
	}
	return &sig
}

func (s *sqliteSignatureStore) Set(ctx context.Context, key string, sig *models.DecryptionSignature) {
	if sig == nil {
		return
	}

	payload, err := json.Marshal(sig)
	if err != nil {
		s.warn(err, "encode signature")
		return
	}

	query, args, err := buildUpsertSignatureQuery(key, payload, sig.ExpiresAt().Unix())
	if err != nil {
		s.warn(err, "build signature upsert")
		return
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.warn(err, "cache signature")
	}
}

func (s *sqliteSignatureStore) Remove(ctx context.Context, key string) {
	query, args, err := buildDeleteSignatureQuery(key)
	if err != nil {
		s.warn(err, "build signature delete")
		return
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.warn(err, "remove cached signature")
	}
}

func (s *sqliteSignatureStore) Clear(ctx context.Context) {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM signatures"); err != nil {
		s.warn(err, "clear signature cache")
	}
}

func (s *sqliteSignatureStore) Keys(ctx context.Context) []string {
	query, args, err := buildSelectSignatureKeysQuery()
	if err != nil {
		s.warn(err, "build signature keys select")
		return nil
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.warn(err, "list cached signatures")
		return nil
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			s.warn(err, "scan signature key")
			return nil
		}
		keys = append(keys, key)
	}
	if err = rows.Err(); err != nil {
		s.warn(err, "iterate signature keys")
		return nil
	}
	return keys
}

func (s *sqliteSignatureStore) warn(err error, msg string) {
	s.logger.Warn().Err(err).Msg(msg)
}
