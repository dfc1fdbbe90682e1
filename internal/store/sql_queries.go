// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// Query builders are kept as standalone functions so they can be unit-tested
// without a database. SQLite uses ? placeholders, squirrel's default.

func buildUpsertMessageQuery(clientID, kind string, groupID uint64, peer, sender, handle string, sentAt int64) (string, []any, error) {
	return sq.Insert("messages").
		Columns("client_id", "kind", "group_id", "peer", "sender", "handle", "sent_at").
		Values(clientID, kind, groupID, peer, sender, handle, sentAt).
		Suffix("ON CONFLICT(handle) DO UPDATE SET sent_at = excluded.sent_at").
		ToSql()
}

func buildSelectConversationQuery(kind string, groupID uint64, peer string) (string, []any, error) {
	query := sq.Select("client_id", "kind", "group_id", "peer", "sender", "handle", "value", "sent_at").
		From("messages").
		Where(sq.Eq{"kind": kind}).
		OrderBy("sent_at ASC")

	if kind == "group" {
		query = query.Where(sq.Eq{"group_id": groupID})
	} else {
		query = query.Where(sq.Eq{"peer": peer})
	}

	return query.ToSql()
}

func buildSetDecryptedValueQuery(handle string, value uint64) (string, []any, error) {
	return sq.Update("messages").
		Set("value", value).
		Where(sq.Eq{"handle": handle}).
		ToSql()
}

func buildUpsertGroupQuery(id uint64, name, creator, members string, createdAt int64) (string, []any, error) {
	return sq.Insert("groups").
		Columns("id", "name", "creator", "members", "created_at").
		Values(id, name, creator, members, createdAt).
		Suffix("ON CONFLICT(id) DO UPDATE SET name = excluded.name, members = excluded.members").
		ToSql()
}

func buildSelectGroupsQuery() (string, []any, error) {
	return sq.Select("id", "name", "creator", "members", "created_at").
		From("groups").
		OrderBy("id ASC").
		ToSql()
}

func buildUpsertSignatureQuery(key string, payload []byte, expiresAt int64) (string, []any, error) {
	return sq.Insert("signatures").
		Columns("key", "payload", "expires_at").
		Values(key, payload, expiresAt).
		Suffix("ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, expires_at = excluded.expires_at").
		ToSql()
}

func buildSelectSignatureQuery(key string) (string, []any, error) {
	return sq.Select("payload").
		From("signatures").
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildDeleteSignatureQuery(key string) (string, []any, error) {
	return sq.Delete("signatures").
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildSelectSignatureKeysQuery() (string, []any, error) {
	return sq.Select("key").From("signatures").ToSql()
}
