// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulmaulana/FHETalk-sub001/internal/logger"
	"github.com/ulmaulana/FHETalk-sub001/migrations"
	"github.com/ulmaulana/FHETalk-sub001/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, migrations.Migrate(conn))

	return &DB{DB: conn, logger: logger.Nop()}
}

func groupMsg(groupID uint64, handle string, sentAt time.Time) models.Message {
	return models.Message{
		Kind:    models.GroupMessage,
		GroupID: groupID,
		Sender:  "0xSenDer",
		Handle:  handle,
		SentAt:  sentAt,
	}
}

func TestMessageRepository_SaveAndGetConversation(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository(newTestDB(t), logger.Nop())

	base := time.Now().Truncate(time.Second)
	require.NoError(t, repo.SaveMessages(ctx,
		groupMsg(1, "0xh2", base.Add(time.Minute)),
		groupMsg(1, "0xh1", base),
		groupMsg(2, "0xother", base),
	))

	got, err := repo.GetConversation(ctx, "group:1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Ascending send order regardless of insert order.
	assert.Equal(t, "0xh1", got[0].Handle)
	assert.Equal(t, "0xh2", got[1].Handle)
	assert.Equal(t, "0xsender", got[0].Sender)
	assert.False(t, got[0].Decrypted())
}

func TestMessageRepository_DirectConversation(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository(newTestDB(t), logger.Nop())

	now := time.Now().Truncate(time.Second)
	require.NoError(t, repo.SaveMessages(ctx, models.Message{
		Kind:   models.DirectMessage,
		Peer:   "0xPeerAddr",
		Sender: "0xme",
		Handle: "0xdm1",
		SentAt: now,
	}))

	got, err := repo.GetConversation(ctx, "dm:0xpeeraddr")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "0xpeeraddr", got[0].Peer)
}

func TestMessageRepository_UpsertKeepsDecryptedValue(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository(newTestDB(t), logger.Nop())

	now := time.Now().Truncate(time.Second)
	require.NoError(t, repo.SaveMessages(ctx, groupMsg(1, "0xh1", now)))
	require.NoError(t, repo.SetDecryptedValue(ctx, "0xh1", 42))

	// A later sync fetching the same handle must not wipe the value.
	require.NoError(t, repo.SaveMessages(ctx, groupMsg(1, "0xh1", now)))

	got, err := repo.GetConversation(ctx, "group:1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Value)
	assert.Equal(t, uint64(42), *got[0].Value)
}

func TestMessageRepository_SetDecryptedValue_UnknownHandle(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository(newTestDB(t), logger.Nop())

	err := repo.SetDecryptedValue(ctx, "0xmissing", 1)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestMessageRepository_InvalidConversationKey(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository(newTestDB(t), logger.Nop())

	_, err := repo.GetConversation(ctx, "bogus")
	assert.Error(t, err)

	_, err = repo.GetConversation(ctx, "group:notanumber")
	assert.Error(t, err)
}

func TestGroupRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewGroupRepository(newTestDB(t), logger.Nop())

	created := time.Now().Truncate(time.Second)
	require.NoError(t, repo.SaveGroups(ctx, models.Group{
		ID:        3,
		Name:      "lobby",
		Creator:   "0xCreator",
		Members:   []string{"0xA", "0xB"},
		CreatedAt: created,
	}))

	groups, err := repo.GetGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, uint64(3), g.ID)
	assert.Equal(t, "lobby", g.Name)
	assert.Equal(t, []string{"0xa", "0xb"}, g.Members)
	assert.True(t, g.HasMember("0xA"))
	assert.Equal(t, created.Unix(), g.CreatedAt.Unix())
}

func TestGroupRepository_UpsertUpdatesMembers(t *testing.T) {
	ctx := context.Background()
	repo := NewGroupRepository(newTestDB(t), logger.Nop())

	now := time.Now()
	require.NoError(t, repo.SaveGroups(ctx, models.Group{ID: 1, Name: "a", Creator: "0xc", Members: []string{"0xa"}, CreatedAt: now}))
	require.NoError(t, repo.SaveGroups(ctx, models.Group{ID: 1, Name: "a", Creator: "0xc", Members: []string{"0xa", "0xb"}, CreatedAt: now}))

	groups, err := repo.GetGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"0xa", "0xb"}, groups[0].Members)
}
