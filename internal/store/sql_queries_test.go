// SPDX-License-Identifier: Apache-2.0

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildUpsertMessageQuery(t *testing.T) {
	query, args, err := buildUpsertMessageQuery("id-1", "group", 7, "", "0xsender", "0xhandle", 1700000000)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into messages")
	require.Contains(t, q, "on conflict(handle)")
	require.Contains(t, query, "?")

	require.Len(t, args, 7)
	assert.Equal(t, "id-1", args[0])
	assert.Equal(t, "0xhandle", args[5])
}

func Test_buildSelectConversationQuery_Group(t *testing.T) {
	query, args, err := buildSelectConversationQuery("group", 7, "")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from messages")
	require.Contains(t, q, "group_id")
	require.Contains(t, q, "order by sent_at asc")
	require.NotContains(t, q, "peer =")

	assert.Equal(t, []any{"group", uint64(7)}, args)
}

func Test_buildSelectConversationQuery_Direct(t *testing.T) {
	query, args, err := buildSelectConversationQuery("direct", 0, "0xpeer")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "peer")
	require.NotContains(t, q, "group_id =")

	assert.Equal(t, []any{"direct", "0xpeer"}, args)
}

func Test_buildSignatureQueries(t *testing.T) {
	query, args, err := buildUpsertSignatureQuery("k", []byte(`{}`), 1700000000)
	require.NoError(t, err)
	require.Contains(t, strings.ToLower(query), "insert into signatures")
	require.Len(t, args, 3)

	query, args, err = buildSelectSignatureQuery("k")
	require.NoError(t, err)
	require.Contains(t, strings.ToLower(query), "select payload from signatures")
	assert.Equal(t, []any{"k"}, args)

	query, args, err = buildDeleteSignatureQuery("k")
	require.NoError(t, err)
	require.Contains(t, strings.ToLower(query), "delete from signatures")
	assert.Equal(t, []any{"k"}, args)

	query, _, err = buildSelectSignatureKeysQuery()
	require.NoError(t, err)
	require.Contains(t, strings.ToLower(query), "select key from signatures")
}
