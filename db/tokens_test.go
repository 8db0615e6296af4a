package db

import (
	"context"
	"os"
	"testing"

	"SlackSandbox/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowConversion_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		record store.TokenRecord
	}{
		{
			name:   "full record",
			record: store.NewRecord("xoxb-1", map[string]any{"id": "T1", "name": "Sandbox"}, map[string]any{"id": "U1"}),
		},
		{
			name:   "absent token and user",
			record: store.NewRecord("", map[string]any{"id": "T2"}, nil),
		},
		{
			name:   "empty team object",
			record: store.NewRecord("xoxb-3", map[string]any{}, nil),
		},
		{
			name:   "empty record",
			record: store.TokenRecord{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			row, err := toRow(tc.record)
			require.NoError(t, err)
			assert.EqualValues(t, installationID, row.ID)

			got, err := fromRow(row)
			require.NoError(t, err)
			assert.Equal(t, tc.record, got)
		})
	}
}

func TestToRow_TeamPresence(t *testing.T) {
	absent, err := toRow(store.NewRecord("xoxb-1", nil, nil))
	require.NoError(t, err)
	assert.Nil(t, absent.Team)

	empty, err := toRow(store.NewRecord("xoxb-1", map[string]any{}, nil))
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), empty.Team)
}

func TestFromRow_MalformedTeam(t *testing.T) {
	_, err := fromRow(TokenRow{Team: []byte("{oops")})
	assert.Error(t, err)
}

// TestTokenStore_Postgres runs against a real database when one is configured.
func TestTokenStore_Postgres(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	conn, err := Open(dsn)
	require.NoError(t, err)
	ts := NewTokenStore(conn)
	ctx := context.Background()

	require.NoError(t, conn.Exec("DELETE FROM token_records").Error)
	assert.Error(t, ts.Load(ctx).Err)

	first := store.NewRecord("xoxb-1", map[string]any{"id": "T1"}, map[string]any{"id": "U1"})
	require.NoError(t, ts.Save(ctx, first))
	second := store.NewRecord("xoxb-2", map[string]any{"id": "T2"}, nil)
	require.NoError(t, ts.Save(ctx, second))

	res := ts.Load(ctx)
	require.NoError(t, res.Err)
	assert.Equal(t, second, res.Record)
}
