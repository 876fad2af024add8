package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/starmarket/internal/client/models"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_SaveLoadRoundtrip(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	u := &models.User{ID: 1, Username: "alice", Balance: 500, CreatedAt: "2025-01-15T10:00:00"}
	require.NoError(t, s.Save(ctx, u))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u, got)
}

func TestStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.Save(ctx, &models.User{ID: 1, Username: "alice", Balance: 500}))
	require.NoError(t, s.Save(ctx, &models.User{ID: 1, Username: "alice", Balance: 450}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(450), got.Balance)
}

func TestStore_LoadEmpty(t *testing.T) {
	s := setupStore(t)

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_LoadMalformedReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	_, err := s.db.ExecContext(ctx, `INSERT INTO metadata(key, value) VALUES(?, ?)`, userKey, []byte(`{not json`))
	require.NoError(t, err)

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_ClearRemovesRecord(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.Save(ctx, &models.User{ID: 1, Username: "alice"}))
	require.NoError(t, s.Clear(ctx))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "a cleared session must re-prompt authentication")
}
