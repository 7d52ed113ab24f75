package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-writenest/internal/config"
	"github.com/MKhiriev/go-writenest/internal/logger"
	"github.com/MKhiriev/go-writenest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStorageConfig(t *testing.T, key string) config.ClientStorage {
	t.Helper()
	return config.ClientStorage{
		DB:         config.ClientDB{DSN: filepath.Join(t.TempDir(), "nested", "writenest.db")},
		StorageKey: key,
	}
}

func TestNewClientStorages_EmptyKey(t *testing.T) {
	_, err := NewClientStorages(testStorageConfig(t, ""), logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create sealer")
}

func TestNewClientStorages_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := testStorageConfig(t, "test-storage-key")
	identity := models.Identity{ID: 3, Name: "Bob", Email: "bob@example.com", RoleID: 1}

	first, err := NewClientStorages(cfg, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, first.Sessions.SaveSession(ctx, "header.payload.sig", identity))
	require.NoError(t, first.Drafts.SaveDraft(ctx, models.PostForm{Title: "Draft"}))
	require.NoError(t, first.Handoff.PutEditArticle(ctx, models.Article{ID: 9, Title: "Handed"}))

	// the raw token never reaches the database
	var raw []byte
	require.NoError(t, first.db.QueryRow(
		"SELECT entry_value FROM kv_entries WHERE scope = ? AND entry_key = ?", ScopeLocal, KeyAuthToken,
	).Scan(&raw))
	assert.NotContains(t, string(raw), "header.payload.sig")
	require.NoError(t, first.Close())

	second, err := NewClientStorages(cfg, logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	session, err := second.Sessions.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "header.payload.sig", session.Token.String())
	assert.Equal(t, identity, session.Identity)

	draft, err := second.Drafts.LoadDraft(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Draft", draft.Title)

	// session scope does not survive a restart
	_, err = second.Handoff.TakeEditArticle(ctx)
	assert.ErrorIs(t, err, ErrHandoffNotFound)
}

func TestNewClientStorages_WrongKeyCorruptsSession(t *testing.T) {
	ctx := context.Background()
	cfg := testStorageConfig(t, "key-one")

	first, err := NewClientStorages(cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Sessions.SaveSession(ctx, "tok", models.Identity{ID: 1}))
	require.NoError(t, first.Close())

	cfg.StorageKey = "key-two"
	second, err := NewClientStorages(cfg, logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	_, err = second.Sessions.LoadSession(ctx)
	assert.ErrorIs(t, err, ErrSessionCorrupted)
}

func TestClientStorages_CloseWithoutDB(t *testing.T) {
	assert.NoError(t, (&ClientStorages{}).Close())
}
