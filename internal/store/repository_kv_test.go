package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-writenest/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{DB: db, logger: logger.Nop()}
}

func newTestKVRepo(t *testing.T) (*kvRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &kvRepository{
		DB:     newDBFromSQL(db),
		logger: logger.Nop(),
		now:    func() time.Time { return fixed },
	}, mock
}

// ── Put ─────────────────────────────────────────

func TestKVRepository_Put_Success(t *testing.T) {
	repo, mock := newTestKVRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs(ScopeLocal, KeyAuthToken, []byte("sealed"), true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs(ScopeLocal, KeyCurrentUser, []byte(`{"id":1}`), false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err := repo.Put(context.Background(), ScopeLocal,
		Entry{Key: KeyAuthToken, Value: []byte("sealed"), Sealed: true},
		Entry{Key: KeyCurrentUser, Value: []byte(`{"id":1}`)},
	)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_Put_NoEntries(t *testing.T) {
	repo, mock := newTestKVRepo(t)

	require.NoError(t, repo.Put(context.Background(), ScopeLocal))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_Put_BeginError(t *testing.T) {
	repo, mock := newTestKVRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("locked"))

	err := repo.Put(context.Background(), ScopeLocal, Entry{Key: KeyDraftPost, Value: []byte("{}")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestKVRepository_Put_ExecErrorRollsBack(t *testing.T) {
	repo, mock := newTestKVRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO kv_entries").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Put(context.Background(), ScopeLocal, Entry{Key: KeyDraftPost, Value: []byte("{}")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "local/draftPost")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_Put_CommitError(t *testing.T) {
	repo, mock := newTestKVRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO kv_entries").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(errors.New("io"))

	err := repo.Put(context.Background(), ScopeSession, Entry{Key: KeyEditArticle, Value: []byte("{}")})
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

// ── Get ─────────────────────────────────────────

func TestKVRepository_Get_Success(t *testing.T) {
	repo, mock := newTestKVRepo(t)

	rows := sqlmock.NewRows([]string{"entry_value", "sealed"}).AddRow([]byte("blob"), true)
	mock.ExpectQuery("SELECT entry_value, sealed FROM kv_entries").
		WithArgs(ScopeLocal, KeyAuthToken).
		WillReturnRows(rows)

	entry, err := repo.Get(context.Background(), ScopeLocal, KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, KeyAuthToken, entry.Key)
	assert.Equal(t, []byte("blob"), entry.Value)
	assert.True(t, entry.Sealed)
}

func TestKVRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestKVRepo(t)

	mock.ExpectQuery("SELECT entry_value, sealed FROM kv_entries").
		WithArgs(ScopeLocal, KeyDraftPost).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), ScopeLocal, KeyDraftPost)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestKVRepository_Get_DBError(t *testing.T) {
	repo, mock := newTestKVRepo(t)

	mock.ExpectQuery("SELECT entry_value").WillReturnError(errors.New("boom"))

	_, err := repo.Get(context.Background(), ScopeLocal, KeyDraftPost)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
}

// ── Delete / Clear ──────────────────────────────

func TestKVRepository_Delete(t *testing.T) {
	repo, mock := newTestKVRepo(t)

	mock.ExpectExec("DELETE FROM kv_entries").
		WithArgs(ScopeLocal, KeyAuthToken, KeyCurrentUser).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.Delete(context.Background(), ScopeLocal, KeyAuthToken, KeyCurrentUser))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_Delete_NoKeys(t *testing.T) {
	repo, mock := newTestKVRepo(t)

	require.NoError(t, repo.Delete(context.Background(), ScopeLocal))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_Delete_Error(t *testing.T) {
	repo, mock := newTestKVRepo(t)

	mock.ExpectExec("DELETE FROM kv_entries").WillReturnError(errors.New("readonly"))

	err := repo.Delete(context.Background(), ScopeLocal, KeyDraftPost)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestKVRepository_Clear(t *testing.T) {
	repo, mock := newTestKVRepo(t)

	mock.ExpectExec("DELETE FROM kv_entries WHERE scope").
		WithArgs(ScopeSession).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.Clear(context.Background(), ScopeSession))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_Clear_Error(t *testing.T) {
	repo, mock := newTestKVRepo(t)

	mock.ExpectExec("DELETE FROM kv_entries").WillReturnError(errors.New("readonly"))

	assert.ErrorIs(t, repo.Clear(context.Background(), ScopeSession), ErrExecutingQuery)
}
