package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-writenest/internal/logger"
)

type kvRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewKeyValueRepository returns the SQLite-backed [KeyValueRepository].
func NewKeyValueRepository(db *DB, logger *logger.Logger) KeyValueRepository {
	return &kvRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *kvRepository) Put(ctx context.Context, scope string, entries ...Entry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Err(err).Str("func", "kvRepository.Put").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	now := r.now().UTC()
	for _, e := range entries {
		query, args, err := upsertEntryQuery(scope, e, now).ToSql()
		if err != nil {
			r.logger.Err(err).Str("func", "kvRepository.Put").Msg("failed to build upsert query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).
				Str("func", "kvRepository.Put").
				Str("scope", scope).
				Str("key", e.Key).
				Msg("failed to upsert entry")
			return fmt.Errorf("failed to save %s/%s: %w", scope, e.Key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		r.logger.Err(err).Str("func", "kvRepository.Put").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *kvRepository) Get(ctx context.Context, scope, key string) (Entry, error) {
	query, args, err := getEntryQuery(scope, key).ToSql()
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry := Entry{Key: key}
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&entry.Value, &entry.Sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrKeyNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "kvRepository.Get").
			Str("scope", scope).
			Str("key", key).
			Msg("failed to read entry")
		return Entry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

func (r *kvRepository) Delete(ctx context.Context, scope string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := deleteEntriesQuery(scope, keys).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "kvRepository.Delete").
			Str("scope", scope).
			Strs("keys", keys).
			Msg("failed to delete entries")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *kvRepository) Clear(ctx context.Context, scope string) error {
	query, args, err := clearScopeQuery(scope).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "kvRepository.Clear").Str("scope", scope).Msg("failed to clear scope")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
