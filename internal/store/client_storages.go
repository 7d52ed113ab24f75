package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-writenest/internal/config"
	"github.com/MKhiriev/go-writenest/internal/crypto"
	"github.com/MKhiriev/go-writenest/internal/logger"
)

// ClientStorages groups the client-side storages so they can be passed to
// the service layer as one value.
type ClientStorages struct {
	Sessions SessionStorage
	Drafts   DraftStorage
	Handoff  HandoffStorage

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. opens the SQLite file named by cfg.DB.DSN, creating it if needed;
//  2. runs pending migrations;
//  3. wipes the session scope left over from the previous run;
//  4. wires the storages over one [KeyValueRepository].
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	sealer, err := crypto.NewSealer(cfg.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("create sealer: %w", err)
	}

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := newClientStorages(db, sealer, logger)
	if err := storages.Handoff.ClearSessionScope(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("clear session scope: %w", err)
	}

	return storages, nil
}

func newClientStorages(db *DB, sealer crypto.Sealer, logger *logger.Logger) *ClientStorages {
	repo := NewKeyValueRepository(db, logger)

	return &ClientStorages{
		Sessions: NewSessionStorage(repo, sealer, logger),
		Drafts:   NewDraftStorage(repo),
		Handoff:  NewHandoffStorage(repo),
		db:       db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
