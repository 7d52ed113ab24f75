package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-writenest/internal/crypto"
	"github.com/MKhiriev/go-writenest/internal/logger"
	"github.com/MKhiriev/go-writenest/models"
)

type sessionStorage struct {
	repo   KeyValueRepository
	sealer crypto.Sealer
	logger *logger.Logger
}

// NewSessionStorage returns a [SessionStorage] that seals the token with
// sealer before it reaches the database.
func NewSessionStorage(repo KeyValueRepository, sealer crypto.Sealer, logger *logger.Logger) SessionStorage {
	return &sessionStorage{repo: repo, sealer: sealer, logger: logger}
}

func (s *sessionStorage) SaveSession(ctx context.Context, token string, identity models.Identity) error {
	sealed, err := s.sealer.Seal([]byte(token))
	if err != nil {
		return fmt.Errorf("seal token: %w", err)
	}

	user, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	return s.repo.Put(ctx, ScopeLocal,
		Entry{Key: KeyAuthToken, Value: []byte(sealed), Sealed: true},
		Entry{Key: KeyCurrentUser, Value: user},
	)
}

func (s *sessionStorage) LoadSession(ctx context.Context) (models.Session, error) {
	tokenEntry, err := s.repo.Get(ctx, ScopeLocal, KeyAuthToken)
	if errors.Is(err, ErrKeyNotFound) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load token: %w", err)
	}

	raw := tokenEntry.Value
	if tokenEntry.Sealed {
		raw, err = s.sealer.Open(string(tokenEntry.Value))
		if err != nil {
			s.logger.Warn().Err(err).Str("func", "sessionStorage.LoadSession").Msg("stored token cannot be unsealed")
			return models.Session{}, ErrSessionCorrupted
		}
	}
	if len(raw) == 0 {
		return models.Session{}, ErrSessionNotFound
	}

	// the token stays usable even when it is not a JWT
	token, _ := models.ParseToken(string(raw))
	session := models.Session{Token: token}

	userEntry, err := s.repo.Get(ctx, ScopeLocal, KeyCurrentUser)
	switch {
	case errors.Is(err, ErrKeyNotFound):
		return session, nil
	case err != nil:
		return models.Session{}, fmt.Errorf("load identity: %w", err)
	}

	if err = json.Unmarshal(userEntry.Value, &session.Identity); err != nil {
		s.logger.Warn().Err(err).Str("func", "sessionStorage.LoadSession").Msg("stored identity is unreadable")
		session.Identity = models.Identity{}
	}

	return session, nil
}

func (s *sessionStorage) SaveIdentity(ctx context.Context, identity models.Identity) error {
	user, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	return s.repo.Put(ctx, ScopeLocal, Entry{Key: KeyCurrentUser, Value: user})
}

func (s *sessionStorage) ClearSession(ctx context.Context) error {
	return s.repo.Delete(ctx, ScopeLocal, KeyAuthToken, KeyCurrentUser)
}
