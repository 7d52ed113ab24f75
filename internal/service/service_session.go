package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-writenest/internal/adapter"
	"github.com/MKhiriev/go-writenest/internal/logger"
	"github.com/MKhiriev/go-writenest/internal/store"
	"github.com/MKhiriev/go-writenest/internal/validators"
	"github.com/MKhiriev/go-writenest/models"
)

type sessionService struct {
	sessions  store.SessionStorage
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger

	mu      sync.RWMutex
	current models.SessionResult
}

// NewSessionService returns the [SessionService]. The adapter's bearer token
// is kept in step with the stored session.
func NewSessionService(sessions store.SessionStorage, serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) SessionService {
	return &sessionService{
		sessions:  sessions,
		adapter:   serverAdapter,
		validator: validator,
		logger:    logger,
	}
}

func (s *sessionService) ResolveSession(ctx context.Context) models.SessionResult {
	session, err := s.sessions.LoadSession(ctx)
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		s.adapter.SetToken("")
		return s.remember(models.SessionResult{State: models.SessionAbsent})
	case err != nil:
		s.logger.Err(err).Str("func", "sessionService.ResolveSession").Msg("stored session is unusable")
		s.discard(ctx)
		return s.remember(models.SessionResult{State: models.SessionUnverified})
	}

	s.adapter.SetToken(session.Token.String())

	identity, err := s.adapter.Me(ctx)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "sessionService.ResolveSession").
			Int64("user_id", session.Identity.ID).
			Msg("token was rejected, clearing session")
		s.discard(ctx)
		return s.remember(models.SessionResult{State: models.SessionUnverified})
	}

	if err = s.sessions.SaveIdentity(ctx, identity); err != nil {
		s.logger.Err(err).Str("func", "sessionService.ResolveSession").Msg("failed to persist refreshed identity")
	}

	return s.remember(models.SessionResult{
		State:    models.SessionVerified,
		Identity: identity,
		Token:    session.Token,
	})
}

func (s *sessionService) Current() models.SessionResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *sessionService) Authorize(ctx context.Context, access Access) (models.SessionResult, error) {
	if access == AccessPublic {
		return s.Current(), nil
	}

	result := s.ResolveSession(ctx)
	if !result.Verified() {
		return result, ErrNotAuthenticated
	}
	if access == AccessAdmin && !result.Identity.IsAdmin() {
		return result, ErrAdminRequired
	}

	return result, nil
}

func (s *sessionService) Login(ctx context.Context, req models.LoginRequest) (models.Identity, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Identity{}, invalid(ErrInvalidCredentials, err)
	}

	resp, err := s.adapter.Login(ctx, req)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return models.Identity{}, mapAdapterError(err)
	}
	if resp.Token == "" {
		return models.Identity{}, ErrMissingToken
	}

	if err = s.sessions.SaveSession(ctx, resp.Token, resp.User); err != nil {
		s.logger.Err(err).Str("func", "sessionService.Login").Msg("failed to persist session")
		return models.Identity{}, fmt.Errorf("save session: %w", err)
	}
	s.adapter.SetToken(resp.Token)

	token, _ := models.ParseToken(resp.Token)
	s.remember(models.SessionResult{
		State:    models.SessionVerified,
		Identity: resp.User,
		Token:    token,
	})

	s.logger.Info().Str("func", "sessionService.Login").Int64("user_id", resp.User.ID).Msg("logged in")
	return resp.User, nil
}

func (s *sessionService) Register(ctx context.Context, form models.RegisterForm) (models.Identity, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	if err := s.validator.Validate(ctx, form); err != nil {
		return models.Identity{}, invalid(ErrInvalidRegistration, err)
	}

	identity, err := s.adapter.Register(ctx, models.RegisterRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		return models.Identity{}, mapAdapterError(err)
	}

	return identity, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	s.adapter.SetToken("")
	s.remember(models.SessionResult{State: models.SessionAbsent})

	if err := s.sessions.ClearSession(ctx); err != nil {
		s.logger.Err(err).Str("func", "sessionService.Logout").Msg("failed to clear session")
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

func (s *sessionService) discard(ctx context.Context) {
	s.adapter.SetToken("")
	if err := s.sessions.ClearSession(ctx); err != nil {
		s.logger.Err(err).Str("func", "sessionService.discard").Msg("failed to clear session")
	}
}

func (s *sessionService) remember(result models.SessionResult) models.SessionResult {
	s.mu.Lock()
	s.current = result
	s.mu.Unlock()
	return result
}

// IsAdmin reports whether identity has administrator rights.
func IsAdmin(identity models.Identity) bool {
	return identity.IsAdmin()
}

// CanEdit reports whether identity may edit or delete article: its author or
// any administrator.
func CanEdit(identity models.Identity, article models.Article) bool {
	if identity.IsZero() {
		return false
	}
	return identity.IsAdmin() || (identity.ID != 0 && identity.ID == article.AuthorID)
}
