package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-writenest/internal/logger"
	"github.com/MKhiriev/go-writenest/internal/service"
	"github.com/MKhiriev/go-writenest/internal/workers"
)

type App struct {
	sessions service.SessionService
	ui       UI
	workers  *workers.Workers
	closer   io.Closer
	logger   *logger.Logger
}

// NewApp creates the client runtime. closer releases local storage after
// the UI exits; it may be nil.
func NewApp(sessions service.SessionService, ui UI, background *workers.Workers, closer io.Closer, logger *logger.Logger) *App {
	return &App{
		sessions: sessions,
		ui:       ui,
		workers:  background,
		closer:   closer,
		logger:   logger,
	}
}

// Run resolves the stored session once, then runs the UI until the user
// quits. Background workers are stopped and storage is closed on return.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		a.workers.Stop()
		if a.closer != nil {
			err = errors.Join(err, a.closer.Close())
		}
	}()

	session := a.sessions.ResolveSession(ctx)
	a.logger.Info().Str("session", session.State.String()).Int64("user_id", session.Identity.ID).Msg("session resolved")

	if err = a.ui.Run(ctx, session); err != nil {
		return fmt.Errorf("client ui: %w", err)
	}
	return nil
}
