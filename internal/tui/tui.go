// Package tui is the terminal front end of the WriteNest client, built on
// Bubble Tea. One root model routes between the catalog, article, login,
// registration, editor, profile and admin screens and applies the route
// guards before guarded screens open.
package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-writenest/internal/logger"
	"github.com/MKhiriev/go-writenest/internal/service"
	"github.com/MKhiriev/go-writenest/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// Run shows the catalog for session and blocks until the user quits or
// ctx is cancelled.
func (t *TUI) Run(ctx context.Context, session models.SessionResult) error {
	model := newAppModel(ctx, t.services, t.buildInfo, session, t.logger)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
