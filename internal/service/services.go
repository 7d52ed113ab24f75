package service

import (
	"github.com/MKhiriev/go-writenest/internal/adapter"
	"github.com/MKhiriev/go-writenest/internal/config"
	"github.com/MKhiriev/go-writenest/internal/export"
	"github.com/MKhiriev/go-writenest/internal/logger"
	"github.com/MKhiriev/go-writenest/internal/store"
	"github.com/MKhiriev/go-writenest/internal/validators"
)

// ClientServices groups every service the screens use.
type ClientServices struct {
	SessionService  SessionService
	ArticleService  ArticleService
	CommentService  CommentService
	PostService     PostService
	AdminService    AdminService
	StatsRefreshJob StatsRefreshJob
}

// NewClientServices wires the services over the local storages and the
// server adapter.
func NewClientServices(cfg *config.ClientConfig, storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	validator := validators.NewFormValidator()
	adminSvc := NewAdminService(serverAdapter, export.NewCSVExporter(cfg.App.ExportDir, logger))

	return &ClientServices{
		SessionService:  NewSessionService(storages.Sessions, serverAdapter, validator, logger),
		ArticleService:  NewArticleService(serverAdapter, logger),
		CommentService:  NewCommentService(serverAdapter, validator),
		PostService:     NewPostService(serverAdapter, storages.Drafts, storages.Handoff, validator, logger),
		AdminService:    adminSvc,
		StatsRefreshJob: NewStatsRefreshJob(adminSvc, cfg.Workers.StatsRefreshInterval, logger),
	}
}
