package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-writenest/internal/adapter"
	"github.com/MKhiriev/go-writenest/internal/export"
	"github.com/MKhiriev/go-writenest/models"
)

// Exporter writes a set of articles somewhere and returns where.
type Exporter interface {
	Export(ctx context.Context, articles []models.Article, now time.Time) (string, error)
}

type adminService struct {
	adapter  adapter.ServerAdapter
	exporter Exporter
}

// NewAdminService returns the [AdminService].
func NewAdminService(serverAdapter adapter.ServerAdapter, exporter Exporter) AdminService {
	return &adminService{adapter: serverAdapter, exporter: exporter}
}

func (a *adminService) Stats(ctx context.Context) (models.Stats, error) {
	if a.adapter.Token() == "" {
		return models.Stats{}, ErrNotAuthenticated
	}
	stats, err := a.adapter.AdminStats(ctx)
	return stats, mapAdapterError(err)
}

func (a *adminService) ExportCSV(ctx context.Context, articles []models.Article, now time.Time) (string, error) {
	if len(articles) == 0 {
		return "", ErrNothingToExport
	}

	path, err := a.exporter.Export(ctx, articles, now)
	if errors.Is(err, export.ErrNoArticles) {
		return "", ErrNothingToExport
	}
	return path, err
}
