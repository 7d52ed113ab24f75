package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-writenest/internal/adapter"
	"github.com/MKhiriev/go-writenest/internal/client"
	"github.com/MKhiriev/go-writenest/internal/config"
	"github.com/MKhiriev/go-writenest/internal/logger"
	"github.com/MKhiriev/go-writenest/internal/service"
	"github.com/MKhiriev/go-writenest/internal/store"
	"github.com/MKhiriev/go-writenest/internal/tui"
	"github.com/MKhiriev/go-writenest/internal/workers"
	"github.com/MKhiriev/go-writenest/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewClientLogger("writenest-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(cfg, storages, serverAdapter, log)
	ui := tui.New(services, buildInfo, log)
	background := workers.New(services.StatsRefreshJob)

	app := client.NewApp(services.SessionService, ui, background, storages, log)
	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		os.Exit(1)
	}
}
