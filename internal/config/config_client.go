package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// StorageKey seals the bearer token kept in the local store.
	StorageKey string
	// ExportDir is the directory CSV exports are written to.
	ExportDir string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the CMS origin; the API lives under "/api".
	HTTPAddress string
	// RequestTimeout is the timeout applied to every outbound request.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// StorageKey is copied from [ClientApp] so the store can seal secrets.
	StorageKey string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// StatsRefreshInterval defines how often the admin stats are refreshed.
	StatsRefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration view from
// the merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			StorageKey: cfg.App.StorageKey,
			ExportDir:  cfg.App.ExportDir,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			StorageKey: cfg.App.StorageKey,
		},
		Workers: ClientWorkers{StatsRefreshInterval: cfg.Workers.StatsRefreshInterval},
	}
}
