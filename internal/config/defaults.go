package config

import "time"

// Built-in defaults, applied with the lowest priority.
const (
	DefaultHTTPAddress          = "http://localhost:8080"
	DefaultRequestTimeout       = 15 * time.Second
	DefaultDSN                  = "writenest.db"
	DefaultExportDir            = "."
	DefaultStatsRefreshInterval = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ExportDir: DefaultExportDir,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			StatsRefreshInterval: DefaultStatsRefreshInterval,
		},
	}
}
