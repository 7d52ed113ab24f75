// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// writenest client. It is populated by merging environment variables,
// command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the CMS API connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for local storage.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// StorageKey is the secret the stored bearer token is sealed with.
	// Env: APP_STORAGE_KEY
	StorageKey string `env:"STORAGE_KEY"`

	// ExportDir is where admin CSV exports are written.
	// Env: APP_EXPORT_DIR
	ExportDir string `env:"EXPORT_DIR"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or DSN (e.g. "writenest.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the settings of the CMS REST API client.
type Adapter struct {
	// HTTPAddress is the API origin, with or without scheme
	// (e.g. "http://localhost:8080"). "/api" is appended by the adapter.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// StatsRefreshInterval is how often the admin dashboard re-fetches stats.
	// Env: WORKERS_STATS_REFRESH_INTERVAL
	StatsRefreshInterval time.Duration `env:"STATS_REFRESH_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
//
// Sources are merged with mergo without override, so for every field the
// first non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
