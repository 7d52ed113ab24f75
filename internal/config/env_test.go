// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_STORAGE_KEY": "secret",
		"APP_EXPORT_DIR":  "/tmp/exports",

		"ADAPTER_ADDRESS":         "https://cms.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "20s",

		"STORAGE_DB_DATABASE_URI": "/var/lib/writenest/client.db",

		"WORKERS_STATS_REFRESH_INTERVAL": "45s",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "secret", cfg.App.StorageKey)
	assert.Equal(t, "/tmp/exports", cfg.App.ExportDir)
	assert.Equal(t, "https://cms.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/var/lib/writenest/client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 45*time.Second, cfg.Workers.StatsRefreshInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "localhost:9000",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "localhost:9000", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"WORKERS_STATS_REFRESH_INTERVAL": "every now and then",
	})

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}
