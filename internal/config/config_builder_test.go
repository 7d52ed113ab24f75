package config

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func resetFlags(t *testing.T, args ...string) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	oldArgs := os.Args
	os.Args = append([]string{"cmd"}, args...)
	t.Cleanup(func() { os.Args = oldArgs })
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstNonZeroWins verifies that earlier sources take priority and
// later sources only fill the gaps.
func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{StorageKey: "from-env"}},
		&StructuredConfig{App: App{StorageKey: "from-flags", ExportDir: "/exports"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.StorageKey)
	assert.Equal(t, "/exports", cfg.App.ExportDir)
}

// TestBuild_DefaultsHaveLowestPriority verifies that defaults never override
// an explicitly configured value.
func TestBuild_DefaultsHaveLowestPriority(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Adapter: Adapter{RequestTimeout: 3 * time.Second},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultStatsRefreshInterval, cfg.Workers.StatsRefreshInterval)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
}

// TestBuild_RejectsNegativeDurations verifies the structured validation.
func TestBuild_RejectsNegativeDurations(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Adapter: Adapter{RequestTimeout: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPath verifies that without a path nothing is appended.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_LoadsFile verifies that the path from an earlier source is used.
func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"storage_key": "json-secret"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "json-secret", cfg.App.StorageKey)
}

// TestWithJSON_MissingFile verifies that an unreadable file is reported.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/not/here.json"})

	_, err := b.withJSON().build()
	assert.Error(t, err)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

// TestGetClientConfig_AllSources verifies the full pipeline: env beats flags,
// flags beat JSON, defaults fill the rest.
func TestGetClientConfig_AllSources(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"storage_key": "json-secret", "export_dir": "/json/exports"},
		"storage": map[string]any{"db": map[string]any{"dsn": "json.db"}},
	})
	t.Setenv("APP_STORAGE_KEY", "env-secret")
	resetFlags(t, "-d", "flags.db", "-c", path)

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.App.StorageKey)
	assert.Equal(t, "env-secret", cfg.Storage.StorageKey)
	assert.Equal(t, "/json/exports", cfg.App.ExportDir)
	assert.Equal(t, "flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultStatsRefreshInterval, cfg.Workers.StatsRefreshInterval)
}

// TestGetClientConfig_MissingStorageKey verifies that the client refuses to
// start without a storage key.
func TestGetClientConfig_MissingStorageKey(t *testing.T) {
	t.Setenv("APP_STORAGE_KEY", "")
	resetFlags(t)

	cfg, err := GetClientConfig()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.NotNil(t, cfg)
}

// ── ClientConfig.validate ─────────────────────────────────────────────────────

func validClientConfig() *ClientConfig {
	return newClientConfig(&StructuredConfig{
		App:     App{StorageKey: "k", ExportDir: "."},
		Storage: Storage{DB: DB{DSN: "client.db"}},
		Adapter: Adapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		Workers: Workers{StatsRefreshInterval: time.Second},
	})
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero refresh", mutate: func(c *ClientConfig) { c.Workers.StatsRefreshInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "empty key", mutate: func(c *ClientConfig) { c.App.StorageKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "empty export dir", mutate: func(c *ClientConfig) { c.App.ExportDir = "" }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
