package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServerOrigin_String tests the String method of ServerOrigin
func TestServerOrigin_String(t *testing.T) {
	tests := []struct {
		name     string
		origin   ServerOrigin
		expected string
	}{
		{name: "empty origin", origin: ServerOrigin{}, expected: ""},
		{name: "localhost with port", origin: ServerOrigin{Host: "localhost", Port: 8080}, expected: "http://localhost:8080"},
		{name: "https without port", origin: ServerOrigin{Scheme: "https", Host: "cms.example.com"}, expected: "https://cms.example.com"},
		{name: "ipv6", origin: ServerOrigin{Host: "::1", Port: 80}, expected: "http://[::1]:80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.origin.String())
		})
	}
}

// TestServerOrigin_Set tests parsing of origins
func TestServerOrigin_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ServerOrigin
		wantErr bool
	}{
		{name: "host and port", input: "localhost:8080", want: ServerOrigin{Scheme: "http", Host: "localhost", Port: 8080}},
		{name: "full url", input: "https://cms.example.com", want: ServerOrigin{Scheme: "https", Host: "cms.example.com"}},
		{name: "ip with scheme", input: "http://127.0.0.1:3000", want: ServerOrigin{Scheme: "http", Host: "127.0.0.1", Port: 3000}},
		{name: "empty", input: "", wantErr: true},
		{name: "bad scheme", input: "ftp://host", wantErr: true},
		{name: "bad port", input: "localhost:abc", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "missing host", input: "http://:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o ServerOrigin
			err := o.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, o)
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "https://cms.example.com:8443",
				"-d", "client.db",
				"-c", "/path/to/config.json",
				"-storage-key", "secret",
				"-export-dir", "/exports",
				"-request-timeout", "5s",
				"-stats-refresh", "1m",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "https://cms.example.com:8443", cfg.Adapter.HTTPAddress)
				assert.Equal(t, "client.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
				assert.Equal(t, "secret", cfg.App.StorageKey)
				assert.Equal(t, "/exports", cfg.App.ExportDir)
				assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, time.Minute, cfg.Workers.StatsRefreshInterval)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t, tt.args...)

			cfg, err := ParseFlags()
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_InvalidOrigin(t *testing.T) {
	resetFlags(t, "-a", "ftp://nowhere")

	_, err := ParseFlags()
	assert.Error(t, err)
}
