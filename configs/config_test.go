package configs

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "/mcp", cfg.MCPEndpointPath)
	assert.Equal(t, "data/analytics.db", cfg.AnalyticsDBPath)
	assert.Equal(t, 30*time.Second, cfg.HTTPClientTimeout)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.OtelExporterOtlpInsecure)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HUBSPOT_ACCESS_TOKEN", "pat-na1-xyz")
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "90s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "pat-na1-xyz", cfg.HubSpotAccessToken)
	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, 90*time.Second, cfg.HTTPClientTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.ParsedLogLevel())
}

func TestParsedLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.in}
		assert.Equal(t, tt.want, cfg.ParsedLogLevel(), "level %q", tt.in)
	}
}
