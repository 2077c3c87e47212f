package configs

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration, loaded from environment
// variables. The HubSpot token may legitimately be absent: the server
// starts unconfigured and every tool call fails with AUTH_ERROR until the
// token is set.
type Config struct {
	// HubSpotAccessToken is the private-app token for all HubSpot calls.
	HubSpotAccessToken string `envconfig:"HUBSPOT_ACCESS_TOKEN"`

	// BackendURL is the analytics/auth backend the dashboard proxies to.
	// Empty means the dashboard serves analytics from the local store.
	BackendURL string `envconfig:"BACKEND_URL"`

	ListenAddr      string `envconfig:"LISTEN_ADDR" default:":8080"`
	MCPEndpointPath string `envconfig:"MCP_ENDPOINT_PATH" default:"/mcp"`

	// AnalyticsDBPath is where the SQLite analytics database lives.
	AnalyticsDBPath string `envconfig:"ANALYTICS_DB_PATH" default:"data/analytics.db"`

	// SuggestionTablesFile optionally overrides the built-in suggestion
	// tables with a YAML file.
	SuggestionTablesFile string `envconfig:"SUGGESTION_TABLES_FILE"`

	HTTPClientTimeout time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"30s"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`

	OtelExporterOtlpEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelExporterOtlpInsecure bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// LogFile receives logs in stdio mode, keeping stdout clean for the
	// MCP protocol.
	LogFile string `envconfig:"LOG_FILE" default:"/tmp/hubspot-mcp.log"`
}

// ParsedLogLevel returns the slog.Level for the configured LogLevel string.
func (c *Config) ParsedLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		fallthrough
	default:
		return slog.LevelInfo
	}
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return &cfg, nil
}
