package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/profsynapse/hubspot-mcp/configs"
	"github.com/profsynapse/hubspot-mcp/internal/analytics"
	"github.com/profsynapse/hubspot-mcp/internal/bcp"
	"github.com/profsynapse/hubspot-mcp/internal/dashboard"
	"github.com/profsynapse/hubspot-mcp/internal/enhancer"
	"github.com/profsynapse/hubspot-mcp/internal/hubspot"
	"github.com/profsynapse/hubspot-mcp/internal/registry"
	"github.com/profsynapse/hubspot-mcp/internal/transport"

	"github.com/mark3labs/mcp-go/server"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const serverName = "hubspot-mcp"
const serverVersion = "0.1.0"

func main() {
	var transportMode string
	flag.StringVar(&transportMode, "transport", "http", "Transport mode: http or stdio")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// === Configuration ===
	cfg, err := configs.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// === Logging ===
	logLevel := cfg.ParsedLogLevel()
	var logger *slog.Logger
	if transportMode == "stdio" {
		// In stdio mode, log to a file so stdout stays clean for the protocol.
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: logLevel}))
		} else {
			logger = slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: logLevel}))
		}
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	}
	slog.SetDefault(logger)
	logger.Info("Logger initialized.", slog.String("level", logLevel.String()), slog.String("transport", transportMode))

	// === OpenTelemetry ===
	shutdownOtel, err := initOtelProvider(cfg)
	if err != nil {
		logger.Error("Failed to initialize OpenTelemetry.", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := shutdownOtel(context.Background()); err != nil {
			logger.Error("Failed to shutdown OpenTelemetry TracerProvider.", slog.Any("error", err))
		}
	}()

	// === HubSpot client ===
	httpClient := &http.Client{Timeout: cfg.HTTPClientTimeout}
	client, err := hubspot.New(cfg.HubSpotAccessToken, logger, hubspot.WithHTTPClient(httpClient))
	if err != nil {
		logger.Error("Failed to create HubSpot client.", slog.Any("error", err))
		os.Exit(1)
	}
	if err := client.Init(ctx); err != nil {
		// Startup continues so the tool surface is still discoverable; calls
		// will surface classified errors instead.
		logger.Error("HubSpot connectivity probe failed.", slog.Any("error", err))
	}

	// === Analytics store ===
	store, err := analytics.New(cfg.AnalyticsDBPath, logger)
	if err != nil {
		logger.Error("Failed to open analytics store.", slog.Any("error", err))
		os.Exit(1)
	}
	defer store.Close()

	// === Suggestion tables & registry ===
	tables, err := enhancer.LoadTables(cfg.SuggestionTablesFile)
	if err != nil {
		logger.Error("Failed to load suggestion tables.", slog.Any("error", err))
		os.Exit(1)
	}
	reg := registry.New(enhancer.New(tables), logger, registry.WithRecorder(store))
	for _, pack := range bcp.All(client) {
		if err := reg.Register(pack); err != nil {
			logger.Error("Failed to register BCP.", slog.String("domain", pack.Domain), slog.Any("error", err))
			os.Exit(1)
		}
	}

	// === MCP server ===
	mcpSrv := server.NewMCPServer(serverName, serverVersion)
	if err := reg.AttachMCP(mcpSrv); err != nil {
		logger.Error("Failed to attach tools to MCP server.", slog.Any("error", err))
		os.Exit(1)
	}

	switch transportMode {
	case "stdio":
		logger.Info("Starting in stdio mode")
		stdioServer := server.NewStdioServer(mcpSrv)
		if err := stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil {
			logger.Error("stdio server error", slog.Any("error", err))
			os.Exit(1)
		}

	case "http":
		logger.Info("Starting in HTTP mode", slog.String("address", cfg.ListenAddr))

		streamable := server.NewStreamableHTTPServer(mcpSrv,
			server.WithEndpointPath(cfg.MCPEndpointPath),
			server.WithHeartbeatInterval(30*time.Second),
		)

		sessions := transport.NewManager(logger)
		mux := http.NewServeMux()
		mux.Handle(cfg.MCPEndpointPath, transport.Middleware(sessions, store, streamable))
		dashboard.NewHandlers(cfg.BackendURL, store, httpClient, logger).RegisterRoutes(mux)

		httpServer := &http.Server{
			Addr:    cfg.ListenAddr,
			Handler: mux,
		}
		go func() {
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("HTTP server failed.", slog.Any("error", err))
				stop()
			}
		}()

		<-ctx.Done()

		logger.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server graceful shutdown failed.", slog.Any("error", err))
		}
		sessions.CloseAll()
		logger.Info("Server shut down gracefully.")

	default:
		logger.Error("Invalid transport mode", slog.String("transport", transportMode))
		os.Exit(1)
	}
}

// initOtelProvider initializes the OpenTelemetry SDK and OTLP trace
// exporter, returning a shutdown function. Tracing is disabled when no
// endpoint is configured.
func initOtelProvider(cfg *configs.Config) (func(context.Context) error, error) {
	ctx := context.Background()

	if cfg.OtelExporterOtlpEndpoint == "" {
		slog.Info("OTEL_EXPORTER_OTLP_ENDPOINT not set, OpenTelemetry tracing disabled.")
		return func(context.Context) error { return nil }, nil
	}

	grpcOpts := []grpc.DialOption{}
	if cfg.OtelExporterOtlpInsecure {
		grpcOpts = append(grpcOpts, grpc.WithTransportCredentials(insecure.NewCredentials()))
		slog.Warn("Using insecure connection for OTLP exporter.")
	}

	conn, err := grpc.NewClient(cfg.OtelExporterOtlpEndpoint, grpcOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to OTLP endpoint: %w", err)
	}

	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serverName),
		),
	)
	if err != nil {
		_ = traceExporter.Shutdown(ctx)
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(r),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return func(ctx context.Context) error {
		providerErr := tp.Shutdown(ctx)
		connErr := conn.Close()
		return errors.Join(providerErr, connErr)
	}, nil
}
