/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the fiscal calculation engine server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Load YAML configuration (rate tables, holidays, CAC snapshot)
  3. Initialize the structured logger
  4. Open the SQLite history store (optional)
  5. Create API handler with dependencies
  6. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port       HTTP server port (overrides config)
  -config     YAML configuration path (empty: compiled-in defaults)
  -db         SQLite history path (overrides config; "none" disables)
  -log-level  debug, info, warn, error (overrides config)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the history store
  4. Exit

EXAMPLES:
  # Run with defaults (rate tables compiled in, history in ./fiscal.db)
  ./server

  # Run with a config file and in-memory history
  ./server -config=./fiscal.yml -db=":memory:"

  # Run without history
  ./server -db=none

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - config/config.go: Configuration schema
  - store/sqlite/sqlite.go: History store
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/habitar/fiscal-engine/api"
	"github.com/habitar/fiscal-engine/config"
	"github.com/habitar/fiscal-engine/store/sqlite"
)

// initializeLogger creates a zap logger from configuration with an
// optional CLI level override.
func initializeLogger(loggingConfig config.LoggingConfig, levelOverride string) (*zap.Logger, error) {
	level := loggingConfig.Level
	if levelOverride != "" {
		level = levelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var conf zap.Config
	switch format {
	case "console":
		conf = zap.NewDevelopmentConfig()
	case "json":
		conf = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	conf.Level = zap.NewAtomicLevelAt(zapLevel)

	return conf.Build()
}

func main() {
	// Flags
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	configPath := flag.String("config", "", "YAML configuration path")
	dbPath := flag.String("db", "", `SQLite history path ("none" disables)`)
	logLevel := flag.String("log-level", "", "log level override")
	flag.Parse()

	// Load configuration
	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		conf.Server.Port = *port
	}
	if *dbPath != "" {
		conf.History.Path = *dbPath
	}
	if conf.History.Path == "none" {
		conf.History.Path = ""
	}

	// Initialize logger
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Engine configuration: holidays are the only piece that can fail
	holidays, err := conf.HolidaySet()
	if err != nil {
		logger.Fatal("invalid holiday configuration", zap.Error(err))
	}

	// Initialize history store
	var history *sqlite.Store
	if conf.History.Path != "" {
		history, err = sqlite.New(conf.History.Path)
		if err != nil {
			logger.Fatal("failed to open history store", zap.String("path", conf.History.Path), zap.Error(err))
		}
		defer history.Close()
	} else {
		logger.Info("history store disabled")
	}

	// Initialize handler and router
	handler := api.NewHandler(
		conf.RateTable(),
		holidays,
		conf.IndexSource(),
		conf.FallbackExchangeRate(),
		history,
		logger,
	)
	router := api.NewRouter(handler, conf.Server.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", conf.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server starting",
			zap.Int("port", conf.Server.Port),
			zap.Int("holidays", holidays.Len()),
			zap.Bool("history", history != nil),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
