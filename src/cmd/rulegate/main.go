// FILE: src/cmd/rulegate/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rulegate/src/internal/admin"
	"rulegate/src/internal/config"
	"rulegate/src/internal/dispatch"
	"rulegate/src/internal/transport"
	"rulegate/src/internal/version"

	"github.com/lixenwraith/log"
)

var logger *log.Logger

func main() {
	if err := parseFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Handle version flag
	if *showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	// Set config file environment if specified
	if *configFile != "" {
		os.Setenv("RULEGATE_CONFIG_FILE", *configFile)
	}

	cfg, err := config.LoadWithCLI(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlagOverrides(cfg)

	InitOutputHandler(cfg.Quiet)

	if err := initializeLogger(cfg); err != nil {
		FatalError(1, "Failed to initialize logger: %v\n", err)
	}
	defer shutdownLogger()

	logger.Info("msg", "Rulegate starting",
		"version", version.String(),
		"config_file", *configFile,
		"interactive", *interactiveMode,
		"log_output", cfg.Logging.Output)

	// The engine owns all policy state; both front ends route every
	// request through it.
	engine := dispatch.NewEngine(logger)

	if *interactiveMode {
		if err := runInteractive(engine); err != nil {
			logger.Error("msg", "Interactive session failed", "error", err)
			shutdownLogger()
			os.Exit(1)
		}
		return
	}

	runServer(cfg, engine)
}

// runServer starts the TCP listener (and the admin endpoint when
// enabled) and blocks until a termination signal or server failure.
func runServer(cfg *config.Config, engine *dispatch.Engine) {
	server := transport.NewServer(cfg.Server, engine, logger)

	var adminServer *admin.Server
	if cfg.Admin.Enabled {
		adminServer = admin.NewServer(cfg.Admin, map[string]admin.StatsProvider{
			"engine":    engine,
			"transport": server,
		}, logger)
		if err := adminServer.Start(); err != nil {
			logger.Error("msg", "Failed to start admin server", "error", err)
			shutdownLogger()
			os.Exit(1)
		}
		Print("Admin endpoint on http://localhost:%d%s\n", cfg.Admin.Port, cfg.Admin.StatusPath)
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Run()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if enableStatusReporter() {
		go statusReporter(ctx, engine, server)
	}

	Print("Server started\n")

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("msg", "TCP server failed", "error", err)
			shutdownLogger()
			os.Exit(1)
		}
		return
	case sig := <-sigChan:
		logger.Info("msg", "Shutdown signal received, starting graceful shutdown",
			"signal", sig.String())
	}
	cancel()

	if adminServer != nil {
		adminServer.Shutdown()
	}

	// Shutdown server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("msg", "Shutdown timeout exceeded - forcing exit", "error", err)
		shutdownLogger()
		os.Exit(1)
	}

	logger.Info("msg", "Shutdown complete")
}

// applyFlagOverrides layers explicit CLI flags over the loaded config.
func applyFlagOverrides(cfg *config.Config) {
	if *serverPort != 0 {
		cfg.Server.Port = int64(*serverPort)
	}
	if *quietMode {
		cfg.Quiet = true
	}
	if *logOutput != "" {
		cfg.Logging.Output = *logOutput
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *logFile != "" {
		cfg.Logging.File = *logFile
	}
	if *logDir != "" {
		cfg.Logging.Dir = *logDir
	}
}

func shutdownLogger() {
	if logger != nil {
		if err := logger.Shutdown(2 * time.Second); err != nil {
			// Best effort - can't log the shutdown error
			Error("Logger shutdown error: %v\n", err)
		}
	}
}

func enableStatusReporter() bool {
	// Status reporter can be disabled via environment variable
	if os.Getenv("RULEGATE_DISABLE_STATUS_REPORTER") == "1" {
		return false
	}
	return true
}
