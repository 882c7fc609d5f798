// cmd/safelink/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"safelink/internal/adapters/httpapi"
	"safelink/internal/adapters/output"
	"safelink/internal/core/domain"
	"safelink/internal/core/usecases"
	"safelink/internal/model"
	"safelink/internal/platform/config"
	"safelink/internal/platform/logx"
	"safelink/internal/platform/ui"
)

var (
	// Set with -ldflags at build time
	version = "dev"
	commit  = "none"
)

func main() {
	// 1. Load centralized config
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		os.Exit(2)
	}

	if cfg.PrintVersion {
		fmt.Printf("safelink %s (%s)\n", version, commit)
		return
	}

	// 2. Shared logger
	logger := logx.New()
	if cfg.Quiet {
		logger = logx.NewSilent()
	}

	// 3. Load model artifacts once; the engine shares them read-only
	// across every classification for the process lifetime.
	artifact := model.Load(cfg.ModelDir, logger)
	engine := usecases.NewEngine(usecases.EngineOptions{
		Artifact: artifact,
		Logger:   logger,
	})

	if cfg.ShowStatus {
		ui.RenderStatus(engine.Status())
		return
	}

	// 4. Server mode
	if cfg.Serve {
		runServer(cfg, engine, logger)
		return
	}

	// 5. One-shot CLI mode
	if cfg.URL == "" {
		fmt.Fprintln(os.Stderr, "Error: a URL is required")
		fmt.Fprintln(os.Stderr, "Usage: safelink -u <url>")
		fmt.Fprintln(os.Stderr, "Try: safelink -h for help")
		os.Exit(2)
	}

	if !cfg.Quiet && !cfg.JSONOut && !cfg.Table {
		ui.RenderHeader(version)
	}

	result := engine.Classify(cfg.URL)

	if err := writeOutputs(cfg, result); err != nil {
		logger.Err(err, "phase", "output")
		os.Exit(1)
	}

	if result.Failed() {
		os.Exit(1)
	}
}

// runServer starts the HTTP API and blocks until a shutdown signal.
func runServer(cfg config.Config, engine *usecases.Engine, logger logx.Logger) {
	logger.Info("safelink starting",
		"version", version,
		"mode", "serve",
		"listen", cfg.Listen,
		"model_dir", cfg.ModelDir,
		"model", engine.ModelLabel(),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	server := httpapi.NewServer(httpapi.ServerOptions{
		Engine: engine,
		Logger: logger,
		Addr:   cfg.Listen,
	})

	if err := server.Serve(ctx); err != nil {
		logger.Err(err, "phase", "serve")
		os.Exit(1)
	}
	logger.Info("safelink stopped")
}

// writeOutputs decides and executes outputs based on config. Keeping this
// isolated from main makes it easier to add new formats.
func writeOutputs(cfg config.Config, result *domain.ClassificationResult) error {
	switch {
	case cfg.JSONOut:
		if err := output.WriteJSONStdout(result, !cfg.Quiet); err != nil {
			return fmt.Errorf("json output: %w", err)
		}
	case cfg.Table:
		if err := output.WriteTable(result); err != nil {
			return fmt.Errorf("table output: %w", err)
		}
	case !cfg.Quiet:
		ui.RenderResult(result)
	}

	if cfg.OutputDir != "" {
		path, err := output.WriteJSON(cfg.OutputDir, result)
		if err != nil {
			return fmt.Errorf("json export: %w", err)
		}
		if !cfg.Quiet && !cfg.JSONOut {
			fmt.Printf("Result written to %s\n", path)
		}
	}

	return nil
}
