package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Ragavendra192/barani-report-system/internal/api"
	"github.com/Ragavendra192/barani-report-system/internal/config"
	"github.com/Ragavendra192/barani-report-system/internal/logger"
	"github.com/Ragavendra192/barani-report-system/internal/report"
	"github.com/Ragavendra192/barani-report-system/internal/storage"
)

const (
	exportSweepSchedule = "@every 15m"
	exportMaxAge        = time.Hour
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logger.Init(cfg.LogFormat, cfg.SlogLevel())

	if err := run(cfg); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	gateway, err := storage.NewGateway(cfg.DB)
	if err != nil {
		return err
	}
	dialect, err := report.DialectFor(cfg.DB.Driver)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handlers := api.NewHandlers(gateway, report.NewReporter(dialect, cfg.ExportDir))
	router := api.NewRouter(ctx, handlers, api.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	})

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	janitor := report.NewJanitor(cfg.ExportDir, exportSweepSchedule, exportMaxAge)
	if err := janitor.Start(); err != nil {
		return err
	}
	defer janitor.Stop()

	// Connections are opened per request; an unreachable database is only
	// reported here, not fatal.
	if err := gateway.Ping(ctx); err != nil {
		logger.Warn("Data source not reachable at startup", "error", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting server",
			"addr", cfg.ListenAddr,
			"driver", cfg.DB.Driver,
			"server", cfg.DB.Server,
			"database", cfg.DB.Database,
			"export_dir", cfg.ExportDir,
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}
