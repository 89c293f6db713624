// cmd/activity-server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"mergington-activities/internal/common/config"
	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/observability"
	"mergington-activities/internal/server"
	"mergington-activities/pkg/registry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zapLog := logger.New("info", "console")
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting activity server...",
		zap.String("name", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// --- Build the activity registry ---
	var reg *registry.ActivityRegistry
	if cfg.Registry.SeedFile != "" {
		reg, err = registry.LoadFromFile(cfg.Registry.SeedFile, log)
		if err != nil {
			zapLog.Fatal("registry seed failed", zap.Error(err))
		}
	} else {
		reg = registry.New(log)
		zapLog.Info("registry seeded with default activities")
	}

	// --- Metrics endpoint on its own port ---
	if cfg.Observability.MetricsEnabled {
		go func() {
			metricsMux := http.NewServeMux()
			metricsMux.Handle("/metrics", promhttp.Handler())
			addr := config.ServerConfig{Host: cfg.Server.Host, Port: cfg.Observability.MetricsPort}.Addr()
			zapLog.Info("metrics server listening", zap.String("addr", addr))
			if err := http.ListenAndServe(addr, metricsMux); err != nil {
				zapLog.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	// --- HTTP server ---
	handler := server.NewHandler(reg, log)
	routes := server.Instrument(handler.Routes(cfg.Server.StaticDir), log, obs)
	srv := server.New(cfg.Server, routes, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		zapLog.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("activity server stopped")
}
