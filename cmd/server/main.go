package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ptuyizere/weatherapp-vercel/internal/config"
	"github.com/Ptuyizere/weatherapp-vercel/internal/history"
	"github.com/Ptuyizere/weatherapp-vercel/internal/httpapi"
	"github.com/Ptuyizere/weatherapp-vercel/internal/observability"
	"github.com/Ptuyizere/weatherapp-vercel/internal/owm"
	"github.com/Ptuyizere/weatherapp-vercel/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	provider := owm.NewClient(cfg.APIKey, cfg.OWMBaseURL, cfg.OWMTimeout, metrics, logger)
	if cfg.APIKey == "" {
		logger.Warn("WEATHER_API_KEY is not set, provider requests will fail authentication")
	}

	// Search history is feature-flagged via HISTORY_ENABLED / HISTORY_DB_PATH.
	var store *history.Store
	var recorder weather.Recorder
	var reader httpapi.HistoryReader
	if cfg.HistoryEnabled {
		store, err = history.Open(cfg.HistoryDBPath)
		if err != nil {
			logger.Error("failed to open history store", "path", cfg.HistoryDBPath, "error", err)
			os.Exit(1)
		}
		recorder = store
		reader = store
		logger.Info("search history enabled", "path", cfg.HistoryDBPath, "limit", cfg.HistoryLimit)
	} else {
		logger.Info("search history disabled")
	}

	fetcher := weather.NewFetcher(provider, recorder, metrics, logger)

	srv := httpapi.NewServer(cfg.HTTPAddr, fetcher, reader, cfg.HistoryLimit, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Error("history store close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
