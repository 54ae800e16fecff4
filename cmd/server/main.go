// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/marquee/internal/api"
	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/llm"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/supervisor"
	"github.com/tomtom215/marquee/internal/supervisor/services"
)

func main() {
	start := time.Now()

	// godotenv, YAML file and environment are layered inside Load
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", api.Version).
		Str("catalog", cfg.Catalog.Path).
		Str("cache_backend", cfg.Cache.Backend).
		Str("user_backend", cfg.Users.Backend).
		Bool("tmdb_enabled", cfg.TMDB.Enabled).
		Bool("llm_enabled", cfg.LLM.Enabled).
		Msg("Starting Marquee")
	metrics.SetAppInfo(api.Version, runtime.Version())

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Strs("origins", cfg.Security.CORSOrigins).Msg("Wildcard CORS origin configured")
	}

	engine, err := initEngine(cfg)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to build recommendation engine")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	responseCache, memStats, err := initCacheStore(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize response cache")
	}
	defer func() {
		if err := responseCache.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing response cache")
		}
	}()

	movies := initTMDB(cfg, responseCache)

	generator := llm.NewClient(&cfg.LLM, nil)
	if !cfg.LLM.Enabled {
		generator = nil
	}
	if cfg.LLM.Enabled && !generator.Configured() {
		logging.Warn().Msg("LLM enabled without an API key; genre and mood endpoints will return 503")
	}

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
	}

	userStore, err := auth.NewUserStore(ctx, &cfg.Users)
	if err != nil {
		logging.Fatal().Err(err).Str("backend", cfg.Users.Backend).Msg("Failed to open user store")
	}
	defer func() {
		if err := userStore.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing user store")
		}
	}()

	authService := auth.NewService(userStore, jwtManager, cfg.Security.BcryptCost)

	handler := api.NewHandler(engine, &cfg.Catalog, movies, generator, authService)
	router := api.NewRouter(handler, &cfg.Security, authService)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddMaintenanceService(services.NewMetricsRefreshService(start, time.Minute, memStats))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
		serveErr = <-errCh
	case serveErr = <-errCh:
		cancel()
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	tree.LogUnstopped()
	logging.Info().Dur("uptime", time.Since(start)).Msg("Marquee stopped")
}
