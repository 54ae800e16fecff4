// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"time"

	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/tmdb"
)

// Version is reported by /health; cmd/server overrides it at link time.
var Version = "dev"

// MovieInfoProvider is the TMDB surface the handlers use. *tmdb.Client
// implements it.
type MovieInfoProvider interface {
	MovieDetails(ctx context.Context, title string) (*tmdb.MovieDetails, error)
	TopRated(ctx context.Context, page int) (*tmdb.MoviePage, error)
	Trending(ctx context.Context, page int) (*tmdb.MoviePage, error)
}

// TitleGenerator is the LLM surface the handlers use. *llm.Client
// implements it; Configured must be safe on a nil receiver.
type TitleGenerator interface {
	Configured() bool
	GenreTitles(ctx context.Context, genre string, n int) ([]string, error)
	MoodTitles(ctx context.Context, mood string, n int) ([]string, error)
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_health.go: health
//   - handlers_movies.go: titles, suggest, TMDB listings and details
//   - handlers_recommend.go: content, genre and mood recommendations
//   - handlers_auth.go: register, login, token check
type Handler struct {
	engine      *recommend.Engine
	titles      *cache.PrefixIndex
	movies      MovieInfoProvider
	llm         TitleGenerator
	auth        *auth.Service
	security    *logging.SecurityLogger
	catalog     config.CatalogConfig
	startTime   time.Time
	enrichLimit int
}

// NewHandler creates the API handler. movies may be nil when TMDB is
// disabled; generator may be nil or unconfigured when the LLM is.
//
//	handler := api.NewHandler(engine, &cfg.Catalog, tmdbClient, llmClient, authService)
//	router := api.NewRouter(handler, cfg, authService)
//	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
func NewHandler(engine *recommend.Engine, catalog *config.CatalogConfig, movies MovieInfoProvider, generator TitleGenerator, authService *auth.Service) *Handler {
	catalogCfg := *catalog
	if catalogCfg.DefaultK < 1 {
		catalogCfg.DefaultK = 10
	}
	if catalogCfg.MaxK < catalogCfg.DefaultK {
		catalogCfg.MaxK = catalogCfg.DefaultK
	}

	return &Handler{
		engine:      engine,
		titles:      cache.NewPrefixIndex(engine.Titles()),
		movies:      movies,
		llm:         generator,
		auth:        authService,
		security:    logging.NewSecurityLogger(),
		catalog:     catalogCfg,
		startTime:   time.Now(),
		enrichLimit: 4,
	}
}

// clampK bounds a requested result count by the configured maximum.
func (h *Handler) clampK(k int) int {
	if k > h.catalog.MaxK {
		return h.catalog.MaxK
	}
	return k
}

func (h *Handler) llmConfigured() bool {
	return h.llm != nil && h.llm.Configured()
}
