// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"fmt"

	"github.com/tomtom215/marquee/internal/api"
	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/supervisor/services"
	"github.com/tomtom215/marquee/internal/tmdb"
)

const (
	cacheBackendMemory = "memory"
	cacheBackendRedis  = "redis"

	tmdbCacheName  = "tmdb"
	redisKeyPrefix = "marquee:"
)

// initEngine loads the catalog and builds the similarity engine. The engine
// is the one component the server cannot run without.
func initEngine(cfg *config.Config) (*recommend.Engine, error) {
	engine, err := recommend.NewEngineFromFile(cfg.Catalog.Path, recommend.WithWorkers(cfg.Catalog.Workers))
	if err != nil {
		return nil, err
	}

	stats := engine.Stats()
	metrics.RecordEngineBuild(stats.Movies, stats.VocabularySize, stats.ZeroVectors, stats.BuildDuration)
	logging.Info().
		Int("movies", stats.Movies).
		Int("vocabulary", stats.VocabularySize).
		Int("zero_vectors", stats.ZeroVectors).
		Dur("build_duration", stats.BuildDuration).
		Str("component", "recommend").
		Msg("Recommendation engine built")

	if stats.ZeroVectors > 0 {
		logging.Warn().
			Int("zero_vectors", stats.ZeroVectors).
			Str("component", "recommend").
			Msg("Some movies have no indexed terms and only match by catalog order")
	}
	return engine, nil
}

// initCacheStore opens the response cache selected by cfg.Cache.Backend.
// In-process stores are also returned keyed by name so their sizes can be
// published by the metrics refresh service.
func initCacheStore(ctx context.Context, cfg *config.Config) (cache.Store, map[string]services.CacheStatsSource, error) {
	switch cfg.Cache.Backend {
	case cacheBackendMemory, "":
		store := cache.NewMemoryStore(tmdbCacheName, cfg.TMDB.CacheTTL)
		logging.Info().Str("backend", cacheBackendMemory).Msg("Response cache initialized")
		return store, map[string]services.CacheStatsSource{tmdbCacheName: store}, nil

	case cacheBackendRedis:
		store, err := cache.NewRedisStore(ctx, cache.RedisConfig{
			Addr:      cfg.Cache.RedisAddr,
			Password:  cfg.Cache.RedisPassword,
			DB:        cfg.Cache.RedisDB,
			KeyPrefix: redisKeyPrefix,
			Name:      tmdbCacheName,
		})
		if err != nil {
			return nil, nil, err
		}
		logging.Info().
			Str("backend", cacheBackendRedis).
			Str("addr", cfg.Cache.RedisAddr).
			Msg("Response cache initialized")
		return store, nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// initTMDB returns the TMDB client, or a nil provider when TMDB is disabled
// so the handler answers 503 on the proxy endpoints.
func initTMDB(cfg *config.Config, store cache.Store) api.MovieInfoProvider {
	if !cfg.TMDB.Enabled {
		logging.Info().Msg("TMDB enrichment disabled (TMDB_ENABLED=false)")
		return nil
	}
	logging.Info().
		Str("base_url", cfg.TMDB.BaseURL).
		Float64("requests_per_second", cfg.TMDB.RequestsPerSecond).
		Dur("cache_ttl", cfg.TMDB.CacheTTL).
		Msg("TMDB client initialized")
	return tmdb.NewClient(&cfg.TMDB, store)
}
