// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
)

// DefaultRefreshInterval is used when NewMetricsRefreshService gets a
// non-positive interval.
const DefaultRefreshInterval = time.Minute

// CacheStatsSource is implemented by cache.MemoryStore.
type CacheStatsSource interface {
	Stats() cache.Stats
}

// MetricsRefreshService keeps point-in-time gauges current: process uptime
// and the entry count of each in-process cache. Counters are updated inline
// by their callers and need no refresh.
type MetricsRefreshService struct {
	start    time.Time
	interval time.Duration
	caches   map[string]CacheStatsSource
	logger   zerolog.Logger
}

// NewMetricsRefreshService creates the service. caches is keyed by the
// cache_type label; nil is fine.
func NewMetricsRefreshService(start time.Time, interval time.Duration, caches map[string]CacheStatsSource) *MetricsRefreshService {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &MetricsRefreshService{
		start:    start,
		interval: interval,
		caches:   caches,
		logger:   logging.WithComponent("metrics-refresh"),
	}
}

// Serve implements suture.Service.
func (s *MetricsRefreshService) Serve(ctx context.Context) error {
	s.refresh()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.refresh()
		}
	}
}

func (s *MetricsRefreshService) refresh() {
	metrics.UpdateUptime(s.start)

	for name, src := range s.caches {
		stats := src.Stats()
		metrics.SetCacheEntries(name, stats.TotalKeys)
		s.logger.Debug().
			Str("cache", name).
			Int64("entries", stats.TotalKeys).
			Int64("hits", stats.Hits).
			Int64("misses", stats.Misses).
			Int64("evictions", stats.Evictions).
			Msg("cache stats")
	}
}

// String names the service in supervisor events.
func (s *MetricsRefreshService) String() string {
	return "metrics-refresh"
}
