// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
)

// Health reports catalog size, enabled integrations and uptime.
// The engine is built before the server starts, so a running process is
// always healthy.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	stats := h.engine.Stats()
	metrics.UpdateUptime(h.startTime)

	respondSuccess(w, r, http.StatusOK, models.HealthStatus{
		Status:         "healthy",
		Version:        Version,
		Movies:         stats.Movies,
		VocabularySize: stats.VocabularySize,
		Uptime:         time.Since(h.startTime).Seconds(),
		TMDBEnabled:    h.movies != nil,
		LLMEnabled:     h.llmConfigured(),
	}, time.Time{})
}
