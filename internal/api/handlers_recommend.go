// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
)

// Recommendation strategies, used as the metric label and in responses.
const (
	strategyContent = "content"
	strategyGenre   = "genre"
	strategyMood    = "mood"
)

// enrichTimeout bounds the whole best-effort enrichment pass.
const enrichTimeout = 15 * time.Second

// ContentRecommendations handles GET /api/v1/recommendations/content.
// k defaults to catalog.default_k and is capped at catalog.max_k.
func (h *Handler) ContentRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	k, err := intQueryParam(r, "k", h.catalog.DefaultK)
	if err != nil {
		metrics.RecordRecommendation(strategyContent, "invalid", time.Since(start))
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	req := ContentRequest{
		Title:   r.URL.Query().Get("title"),
		K:       k,
		Details: boolQueryParam(r, "details"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		metrics.RecordRecommendation(strategyContent, "invalid", time.Since(start))
		respondValidationError(w, apiErr)
		return
	}

	ranked, err := h.engine.RecommendScored(req.Title, h.clampK(req.K))
	if err != nil {
		var notFound *recommend.MovieNotFoundError
		if errors.As(err, &notFound) {
			metrics.RecordRecommendation(strategyContent, "not_found", time.Since(start))
			respondError(w, http.StatusNotFound, ErrCodeMovieNotFound, "Movie not found: "+sanitizeLogValue(req.Title), nil)
			return
		}
		metrics.RecordRecommendation(strategyContent, "error", time.Since(start))
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to compute recommendations", err)
		return
	}

	results := make([]models.Recommendation, len(ranked))
	for i, rec := range ranked {
		score := rec.Score
		results[i] = models.Recommendation{Title: rec.Title, Score: &score}
	}
	if req.Details {
		h.enrich(r.Context(), results)
	}

	metrics.RecordRecommendation(strategyContent, "ok", time.Since(start))
	logging.Ctx(r.Context()).Debug().
		Str("component", "recommend").
		Str("strategy", strategyContent).
		Int("k", req.K).
		Int("results", len(results)).
		Msg("Content recommendations served")

	respondSuccess(w, r, http.StatusOK, models.RecommendationResponse{
		Strategy: strategyContent,
		Query:    req.Title,
		Count:    len(results),
		Results:  results,
	}, start)
}

// GenreRecommendations handles POST /api/v1/recommendations/genre.
func (h *Handler) GenreRecommendations(w http.ResponseWriter, r *http.Request) {
	var req GenreRequest
	if !h.decodeAndValidate(w, r, strategyGenre, &req) {
		return
	}
	h.generated(w, r, strategyGenre, req.Genre, req.Number, req.Details, func(ctx context.Context, n int) ([]string, error) {
		return h.llm.GenreTitles(ctx, req.Genre, n)
	})
}

// MoodRecommendations handles POST /api/v1/recommendations/mood.
func (h *Handler) MoodRecommendations(w http.ResponseWriter, r *http.Request) {
	var req MoodRequest
	if !h.decodeAndValidate(w, r, strategyMood, &req) {
		return
	}
	h.generated(w, r, strategyMood, req.Mood, req.Number, req.Details, func(ctx context.Context, n int) ([]string, error) {
		return h.llm.MoodTitles(ctx, req.Mood, n)
	})
}

func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, strategy string, dest interface{}) bool {
	if err := decodeJSONBody(r, dest); err != nil {
		metrics.RecordRecommendation(strategy, "invalid", 0)
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return false
	}
	if apiErr := validateRequest(dest); apiErr != nil {
		metrics.RecordRecommendation(strategy, "invalid", 0)
		respondValidationError(w, apiErr)
		return false
	}
	return true
}

// generated runs an LLM strategy and writes its response.
func (h *Handler) generated(w http.ResponseWriter, r *http.Request, strategy, query string, number int, details bool, ask func(context.Context, int) ([]string, error)) {
	if !h.llmConfigured() {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "LLM recommendations are not configured", nil)
		return
	}
	start := time.Now()

	n := number
	if n == 0 {
		n = h.catalog.DefaultK
	}
	n = h.clampK(n)

	titles, err := ask(r.Context(), n)
	if err != nil {
		metrics.RecordRecommendation(strategy, "error", time.Since(start))
		respondExternalError(w, "LLM", err)
		return
	}

	results := make([]models.Recommendation, len(titles))
	for i, title := range titles {
		results[i] = models.Recommendation{Title: title}
	}
	if details {
		h.enrich(r.Context(), results)
	}

	metrics.RecordRecommendation(strategy, "ok", time.Since(start))
	respondSuccess(w, r, http.StatusOK, models.RecommendationResponse{
		Strategy: strategy,
		Query:    query,
		Count:    len(results),
		Results:  results,
	}, start)
}

// enrich attaches TMDB details to each result in place. Failures leave
// Details nil; enrichment never fails the request.
func (h *Handler) enrich(ctx context.Context, results []models.Recommendation) {
	if h.movies == nil || len(results) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, enrichTimeout)
	defer cancel()

	sem := make(chan struct{}, h.enrichLimit)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(rec *models.Recommendation) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			details, err := h.movies.MovieDetails(ctx, rec.Title)
			if err != nil {
				logging.Ctx(ctx).Debug().Err(err).Str("title", sanitizeLogValue(rec.Title)).Msg("TMDB enrichment skipped")
				return
			}
			rec.Details = details
		}(&results[i])
	}
	wg.Wait()
}
