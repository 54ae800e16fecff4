// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/tmdb"
)

// Titles lists every catalog title in catalog order, duplicates included.
func (h *Handler) Titles(w http.ResponseWriter, r *http.Request) {
	titles := h.engine.Titles()
	respondSuccess(w, r, http.StatusOK, models.TitleList{
		Count:  len(titles),
		Titles: titles,
	}, time.Time{})
}

// Suggest returns catalog titles starting with q, case-insensitively.
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, err := intQueryParam(r, "limit", cache.DefaultSuggestions)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	req := SuggestRequest{Query: r.URL.Query().Get("q"), Limit: limit}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	matches := h.titles.Suggest(req.Query, h.clampK(req.Limit))
	suggestions := make([]models.TitleSuggestion, len(matches))
	for i, m := range matches {
		suggestions[i] = models.TitleSuggestion{Title: m.Title, Count: m.Count}
	}

	respondSuccess(w, r, http.StatusOK, models.SuggestResponse{
		Query:       req.Query,
		Suggestions: suggestions,
	}, start)
}

// TopRated proxies TMDB's top rated listing.
func (h *Handler) TopRated(w http.ResponseWriter, r *http.Request) {
	h.listing(w, r, func(ctx context.Context, page int) (*tmdb.MoviePage, error) {
		return h.movies.TopRated(ctx, page)
	})
}

// Trending proxies TMDB's daily trending listing.
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	h.listing(w, r, func(ctx context.Context, page int) (*tmdb.MoviePage, error) {
		return h.movies.Trending(ctx, page)
	})
}

func (h *Handler) listing(w http.ResponseWriter, r *http.Request, fetch func(context.Context, int) (*tmdb.MoviePage, error)) {
	if h.movies == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "TMDB is not configured", nil)
		return
	}
	start := time.Now()

	page, err := intQueryParam(r, "page", 1)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	req := PageRequest{Page: page}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	result, err := fetch(r.Context(), req.Page)
	if err != nil {
		respondExternalError(w, "TMDB", err)
		return
	}
	respondSuccess(w, r, http.StatusOK, result, start)
}

// Details returns TMDB details for one title.
func (h *Handler) Details(w http.ResponseWriter, r *http.Request) {
	if h.movies == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "TMDB is not configured", nil)
		return
	}
	start := time.Now()

	req := DetailsRequest{Title: r.URL.Query().Get("title")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	details, err := h.movies.MovieDetails(r.Context(), req.Title)
	if err != nil {
		respondExternalError(w, "TMDB", err)
		return
	}
	respondSuccess(w, r, http.StatusOK, details, start)
}
