// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/marquee/internal/breaker"
	"github.com/tomtom215/marquee/internal/llm"
	"github.com/tomtom215/marquee/internal/tmdb"
)

// Error codes for API responses
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeMovieNotFound      = "MOVIE_NOT_FOUND"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeExternalService    = "EXTERNAL_SERVICE_ERROR"
	ErrCodeRateLimited        = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal           = "INTERNAL_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
)

// respondExternalError maps a TMDB or LLM failure onto a status and code.
func respondExternalError(w http.ResponseWriter, service string, err error) {
	switch {
	case errors.Is(err, tmdb.ErrMovieNotFound):
		respondError(w, http.StatusNotFound, ErrCodeMovieNotFound, "Movie not found on TMDB", nil)
	case errors.Is(err, tmdb.ErrInvalidPage):
		respondError(w, http.StatusBadRequest, ErrCodeValidation, "page must be at least 1", nil)
	case errors.Is(err, llm.ErrNotConfigured):
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, service+" is not configured", nil)
	case breaker.IsRejected(err):
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, service+" is temporarily unavailable", err)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, ErrCodeExternalService, service+" timed out", err)
	default:
		respondError(w, http.StatusBadGateway, ErrCodeExternalService, service+" request failed", err)
	}
}
