// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"time"

	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/tmdb"
)

// HealthStatus is returned by GET /health.
type HealthStatus struct {
	Status         string   `json:"status"`
	Version        string   `json:"version"`
	Movies         int      `json:"movies"`
	VocabularySize int      `json:"vocabulary_size"`
	Uptime         float64  `json:"uptime"`
	TMDBEnabled    bool     `json:"tmdb_enabled"`
	LLMEnabled     bool     `json:"llm_enabled"`
	OpenBreakers   []string `json:"open_breakers,omitempty"`
}

// TitleList is returned by GET /api/v1/movies/titles.
type TitleList struct {
	Count  int      `json:"count"`
	Titles []string `json:"titles"`
}

// TitleSuggestion is one autocomplete match.
type TitleSuggestion struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// SuggestResponse is returned by GET /api/v1/movies/suggest.
type SuggestResponse struct {
	Query       string            `json:"query"`
	Suggestions []TitleSuggestion `json:"suggestions"`
}

// Recommendation is one recommended title. Score is set for content
// similarity results only; Details when enrichment was requested and TMDB
// knew the title.
type Recommendation struct {
	Title   string             `json:"title"`
	Score   *float64           `json:"score,omitempty"`
	Details *tmdb.MovieDetails `json:"details,omitempty"`
}

// RecommendationResponse wraps the results of every recommendation strategy.
type RecommendationResponse struct {
	Strategy string           `json:"strategy"`
	Query    string           `json:"query"`
	Count    int              `json:"count"`
	Results  []Recommendation `json:"results"`
}

// LoginResponse is returned by POST /api/v1/auth/login.
type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      auth.Profile `json:"user"`
}

// TokenCheck is returned by GET /api/v1/auth/check.
type TokenCheck struct {
	Valid     bool      `json:"valid"`
	Username  string    `json:"username"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
