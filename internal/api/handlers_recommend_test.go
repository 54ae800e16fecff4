// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/marquee/internal/llm"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/tmdb"
)

func TestContentRecommendations(t *testing.T) {
	s := newTestServer(t, testServerOptions{})

	before := testutil.ToFloat64(metrics.RecommendationRequests.WithLabelValues("content", "ok"))

	rec, env := s.do(t, http.MethodGet, "/api/v1/recommendations/content?title=Avatar&k=2", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if env.Status != "success" {
		t.Errorf("envelope status = %q, want success", env.Status)
	}

	var got models.RecommendationResponse
	decodeData(t, env, &got)
	if got.Strategy != "content" || got.Query != "Avatar" {
		t.Errorf("strategy/query = %q/%q, want content/Avatar", got.Strategy, got.Query)
	}
	if got.Count != 2 || len(got.Results) != 2 {
		t.Fatalf("count = %d, results = %d; want 2", got.Count, len(got.Results))
	}
	if got.Results[0].Title != "Avatar 2" {
		t.Errorf("Results[0] = %q, want Avatar 2", got.Results[0].Title)
	}
	for _, r := range got.Results {
		if r.Title == "Avatar" {
			t.Error("query title returned in its own recommendations")
		}
		if r.Score == nil {
			t.Errorf("Score missing for %q", r.Title)
		}
		if r.Details != nil {
			t.Errorf("Details set for %q without details=true", r.Title)
		}
	}
	if *got.Results[0].Score < *got.Results[1].Score {
		t.Error("results not in descending score order")
	}

	if d := testutil.ToFloat64(metrics.RecommendationRequests.WithLabelValues("content", "ok")) - before; d != 1 {
		t.Errorf("content ok requests = %v, want 1", d)
	}
}

func TestContentRecommendationsKHandling(t *testing.T) {
	s := newTestServer(t, testServerOptions{defaultK: 2, maxK: 3})

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{"default k", "title=Heat", 2},
		{"explicit k", "title=Heat&k=1", 1},
		{"k capped at max", "title=Heat&k=50", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := s.do(t, http.MethodGet, "/api/v1/recommendations/content?"+tt.query, nil, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
			}
			var got models.RecommendationResponse
			decodeData(t, env, &got)
			if got.Count != tt.wantCount {
				t.Errorf("count = %d, want %d", got.Count, tt.wantCount)
			}
		})
	}
}

func TestContentRecommendationsErrors(t *testing.T) {
	s := newTestServer(t, testServerOptions{})

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantCode   string
	}{
		{"unknown title", "title=" + url.QueryEscape("Avatr"), http.StatusNotFound, ErrCodeMovieNotFound},
		{"case differs", "title=avatar", http.StatusNotFound, ErrCodeMovieNotFound},
		{"missing title", "k=2", http.StatusBadRequest, ErrCodeValidation},
		{"blank title", "title=%20%20", http.StatusBadRequest, ErrCodeValidation},
		{"k zero", "title=Avatar&k=0", http.StatusBadRequest, ErrCodeValidation},
		{"k negative", "title=Avatar&k=-3", http.StatusBadRequest, ErrCodeValidation},
		{"k not a number", "title=Avatar&k=ten", http.StatusBadRequest, ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := s.do(t, http.MethodGet, "/api/v1/recommendations/content?"+tt.query, nil, nil)
			expectError(t, rec, env, tt.wantStatus, tt.wantCode)
		})
	}
}

func TestContentRecommendationsEnrichment(t *testing.T) {
	movies := &fakeMovies{details: map[string]*tmdb.MovieDetails{
		"Avatar 2": {Movie: tmdb.Movie{ID: 76600, Title: "Avatar: The Way of Water"}, Director: "James Cameron"},
	}}
	s := newTestServer(t, testServerOptions{movies: movies})

	rec, env := s.do(t, http.MethodGet, "/api/v1/recommendations/content?title=Avatar&k=2&details=true", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var got models.RecommendationResponse
	decodeData(t, env, &got)
	if len(got.Results) != 2 {
		t.Fatalf("results = %d, want 2", len(got.Results))
	}
	if got.Results[0].Details == nil || got.Results[0].Details.Director != "James Cameron" {
		t.Errorf("Results[0].Details = %+v, want enriched", got.Results[0].Details)
	}
	// unknown to TMDB: best effort, no error
	if got.Results[1].Details != nil {
		t.Errorf("Results[1].Details = %+v, want nil", got.Results[1].Details)
	}
	if got.Results[0].Title != "Avatar 2" {
		t.Errorf("catalog title replaced by TMDB title: %q", got.Results[0].Title)
	}
}

func TestContentRecommendationsDetailsWithoutTMDB(t *testing.T) {
	s := newTestServer(t, testServerOptions{})

	rec, env := s.do(t, http.MethodGet, "/api/v1/recommendations/content?title=Avatar&k=1&details=true", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got models.RecommendationResponse
	decodeData(t, env, &got)
	if got.Results[0].Details != nil {
		t.Error("Details set although TMDB is disabled")
	}
}

func TestGenreRecommendations(t *testing.T) {
	gen := &fakeGenerator{configured: true, titles: []string{"Alien", "Aliens", "The Thing", "Event Horizon"}}
	s := newTestServer(t, testServerOptions{generator: gen, maxK: 3})

	rec, env := s.do(t, http.MethodPost, "/api/v1/recommendations/genre", map[string]interface{}{"genre": "horror", "number": 2}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var got models.RecommendationResponse
	decodeData(t, env, &got)
	if got.Strategy != "genre" || got.Query != "horror" || got.Count != 2 {
		t.Errorf("response = %+v, want genre/horror/2", got)
	}
	if got.Results[0].Title != "Alien" || got.Results[0].Score != nil {
		t.Errorf("Results[0] = %+v, want Alien without score", got.Results[0])
	}
	if kind, query, n := gen.last(); kind != "genre" || query != "horror" || n != 2 {
		t.Errorf("generator called with %s/%s/%d, want genre/horror/2", kind, query, n)
	}

	// number above max_k is capped, missing number uses default_k
	s.do(t, http.MethodPost, "/api/v1/recommendations/genre", map[string]interface{}{"genre": "horror", "number": 40}, nil)
	if _, _, n := gen.last(); n != 3 {
		t.Errorf("capped number = %d, want 3", n)
	}
	s.do(t, http.MethodPost, "/api/v1/recommendations/genre", map[string]interface{}{"genre": "horror"}, nil)
	if _, _, n := gen.last(); n != 3 {
		t.Errorf("default number = %d, want 3", n)
	}
}

func TestMoodRecommendations(t *testing.T) {
	gen := &fakeGenerator{configured: true, titles: []string{"Paddington 2", "Amélie"}}
	movies := &fakeMovies{details: map[string]*tmdb.MovieDetails{
		"Amélie": {Movie: tmdb.Movie{ID: 194, Title: "Amélie"}, Runtime: 122},
	}}
	s := newTestServer(t, testServerOptions{generator: gen, movies: movies})

	body := map[string]interface{}{"mood": "sad and need cheering up", "number": 2, "details": true}
	rec, env := s.do(t, http.MethodPost, "/api/v1/recommendations/mood", body, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	var got models.RecommendationResponse
	decodeData(t, env, &got)
	if got.Strategy != "mood" || got.Count != 2 {
		t.Errorf("response = %+v, want mood with 2 results", got)
	}
	if got.Results[0].Details != nil {
		t.Errorf("Paddington 2 details = %+v, want nil", got.Results[0].Details)
	}
	if got.Results[1].Details == nil || got.Results[1].Details.Runtime != 122 {
		t.Errorf("Amélie details = %+v, want runtime 122", got.Results[1].Details)
	}
	if kind, query, _ := gen.last(); kind != "mood" || query != "sad and need cheering up" {
		t.Errorf("generator called with %s/%s", kind, query)
	}
}

func TestGeneratedRecommendationsErrors(t *testing.T) {
	tests := []struct {
		name       string
		gen        TitleGenerator
		path       string
		body       interface{}
		wantStatus int
		wantCode   string
	}{
		{"llm not configured", nil, "/api/v1/recommendations/genre", map[string]interface{}{"genre": "drama"}, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"llm configured false", &fakeGenerator{}, "/api/v1/recommendations/mood", map[string]interface{}{"mood": "happy"}, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"empty body", &fakeGenerator{configured: true}, "/api/v1/recommendations/genre", "", http.StatusBadRequest, ErrCodeValidation},
		{"invalid json", &fakeGenerator{configured: true}, "/api/v1/recommendations/genre", "{genre:", http.StatusBadRequest, ErrCodeValidation},
		{"missing genre", &fakeGenerator{configured: true}, "/api/v1/recommendations/genre", map[string]interface{}{"number": 3}, http.StatusBadRequest, ErrCodeValidation},
		{"blank mood", &fakeGenerator{configured: true}, "/api/v1/recommendations/mood", map[string]interface{}{"mood": "   "}, http.StatusBadRequest, ErrCodeValidation},
		{"negative number", &fakeGenerator{configured: true}, "/api/v1/recommendations/genre", map[string]interface{}{"genre": "drama", "number": -1}, http.StatusBadRequest, ErrCodeValidation},
		{"circuit open", &fakeGenerator{configured: true, err: gobreaker.ErrOpenState}, "/api/v1/recommendations/genre", map[string]interface{}{"genre": "drama"}, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"upstream error", &fakeGenerator{configured: true, err: &llm.APIError{StatusCode: 500, Message: "boom"}}, "/api/v1/recommendations/mood", map[string]interface{}{"mood": "bored"}, http.StatusBadGateway, ErrCodeExternalService},
		{"empty reply", &fakeGenerator{configured: true, err: llm.ErrEmptyResponse}, "/api/v1/recommendations/genre", map[string]interface{}{"genre": "drama"}, http.StatusBadGateway, ErrCodeExternalService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, testServerOptions{generator: tt.gen})
			rec, env := s.do(t, http.MethodPost, tt.path, tt.body, nil)
			expectError(t, rec, env, tt.wantStatus, tt.wantCode)
		})
	}
}

func TestRespondExternalErrorMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{tmdb.ErrMovieNotFound, http.StatusNotFound},
		{tmdb.ErrInvalidPage, http.StatusBadRequest},
		{llm.ErrNotConfigured, http.StatusServiceUnavailable},
		{gobreaker.ErrTooManyRequests, http.StatusServiceUnavailable},
		{errors.New("dial tcp: refused"), http.StatusBadGateway},
	}
	for _, tt := range tests {
		s := newTestServer(t, testServerOptions{movies: &fakeMovies{err: tt.err}})
		rec, _ := s.do(t, http.MethodGet, "/api/v1/movies/details?title=Heat", nil, nil)
		if rec.Code != tt.wantStatus {
			t.Errorf("error %v: status = %d, want %d", tt.err, rec.Code, tt.wantStatus)
		}
	}
}
