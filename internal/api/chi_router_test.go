// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/middleware"
)

func TestRequireAuth(t *testing.T) {
	gen := &fakeGenerator{configured: true, titles: []string{"Heat"}}
	s := newTestServer(t, testServerOptions{requireAuth: true, generator: gen, movies: &fakeMovies{}})
	token := s.loginToken(t)

	protected := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodGet, "/api/v1/recommendations/content?title=Avatar", nil},
		{http.MethodPost, "/api/v1/recommendations/genre", map[string]string{"genre": "crime"}},
		{http.MethodPost, "/api/v1/recommendations/mood", map[string]string{"mood": "tense"}},
		{http.MethodGet, "/api/v1/movies/top-rated", nil},
		{http.MethodGet, "/api/v1/movies/trending", nil},
	}

	for _, p := range protected {
		t.Run(p.path, func(t *testing.T) {
			rec, env := s.do(t, p.method, p.path, p.body, nil)
			expectError(t, rec, env, http.StatusUnauthorized, ErrCodeUnauthorized)

			rec, env = s.do(t, p.method, p.path, p.body, bearer("forged.token.value"))
			expectError(t, rec, env, http.StatusUnauthorized, ErrCodeUnauthorized)

			rec, _ = s.do(t, p.method, p.path, p.body, bearer(token))
			if rec.Code != http.StatusOK {
				t.Errorf("with token: status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
			}
		})
	}

	// catalog browsing and auth stay public
	for _, path := range []string{"/health", "/api/v1/movies/titles", "/api/v1/movies/suggest?q=a"} {
		rec, _ := s.do(t, http.MethodGet, path, nil, nil)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, rec.Code)
		}
	}
}

func TestAuthNotRequiredByDefault(t *testing.T) {
	s := newTestServer(t, testServerOptions{})

	rec, _ := s.do(t, http.MethodGet, "/api/v1/recommendations/content?title=Avatar", nil, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, testServerOptions{rateLimit: 2})

	before := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues("/api/v1/movies/titles"))

	for i := 0; i < 2; i++ {
		rec, _ := s.do(t, http.MethodGet, "/api/v1/movies/titles", nil, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rec.Code)
		}
	}

	rec, env := s.do(t, http.MethodGet, "/api/v1/movies/titles", nil, nil)
	expectError(t, rec, env, http.StatusTooManyRequests, ErrCodeRateLimited)

	if d := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues("/api/v1/movies/titles")) - before; d != 1 {
		t.Errorf("rate limit hits = %v, want 1", d)
	}

	// health is outside /api/v1 and not limited
	rec, _ = s.do(t, http.MethodGet, "/health", nil, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("/health status = %d, want 200", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, testServerOptions{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommendations/genre", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if rec.Code >= 300 {
		t.Errorf("preflight status = %d, want 2xx", rec.Code)
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, testServerOptions{})

	rec, env := s.do(t, http.MethodGet, "/api/v1/nope", nil, nil)
	expectError(t, rec, env, http.StatusNotFound, ErrCodeNotFound)

	rec, env = s.do(t, http.MethodDelete, "/api/v1/movies/titles", nil, nil)
	expectError(t, rec, env, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed)
}

func TestRequestIDAndMetadata(t *testing.T) {
	s := newTestServer(t, testServerOptions{})

	header := http.Header{middleware.RequestIDHeader: []string{"trace-123"}}
	rec, env := s.do(t, http.MethodGet, "/api/v1/movies/titles", nil, header)
	if got := rec.Header().Get(middleware.RequestIDHeader); got != "trace-123" {
		t.Errorf("%s = %q, want trace-123", middleware.RequestIDHeader, got)
	}
	if env.Metadata.RequestID != "trace-123" {
		t.Errorf("metadata.request_id = %q, want trace-123", env.Metadata.RequestID)
	}
	if env.Metadata.Timestamp.IsZero() {
		t.Error("metadata.timestamp is zero")
	}

	rec, _ = s.do(t, http.MethodGet, "/health", nil, nil)
	if rec.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("generated request ID missing")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, testServerOptions{})

	s.do(t, http.MethodGet, "/api/v1/movies/titles", nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{"marquee_api_requests_total", "marquee_catalog_movies"} {
		if !strings.Contains(body, name) {
			t.Errorf("/metrics missing %s", name)
		}
	}
	if !strings.Contains(body, `endpoint="/api/v1/movies/titles"`) {
		t.Error("/metrics missing route pattern label for titles")
	}
}
