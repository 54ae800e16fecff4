// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/marquee/internal/breaker"
	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
)

// maxErrorBodySize limits how much of a failed response is kept in StatusError.
const maxErrorBodySize = 64 * 1024

// serviceName labels metrics and the circuit breaker.
const serviceName = "tmdb"

var (
	// ErrMovieNotFound is returned when a title search has no results.
	ErrMovieNotFound = errors.New("tmdb: movie not found")

	// ErrInvalidPage is returned for page numbers below 1.
	ErrInvalidPage = errors.New("tmdb: page must be >= 1")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb: %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Client talks to the TMDB v3 REST API. Every call waits on a token-bucket
// limiter, passes through a circuit breaker and is cached by endpoint and
// parameters. Safe for concurrent use.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	imageBaseURL string
	apiKey       string

	limiter  *rate.Limiter
	breaker  *breaker.Breaker
	store    cache.Store
	cacheTTL time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBreaker replaces the default circuit breaker.
func WithBreaker(b *breaker.Breaker) Option {
	return func(c *Client) { c.breaker = b }
}

// NewClient creates a TMDB client. store may be nil to disable caching.
func NewClient(cfg *config.TMDBConfig, store cache.Store, opts ...Option) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 20
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}

	c := &Client{
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		imageBaseURL: cfg.ImageBaseURL,
		apiKey:       cfg.APIKey,
		limiter:      rate.NewLimiter(rate.Limit(rps), burst),
		store:        store,
		cacheTTL:     cfg.CacheTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.breaker == nil {
		c.breaker = breaker.New(breaker.Settings{
			Name:         "tmdb-api",
			Interval:     breaker.DefaultInterval,
			IsSuccessful: countsAsSuccess,
		})
	}
	return c
}

// countsAsSuccess keeps client errors from tripping the breaker. A 404 or a
// bad query says nothing about TMDB's health; 429 and 5xx do.
func countsAsSuccess(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode >= 400 && se.StatusCode < 500 && se.StatusCode != http.StatusTooManyRequests
	}
	return false
}

// get fetches endpoint with params and decodes the JSON body into dest.
// Cached responses skip the limiter and the breaker entirely.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, dest any) error {
	if params == nil {
		params = url.Values{}
	}
	key := cache.GenerateKey("tmdb", endpoint+"?"+params.Encode())

	if c.store != nil {
		hit, err := c.store.GetJSON(ctx, key, dest)
		if err != nil {
			logging.Ctx(ctx).Debug().Err(err).Str("endpoint", endpoint).Msg("TMDB cache read failed")
		} else if hit {
			return nil
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("tmdb: rate limiter: %w", err)
	}

	start := time.Now()
	body, err := breaker.Do(c.breaker, func() ([]byte, error) {
		return c.fetch(ctx, endpoint, params)
	})
	metrics.RecordExternalCall(serviceName, endpointLabel(endpoint), time.Since(start), err)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("tmdb: decode %s: %w", endpoint, err)
	}

	if c.store != nil {
		if err := c.store.SetJSON(ctx, key, dest, c.cacheTTL); err != nil {
			logging.Ctx(ctx).Debug().Err(err).Str("endpoint", endpoint).Msg("TMDB cache write failed")
		}
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("api_key", c.apiKey)

	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("tmdb: create request: %w", redactURL(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb: request %s: %w", endpoint, redactURL(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Body:       string(readBodyForError(resp.Body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tmdb: read %s: %w", endpoint, err)
	}
	return body, nil
}

// redactURL strips the query, and with it api_key, from a *url.Error so the
// key never reaches logs or API error details.
func redactURL(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		if u, perr := url.Parse(ue.URL); perr == nil {
			u.RawQuery = ""
			ue.URL = u.String()
		} else {
			ue.URL = "(redacted)"
		}
	}
	return err
}

// readBodyForError reads at most maxErrorBodySize bytes of r.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	return body
}

// endpointLabel replaces numeric path segments so metric labels stay bounded.
func endpointLabel(endpoint string) string {
	parts := strings.Split(endpoint, "/")
	for i, p := range parts {
		if _, err := strconv.Atoi(p); err == nil {
			parts[i] = "{id}"
		}
	}
	return strings.Join(parts, "/")
}

func (c *Client) posterURL(path string) string {
	if path == "" {
		return ""
	}
	return c.imageBaseURL + path
}
