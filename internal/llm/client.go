// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/breaker"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/metrics"
)

const (
	serviceName      = "llm"
	chatEndpoint     = "chat/completions"
	maxErrorBodySize = 64 * 1024
)

var (
	// ErrNotConfigured is returned when the client has no API key.
	ErrNotConfigured = errors.New("llm: not configured")

	// ErrEmptyResponse is returned when the model replies with no titles.
	ErrEmptyResponse = errors.New("llm: empty response")
)

// APIError is a non-2xx reply from the completion endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("llm: chat completion returned status %d: %s", e.StatusCode, e.Message)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model            string        `json:"model"`
	Messages         []chatMessage `json:"messages"`
	Temperature      float64       `json:"temperature"`
	MaxTokens        int           `json:"max_tokens"`
	TopP             float64       `json:"top_p"`
	FrequencyPenalty float64       `json:"frequency_penalty"`
	PresencePenalty  float64       `json:"presence_penalty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Client calls an OpenAI-compatible chat completion API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	breaker     *breaker.Breaker
}

// NewClient creates a client from config. A client without an API key is
// valid but every call returns ErrNotConfigured.
func NewClient(cfg *config.LLMConfig, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		httpClient:  hc,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		breaker: breaker.New(breaker.Settings{
			Name:     "llm-api",
			Interval: breaker.DefaultInterval,
		}),
	}
}

// Configured reports whether the client can make calls.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

// GenreTitles asks for n titles in genre.
func (c *Client) GenreTitles(ctx context.Context, genre string, n int) ([]string, error) {
	return c.Titles(ctx, GenrePrompt(genre, n), n)
}

// MoodTitles asks for n titles suited to mood.
func (c *Client) MoodTitles(ctx context.Context, mood string, n int) ([]string, error) {
	return c.Titles(ctx, MoodPrompt(mood, n), n)
}

// Titles sends prompt and returns at most n parsed titles.
func (c *Client) Titles(ctx context.Context, prompt string, n int) ([]string, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	start := time.Now()
	content, err := breaker.Do(c.breaker, func() (string, error) {
		return c.complete(ctx, prompt)
	})
	metrics.RecordExternalCall(serviceName, chatEndpoint, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	titles := ParseTitles(content, n)
	if len(titles) == 0 {
		return nil, ErrEmptyResponse
	}
	return titles, nil
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemMessage},
			{Role: "user", Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		TopP:        1,
	})
	if err != nil {
		return "", fmt.Errorf("llm: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+chatEndpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("llm: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize*16))
	if err != nil {
		return "", fmt.Errorf("llm: read response: %w", err)
	}

	var parsed chatResponse
	decodeErr := json.Unmarshal(body, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := string(body)
		if len(msg) > maxErrorBodySize {
			msg = msg[:maxErrorBodySize]
		}
		if decodeErr == nil && parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return "", &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return "", fmt.Errorf("llm: decode response: %w", decodeErr)
	}
	if len(parsed.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
