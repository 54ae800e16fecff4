// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"time"
)

// APIResponse is the envelope every HTTP endpoint returns.
//
// Status is "success" with Data populated, or "error" with Error populated.
//
//	{
//	  "status": "success",
//	  "data": {"query": "Avatar", "count": 5, "results": [...]},
//	  "metadata": {"timestamp": "2026-10-19T12:00:00Z", "query_time_ms": 1}
//	}
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "metadata": {"timestamp": "2026-10-19T12:00:00Z"},
//	  "error": {"code": "MOVIE_NOT_FOUND", "message": "Movie not found: Avatr"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata describes how a response was produced.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	RequestID   string    `json:"request_id,omitempty"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError is a machine-readable error code plus a human-readable message.
//
// Codes used by the API:
//   - VALIDATION_ERROR: bad query parameter or request body
//   - MOVIE_NOT_FOUND: title not in the catalog or unknown to TMDB
//   - UNAUTHORIZED: missing or invalid bearer token, bad credentials
//   - CONFLICT: username or email already registered
//   - SERVICE_UNAVAILABLE: TMDB or the LLM is not configured, or its circuit is open
//   - EXTERNAL_SERVICE_ERROR: TMDB or the LLM returned an error
//   - RATE_LIMIT_EXCEEDED: too many requests from this client
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
