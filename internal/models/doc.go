// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package models defines the JSON shapes returned by the HTTP API.
//
// Every endpoint wraps its payload in APIResponse; failures carry an
// APIError with one of the codes listed on that type.
package models
