// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package llm asks an OpenAI-compatible chat model for movie titles by genre
// or mood. Replies are expected one title per line; ParseTitles cleans up
// numbering, bullets and quotes. Calls run through a circuit breaker.
package llm
