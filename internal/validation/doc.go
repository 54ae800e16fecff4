// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is created on first use and reused; it caches
// struct metadata and is safe for concurrent use. Errors report the json tag
// name of each field and convert to the VALIDATION_ERROR API shape through
// ToAPIError.
//
// Custom tags:
//   - username: letters, digits, '.', '-' and '_'
//   - notblank: not empty after trimming whitespace
//
// Example:
//
//	type GenreRequest struct {
//	    Genre  string `json:"genre" validate:"required,notblank,max=64"`
//	    Number int    `json:"number" validate:"min=1,max=50"`
//	}
package validation
