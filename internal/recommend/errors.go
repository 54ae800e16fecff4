// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"errors"
	"fmt"
)

var (
	// ErrMovieNotFound matches any MovieNotFoundError via errors.Is.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrInvalidK is returned when a recommendation count is below 1.
	ErrInvalidK = errors.New("k must be at least 1")

	// ErrMissingColumns is wrapped by CatalogLoadError when the header lacks
	// a required column.
	ErrMissingColumns = errors.New("missing required columns")

	// ErrMissingHeader is wrapped by CatalogLoadError when the source is empty.
	ErrMissingHeader = errors.New("missing header row")
)

// CatalogLoadError reports a catalog that could not be read or parsed.
// An Engine is never constructed from a failed load.
type CatalogLoadError struct {
	Source string
	Err    error
}

func (e *CatalogLoadError) Error() string {
	return fmt.Sprintf("load catalog %s: %v", e.Source, e.Err)
}

func (e *CatalogLoadError) Unwrap() error {
	return e.Err
}

// MovieNotFoundError reports a title with no exact match in the catalog.
type MovieNotFoundError struct {
	Title string
}

func (e *MovieNotFoundError) Error() string {
	return fmt.Sprintf("movie %q not found in catalog", e.Title)
}

// Is makes errors.Is(err, ErrMovieNotFound) hold.
func (e *MovieNotFoundError) Is(target error) bool {
	return target == ErrMovieNotFound
}
