// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package recommend implements the content similarity engine.
//
// # Pipeline
//
// Construction runs four stages once, in order:
//
//   - Catalog Loader: CSV with required columns title, overview, genres,
//     keywords, cast and crew; extra columns are passed through
//   - Feature Composer: one space-joined document per movie
//   - Vectorizer: smoothed TF-IDF with English stopword removal
//   - Similarity Index: full pairwise cosine matrix
//
// Queries then read the immutable result.
//
// # Usage
//
//	engine, err := recommend.NewEngineFromFile("data/movies.csv")
//	if err != nil {
//	    var loadErr *recommend.CatalogLoadError
//	    // fatal: no engine without a catalog
//	}
//
//	titles, err := engine.Recommend("Avatar", 10)
//	if errors.Is(err, recommend.ErrMovieNotFound) {
//	    // show "not in database"
//	}
//
// # Error Handling
//
// The package never logs. CatalogLoadError is returned for unreadable or
// malformed sources and MovieNotFoundError for unknown titles. Callers decide
// how to report them.
//
// # Known Ambiguities
//
// Titles are not unique in real catalogs. Lookup always resolves to the
// first matching row. The query movie is excluded by dropping the first
// ranked entry rather than by identity, so an earlier row tied at the
// maximal score is dropped in its place.
package recommend
