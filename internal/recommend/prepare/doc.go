// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package prepare builds a Marquee catalog CSV from the Kaggle TMDB 5000
// movies and credits files.
//
// The two files are inner-joined on title. The JSON array columns are
// flattened into plain text the engine tokenizes: genre and keyword names,
// the first three cast members and every director.
package prepare
