// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package tmdb is a small client for The Movie Database v3 API.

It covers the four calls Marquee needs:

  - SearchMovie: search/movie
  - MovieDetails / MovieDetailsByID: movie/{id}?append_to_response=credits,videos
  - TopRated: movie/top_rated
  - Trending: trending/movie/day

Requests are throttled with golang.org/x/time/rate, wrapped in a breaker.Breaker
and cached through a cache.Store keyed by endpoint and query. The API key is
added after the cache key is computed, so keys never contain secrets.

Non-2xx responses return *StatusError carrying at most 64KB of the body.
4xx responses other than 429 do not count against the breaker.

Genre IDs in listing results are mapped to names with TMDB's fixed movie genre
table; unknown IDs are dropped.
*/
package tmdb
