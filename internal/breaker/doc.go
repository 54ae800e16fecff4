// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package breaker wraps sony/gobreaker for the outbound TMDB and LLM clients.

A Breaker trips once at least MinRequests calls have been seen in the
current interval and the failure ratio reaches FailureRatio (defaults 10
and 0.6). While open, calls fail fast with an error satisfying IsRejected.
After Timeout it admits MaxRequests trial calls before closing again.

Every breaker exports:

  - marquee_circuit_breaker_state{name}: 0 closed, 1 half-open, 2 open
  - marquee_circuit_breaker_requests_total{name,result}
  - marquee_circuit_breaker_transitions_total{name,from,to}

Do gives typed results without the caller asserting on any:

	b := breaker.New(breaker.Settings{Name: "tmdb-api"})
	details, err := breaker.Do(b, func() (*tmdb.MovieDetails, error) {
	    return c.fetchDetails(ctx, id)
	})
*/
package breaker
