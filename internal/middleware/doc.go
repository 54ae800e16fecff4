// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package middleware provides HTTP middleware components for the API router.

Every middleware has the chi signature func(http.Handler) http.Handler.

  - RequestID: reuses or generates X-Request-ID and stores it in the
    logging context
  - AccessLog: one zerolog line per request, level chosen by status
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern

Typical order in the router:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
