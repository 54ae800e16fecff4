// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
served at /metrics by promhttp.

# Available Metrics

Engine (set once at startup):
  - marquee_engine_build_duration_seconds
  - marquee_catalog_movies
  - marquee_vocabulary_terms
  - marquee_zero_vector_movies

Recommendations:
  - marquee_recommendation_requests_total{strategy, outcome}
  - marquee_recommendation_duration_seconds{strategy}

Caching and resilience:
  - marquee_cache_hits_total{cache_type}, marquee_cache_misses_total{cache_type}
  - marquee_circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - marquee_circuit_breaker_requests_total{name, result}
  - marquee_circuit_breaker_transitions_total{name, from, to}

HTTP and external calls:
  - marquee_api_requests_total{method, endpoint, status_code}
  - marquee_api_request_duration_seconds{method, endpoint}
  - marquee_api_active_requests
  - marquee_api_rate_limit_hits_total{endpoint}
  - marquee_external_api_duration_seconds{service, endpoint}
  - marquee_external_api_errors_total{service, endpoint}

Auth:
  - marquee_auth_events_total{event, result}

The endpoint label is the chi route pattern, not the raw path, so the label
set stays bounded.
*/
package metrics
