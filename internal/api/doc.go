// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package api serves the Marquee HTTP API on a chi router.

# Routes

	GET  /health
	GET  /metrics
	GET  /api/v1/movies/titles
	GET  /api/v1/movies/suggest?q=&limit=
	GET  /api/v1/movies/top-rated?page=
	GET  /api/v1/movies/trending?page=
	GET  /api/v1/movies/details?title=
	GET  /api/v1/recommendations/content?title=&k=&details=
	POST /api/v1/recommendations/genre   {"genre": "...", "number": 5}
	POST /api/v1/recommendations/mood    {"mood": "...", "number": 5}
	POST /api/v1/auth/register           {"username", "email", "password"}
	POST /api/v1/auth/login              {"username", "password"}
	GET  /api/v1/auth/check              Authorization: Bearer <token>

Every response body is a models.APIResponse envelope. Errors carry a code
from models.APIError; respondError is the only place that writes one.

# Middleware

Global: request ID, real IP, access log, panic recovery, CORS. Under
/api/v1: per-IP rate limiting via httprate and Prometheus request metrics.
The recommendation and TMDB routes additionally require a bearer token when
security.require_auth is set.

# Optional collaborators

TMDB and the LLM are optional. A nil MovieInfoProvider turns the TMDB
routes into 503 SERVICE_UNAVAILABLE and makes details=true a no-op; an
unconfigured TitleGenerator does the same for the genre and mood routes.
*/
package api
