// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package main is the entry point for the Marquee server.

Marquee recommends movies three ways: by content similarity over a local
catalog (TF-IDF and cosine similarity), and by genre or mood through an
OpenAI-compatible chat completion API. Results can be enriched with
posters, trailers and credits from TMDB.

# Startup

 1. Configuration: .env (godotenv), config.yaml and environment (koanf v2)
 2. Logging: zerolog, json or console
 3. Engine: load the catalog CSV and build the similarity matrix (fatal on error)
 4. Response cache: in-process (default) or Redis
 5. TMDB and LLM clients, each behind a circuit breaker
 6. User store: BadgerDB (default) or MongoDB, plus the JWT manager
 7. Chi router
 8. Supervisor tree:

	RootSupervisor ("marquee")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── MetricsRefreshService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

# Signals

SIGINT and SIGTERM cancel the root context. The HTTP server drains for up
to HTTP_SHUTDOWN_TIMEOUT, then the response cache and user store are
closed.

# Example

	export CATALOG_PATH=./data/movies.csv
	export JWT_SECRET=$(openssl rand -base64 48)
	export TMDB_ENABLED=true TMDB_API_KEY=...
	export LLM_ENABLED=true LLM_API_KEY=...
	./marquee

Build the catalog first with cmd/prepare.
*/
package main
