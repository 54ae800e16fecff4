// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package config provides centralized configuration management for Marquee.

Configuration is layered with koanf, lowest precedence first:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, then config.yaml, config.yml,
    /etc/marquee/config.yaml, /etc/marquee/config.yml
 3. Environment variables, after an optional .env file (DOTENV_PATH or
    ./.env) has been copied into the process environment

Only environment variables listed in envMappings are read.

# Sections

  - catalog: CATALOG_PATH, RECOMMEND_DEFAULT_K (10), RECOMMEND_MAX_K (100),
    RECOMMEND_WORKERS (0 = GOMAXPROCS)
  - server: HTTP_HOST, HTTP_PORT (5000), HTTP_*_TIMEOUT, ENVIRONMENT
  - security: JWT_SECRET (required, 32+ chars), SESSION_TIMEOUT,
    REQUIRE_AUTH, BCRYPT_COST, RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW,
    DISABLE_RATE_LIMIT, CORS_ORIGINS (comma separated)
  - tmdb: TMDB_ENABLED, TMDB_API_KEY, TMDB_BASE_URL, TMDB_IMAGE_BASE_URL,
    TMDB_TIMEOUT, TMDB_REQUESTS_PER_SECOND, TMDB_CACHE_TTL
  - llm: LLM_ENABLED, LLM_API_KEY or OPENAI_API_KEY, LLM_BASE_URL,
    LLM_MODEL (gpt-4o-mini), LLM_TEMPERATURE (0.7), LLM_MAX_TOKENS (150)
  - cache: CACHE_BACKEND (memory|redis), REDIS_ADDR, REDIS_PASSWORD, REDIS_DB
  - users: USER_STORE (badger|mongo), USER_STORE_PATH, MONGO_URI,
    MONGO_DATABASE, MONGO_COLLECTION
  - logging: LOG_LEVEL, LOG_FORMAT (json|console), LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

Validate reports the first invalid setting using the environment variable
name, so the message points at what to change.
*/
package config
