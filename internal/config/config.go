// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Catalog  CatalogConfig  `koanf:"catalog"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	TMDB     TMDBConfig     `koanf:"tmdb"`
	LLM      LLMConfig      `koanf:"llm"`
	Cache    CacheConfig    `koanf:"cache"`
	Users    UsersConfig    `koanf:"users"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// CatalogConfig configures the content similarity engine.
type CatalogConfig struct {
	// Path is the catalog CSV the engine is built from at startup.
	Path string `koanf:"path"`

	// DefaultK is the result count used when a request omits k.
	DefaultK int `koanf:"default_k"`

	// MaxK caps k for a single request.
	MaxK int `koanf:"max_k"`

	// Workers bounds the similarity build worker pool (0 = GOMAXPROCS).
	Workers int `koanf:"workers"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// Environment is "development" or "production"; production enables
	// stricter checks on CORS.
	Environment string `koanf:"environment"`
}

// Addr returns host:port for net.Listen.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SecurityConfig holds authentication and request limiting settings
type SecurityConfig struct {
	// RequireAuth gates the recommendation endpoints behind a bearer token.
	RequireAuth bool `koanf:"require_auth"`

	JWTSecret      string        `koanf:"jwt_secret"`
	SessionTimeout time.Duration `koanf:"session_timeout"`
	BcryptCost     int           `koanf:"bcrypt_cost"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// TMDBConfig configures the movie metadata client.
type TMDBConfig struct {
	Enabled           bool          `koanf:"enabled"`
	APIKey            string        `koanf:"api_key"`
	BaseURL           string        `koanf:"base_url"`
	ImageBaseURL      string        `koanf:"image_base_url"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	CacheTTL          time.Duration `koanf:"cache_ttl"`
}

// LLMConfig configures the chat completion client behind the genre and
// mood strategies.
type LLMConfig struct {
	Enabled     bool          `koanf:"enabled"`
	APIKey      string        `koanf:"api_key"`
	BaseURL     string        `koanf:"base_url"`
	Model       string        `koanf:"model"`
	Temperature float64       `koanf:"temperature"`
	MaxTokens   int           `koanf:"max_tokens"`
	Timeout     time.Duration `koanf:"timeout"`
}

// CacheConfig selects the response cache backend.
type CacheConfig struct {
	// Backend is "memory" (default) or "redis".
	Backend       string `koanf:"backend"`
	RedisAddr     string `koanf:"redis_addr"`
	RedisPassword string `koanf:"redis_password"`
	RedisDB       int    `koanf:"redis_db"`
}

// UsersConfig selects the user account store.
type UsersConfig struct {
	// Backend is "badger" (default) or "mongo".
	Backend         string `koanf:"backend"`
	BadgerPath      string `koanf:"badger_path"`
	MongoURI        string `koanf:"mongo_uri"`
	MongoDatabase   string `koanf:"mongo_database"`
	MongoCollection string `koanf:"mongo_collection"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional YAML file, a .env
// file and the environment, in increasing order of precedence.
func Load() (*Config, error) {
	cfg, err := LoadWithKoanf()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
