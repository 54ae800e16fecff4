// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Command prepare builds the Marquee catalog CSV from the TMDB 5000 movies
// and credits files.
//
//	prepare -movies data/tmdb_5000_movies.csv -credits data/tmdb_5000_credits.csv -out data/movies.csv
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/recommend/prepare"
)

func main() {
	moviesPath := flag.String("movies", "data/tmdb_5000_movies.csv", "TMDB 5000 movies CSV")
	creditsPath := flag.String("credits", "data/tmdb_5000_credits.csv", "TMDB 5000 credits CSV")
	outPath := flag.String("out", "data/movies.csv", "catalog CSV to write")
	logFormat := flag.String("log-format", "console", "log format: console or json")
	flag.Parse()

	logging.Init(logging.Config{Level: "info", Format: *logFormat, Timestamp: true})

	start := time.Now()
	stats, err := run(*moviesPath, *creditsPath, *outPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("Catalog preparation failed")
	}

	logging.Info().
		Int("movies", stats.Movies).
		Int("credits", stats.Credits).
		Int("joined", stats.Joined).
		Int("dropped", stats.Dropped).
		Int("written", stats.Written).
		Str("out", *outPath).
		Dur("duration", time.Since(start)).
		Msg("Catalog written")
}

// run writes to a temporary file beside outPath and renames it into place,
// so a failed run never leaves a truncated catalog behind.
func run(moviesPath, creditsPath, outPath string) (prepare.Stats, error) {
	movies, err := os.Open(moviesPath)
	if err != nil {
		return prepare.Stats{}, fmt.Errorf("open movies: %w", err)
	}
	defer func() { _ = movies.Close() }()

	credits, err := os.Open(creditsPath)
	if err != nil {
		return prepare.Stats{}, fmt.Errorf("open credits: %w", err)
	}
	defer func() { _ = credits.Close() }()

	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".catalog-*.csv")
	if err != nil {
		return prepare.Stats{}, fmt.Errorf("create output: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	w := bufio.NewWriter(tmp)
	stats, err := prepare.Run(bufio.NewReader(movies), bufio.NewReader(credits), w)
	if err != nil {
		_ = tmp.Close()
		return stats, err
	}
	if err := w.Flush(); err != nil {
		_ = tmp.Close()
		return stats, fmt.Errorf("write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return stats, fmt.Errorf("close output: %w", err)
	}
	if err := os.Rename(tmp.Name(), outPath); err != nil {
		return stats, fmt.Errorf("rename output: %w", err)
	}
	return stats, nil
}
