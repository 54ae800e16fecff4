// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	testMovies = "genres,keywords,overview,popularity,release_date,title,vote_average,vote_count\n" +
		`"[{""id"": 80, ""name"": ""Crime""}]","[{""id"": 1, ""name"": ""heist""}]",A crew plans one last job,50.1,1995-12-15,Heat,7.7,3000` + "\n"
	testCredits = "movie_id,title,cast,crew\n" +
		`949,Heat,"[{""name"": ""Al Pacino""}]","[{""job"": ""Director"", ""name"": ""Michael Mann""}]"` + "\n"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	movies := writeFile(t, dir, "movies.csv", testMovies)
	credits := writeFile(t, dir, "credits.csv", testCredits)
	out := filepath.Join(dir, "catalog.csv")

	stats, err := run(movies, credits, out)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if stats.Written != 1 {
		t.Errorf("Written = %d, want 1", stats.Written)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := "949,Heat,A crew plans one last job,Crime,heist,7.7,3000,50.1,1995-12-15,Al Pacino,Michael Mann"
	if !strings.Contains(string(data), want) {
		t.Errorf("output = %q, want a row %q", data, want)
	}

	leftovers, _ := filepath.Glob(filepath.Join(dir, ".catalog-*"))
	if len(leftovers) != 0 {
		t.Errorf("temporary files left behind: %v", leftovers)
	}
}

func TestRunFailureKeepsExistingCatalog(t *testing.T) {
	dir := t.TempDir()
	movies := writeFile(t, dir, "movies.csv", "title\nHeat\n")
	credits := writeFile(t, dir, "credits.csv", testCredits)
	out := writeFile(t, dir, "catalog.csv", "previous contents")

	if _, err := run(movies, credits, out); err == nil {
		t.Fatal("run() with incomplete movies header returned nil error")
	}

	data, _ := os.ReadFile(out)
	if string(data) != "previous contents" {
		t.Errorf("catalog overwritten on failure: %q", data)
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	if _, err := run(filepath.Join(dir, "nope.csv"), filepath.Join(dir, "nope2.csv"), filepath.Join(dir, "out.csv")); err == nil {
		t.Error("run() with missing input returned nil error")
	}
}
