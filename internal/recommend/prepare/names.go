// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package prepare

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// namedEntry is one element of the TMDB JSON array columns. Genres and
// keywords carry {id, name}; cast adds character; crew adds job.
type namedEntry struct {
	Name string `json:"name"`
	Job  string `json:"job,omitempty"`
}

func decodeEntries(raw string) ([]namedEntry, error) {
	var entries []namedEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decode %q: %w", excerpt(raw), err)
	}
	return entries, nil
}

// JoinNames returns the name of every entry joined by single spaces.
func JoinNames(raw string) (string, error) {
	entries, err := decodeEntries(raw)
	if err != nil {
		return "", err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return strings.Join(names, " "), nil
}

// LeadingNames returns the names of the first n entries.
func LeadingNames(raw string, n int) ([]string, error) {
	entries, err := decodeEntries(raw)
	if err != nil {
		return nil, err
	}
	if len(entries) > n {
		entries = entries[:n]
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names, nil
}

// Directors returns the names of crew entries whose job is "Director".
func Directors(raw string) ([]string, error) {
	entries, err := decodeEntries(raw)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.Job == "Director" {
			names = append(names, e.Name)
		}
	}
	return names, nil
}

func excerpt(s string) string {
	const limit = 40
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
