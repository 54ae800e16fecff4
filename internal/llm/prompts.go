// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package llm

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SystemMessage instructs the model to answer with bare titles.
const SystemMessage = "You are a helpful assistant that recommends movies. Respond only with the titles of the movies, one per line."

// GenrePrompt builds the user prompt for genre recommendations.
func GenrePrompt(genre string, n int) string {
	return fmt.Sprintf("Recommend the best %d %s movies to watch. List only the titles, one per line:", n, capitalize(genre))
}

// MoodPrompt builds the user prompt for mood recommendations.
func MoodPrompt(mood string, n int) string {
	return fmt.Sprintf("Recommend the best %d movies to watch. If a person is feeling %s", n, capitalize(mood))
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// listMarker matches "1. ", "12) ", "3 - " and bullet prefixes. The
// trailing space is required so titles like "2001: A Space Odyssey" and
// "1917" survive.
var listMarker = regexp.MustCompile(`^(?:\d{1,3}[.)]\s+|\d{1,3}\s+-\s+|[-*•]\s+)`)

// ParseTitles extracts up to n titles from a line-per-title reply. List
// markers and wrapping quotes are removed and blank lines skipped. n <= 0
// keeps every title.
func ParseTitles(text string, n int) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	titles := make([]string, 0, len(lines))

	for _, line := range lines {
		title := strings.TrimSpace(line)
		title = listMarker.ReplaceAllString(title, "")
		title = strings.Trim(title, "\"'“”*")
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		titles = append(titles, title)
		if n > 0 && len(titles) == n {
			break
		}
	}
	return titles
}
