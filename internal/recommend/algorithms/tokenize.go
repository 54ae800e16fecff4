// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package algorithms

import (
	"regexp"
	"strings"
)

// tokenPattern matches runs of two or more word characters.
// Single-character tokens are never emitted.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]{2,}`)

// Tokenize lower-cases text, splits it on word boundaries and removes
// English stopwords. The returned tokens keep their order of appearance
// and may contain repeats.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	matches := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := matches[:0]
	for _, m := range matches {
		if IsStopword(m) {
			continue
		}
		tokens = append(tokens, m)
	}

	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
