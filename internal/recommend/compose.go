// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import "strings"

// Compose joins the six text fields of a movie with single spaces.
// Empty fields stay as empty segments, so a title-only movie composes to its
// title followed by five spaces.
func Compose(m Movie) string {
	return strings.Join([]string{
		m.Title, m.Overview, m.Genres, m.Keywords, m.Cast, m.Crew,
	}, " ")
}

// ComposeAll returns one document per catalog row, index-aligned.
func ComposeAll(c *Catalog) []string {
	docs := make([]string, len(c.movies))
	for i, m := range c.movies {
		docs[i] = Compose(m)
	}
	return docs
}
