// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"
)

// Required catalog column names.
const (
	ColumnTitle    = "title"
	ColumnOverview = "overview"
	ColumnGenres   = "genres"
	ColumnKeywords = "keywords"
	ColumnCast     = "cast"
	ColumnCrew     = "crew"
)

// RequiredColumns lists the header names a catalog must contain.
var RequiredColumns = []string{
	ColumnTitle, ColumnOverview, ColumnGenres, ColumnKeywords, ColumnCast, ColumnCrew,
}

// Movie is one catalog row.
//
// Extra holds every non-required column by header name (vote_average,
// release_date and so on). The engine never reads it.
type Movie struct {
	Title    string            `json:"title"`
	Overview string            `json:"overview"`
	Genres   string            `json:"genres"`
	Keywords string            `json:"keywords"`
	Cast     string            `json:"cast"`
	Crew     string            `json:"crew"`
	Extra    map[string]string `json:"extra,omitempty"`
}

// Catalog is an immutable, ordered table of movies. The row position is the
// index used by vectors and the similarity matrix.
type Catalog struct {
	movies  []Movie
	columns []string
	byTitle map[string]int // first row per title
}

// NewCatalog builds a catalog from movies already in memory.
// The slice and Extra maps are copied.
func NewCatalog(movies []Movie) *Catalog {
	c := &Catalog{
		movies:  make([]Movie, len(movies)),
		columns: append([]string(nil), RequiredColumns...),
	}
	for i, m := range movies {
		m.Extra = maps.Clone(m.Extra)
		c.movies[i] = m
	}
	c.indexTitles()
	return c
}

// LoadCatalogFile reads a CSV catalog from disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &CatalogLoadError{Source: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	return loadCatalog(f, path)
}

// LoadCatalog reads a CSV catalog with a header row.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	return loadCatalog(r, "<reader>")
}

func loadCatalog(r io.Reader, source string) (*Catalog, error) {
	fail := func(err error) (*Catalog, error) {
		return nil, &CatalogLoadError{Source: source, Err: err}
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return fail(ErrMissingHeader)
	}
	if err != nil {
		return fail(fmt.Errorf("read header: %w", err))
	}

	columns := make([]string, len(header))
	position := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		columns[i] = name
		if _, seen := position[name]; !seen {
			position[name] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := position[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fail(fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", ")))
	}

	required := make(map[int]struct{}, len(RequiredColumns))
	for _, col := range RequiredColumns {
		required[position[col]] = struct{}{}
	}

	field := func(record []string, col string) string {
		i := position[col]
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	var movies []Movie
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fail(fmt.Errorf("read row %d: %w", len(movies)+1, err))
		}

		m := Movie{
			Title:    field(record, ColumnTitle),
			Overview: field(record, ColumnOverview),
			Genres:   field(record, ColumnGenres),
			Keywords: field(record, ColumnKeywords),
			Cast:     field(record, ColumnCast),
			Crew:     field(record, ColumnCrew),
		}
		for i, v := range record {
			if _, ok := required[i]; ok || i >= len(columns) {
				continue
			}
			if m.Extra == nil {
				m.Extra = make(map[string]string, len(columns)-len(required))
			}
			m.Extra[columns[i]] = v
		}
		movies = append(movies, m)
	}

	c := &Catalog{movies: movies, columns: columns}
	c.indexTitles()
	return c, nil
}

// Len returns the number of rows.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Movie returns a copy of row i.
func (c *Catalog) Movie(i int) Movie {
	m := c.movies[i]
	m.Extra = maps.Clone(m.Extra)
	return m
}

// Titles returns every title in catalog order.
func (c *Catalog) Titles() []string {
	titles := make([]string, len(c.movies))
	for i, m := range c.movies {
		titles[i] = m.Title
	}
	return titles
}

// Columns returns the header names in source order.
func (c *Catalog) Columns() []string {
	return append([]string(nil), c.columns...)
}

// IndexOf returns the first row whose title equals title exactly.
func (c *Catalog) IndexOf(title string) (int, bool) {
	i, ok := c.byTitle[title]
	if !ok {
		return -1, false
	}
	return i, true
}

func (c *Catalog) indexTitles() {
	c.byTitle = make(map[string]int, len(c.movies))
	for i, m := range c.movies {
		if _, seen := c.byTitle[m.Title]; !seen {
			c.byTitle[m.Title] = i
		}
	}
}
