// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package prepare

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// OutputColumns is the header written by Run, in order.
var OutputColumns = []string{
	"movie_id", "title", "overview", "genres", "keywords",
	"vote_average", "vote_count", "popularity", "release_date", "cast", "crew",
}

// Columns read from the TMDB 5000 movies file.
var movieColumns = []string{
	"title", "overview", "genres", "keywords",
	"vote_average", "vote_count", "popularity", "release_date",
}

// Columns read from the TMDB 5000 credits file.
var creditColumns = []string{"movie_id", "title", "cast", "crew"}

// CastLimit is how many leading cast members are kept.
const CastLimit = 3

// ErrMissingColumns is returned when an input header lacks a needed column.
var ErrMissingColumns = errors.New("missing required columns")

// Stats summarizes one Run.
type Stats struct {
	Movies  int `json:"movies"`
	Credits int `json:"credits"`
	Joined  int `json:"joined"`
	Dropped int `json:"dropped"`
	Written int `json:"written"`
}

type table struct {
	rows []map[string]string
}

// Run joins movies and credits on title and writes the catalog CSV to out.
//
// The join is inner and ordered by the movies file; a movie matching several
// credit rows produces one output row per match, in credits order. Rows with
// an empty value in any output column are dropped before the JSON columns
// are decoded. A malformed JSON column fails the run.
func Run(movies, credits io.Reader, out io.Writer) (Stats, error) {
	var stats Stats

	movieTable, err := readTable(movies, "movies", movieColumns)
	if err != nil {
		return stats, err
	}
	creditTable, err := readTable(credits, "credits", creditColumns)
	if err != nil {
		return stats, err
	}
	stats.Movies = len(movieTable.rows)
	stats.Credits = len(creditTable.rows)

	byTitle := make(map[string][]map[string]string, len(creditTable.rows))
	for _, row := range creditTable.rows {
		byTitle[row["title"]] = append(byTitle[row["title"]], row)
	}

	w := csv.NewWriter(out)
	if err := w.Write(OutputColumns); err != nil {
		return stats, fmt.Errorf("write header: %w", err)
	}

	for i, movie := range movieTable.rows {
		for _, credit := range byTitle[movie["title"]] {
			stats.Joined++

			joined := merge(movie, credit)
			if hasEmpty(joined) {
				stats.Dropped++
				continue
			}

			record, err := convert(joined)
			if err != nil {
				return stats, fmt.Errorf("movies row %d (%q): %w", i+1, movie["title"], err)
			}
			if err := w.Write(record); err != nil {
				return stats, fmt.Errorf("write row: %w", err)
			}
			stats.Written++
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return stats, fmt.Errorf("flush output: %w", err)
	}
	return stats, nil
}

func readTable(r io.Reader, name string, want []string) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w", name, err)
	}

	position := make(map[string]int, len(header))
	for i, col := range header {
		col = strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))
		if _, seen := position[col]; !seen {
			position[col] = i
		}
	}

	var missing []string
	for _, col := range want {
		if _, ok := position[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s: %w: %s", name, ErrMissingColumns, strings.Join(missing, ", "))
	}

	t := &table{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s row %d: %w", name, len(t.rows)+1, err)
		}

		row := make(map[string]string, len(want))
		for _, col := range want {
			if i := position[col]; i < len(record) {
				row[col] = record[i]
			}
		}
		t.rows = append(t.rows, row)
	}
	return t, nil
}

func merge(movie, credit map[string]string) map[string]string {
	joined := make(map[string]string, len(OutputColumns))
	for k, v := range movie {
		joined[k] = v
	}
	for k, v := range credit {
		joined[k] = v
	}
	return joined
}

func hasEmpty(row map[string]string) bool {
	for _, col := range OutputColumns {
		if strings.TrimSpace(row[col]) == "" {
			return true
		}
	}
	return false
}

func convert(row map[string]string) ([]string, error) {
	genres, err := JoinNames(row["genres"])
	if err != nil {
		return nil, fmt.Errorf("genres: %w", err)
	}
	keywords, err := JoinNames(row["keywords"])
	if err != nil {
		return nil, fmt.Errorf("keywords: %w", err)
	}
	cast, err := LeadingNames(row["cast"], CastLimit)
	if err != nil {
		return nil, fmt.Errorf("cast: %w", err)
	}
	directors, err := Directors(row["crew"])
	if err != nil {
		return nil, fmt.Errorf("crew: %w", err)
	}

	record := make([]string, len(OutputColumns))
	for i, col := range OutputColumns {
		switch col {
		case "genres":
			record[i] = genres
		case "keywords":
			record[i] = keywords
		case "cast":
			record[i] = strings.Join(cast, " ")
		case "crew":
			record[i] = strings.Join(directors, " ")
		default:
			record[i] = row[col]
		}
	}
	return record, nil
}
