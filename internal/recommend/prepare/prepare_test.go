// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package prepare

import (
	"bytes"
	"encoding/csv"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/marquee/internal/recommend"
)

func csvText(t *testing.T, rows [][]string) string {
	t.Helper()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

var moviesHeader = []string{
	"budget", "genres", "id", "keywords", "overview", "popularity",
	"release_date", "title", "vote_average", "vote_count",
}

var creditsHeader = []string{"movie_id", "title", "cast", "crew"}

func movieRow(title, overview, genres, keywords string) []string {
	return []string{"1000", genres, "1", keywords, overview, "150.4", "2009-12-10", title, "7.2", "11800"}
}

const (
	avatarGenres   = `[{"id": 28, "name": "Action"}, {"id": 12, "name": "Adventure"}]`
	avatarKeywords = `[{"id": 1463, "name": "culture clash"}, {"id": 2964, "name": "future"}]`
	avatarCast     = `[{"cast_id": 242, "character": "Jake Sully", "name": "Sam Worthington"}, {"cast_id": 3, "character": "Neytiri", "name": "Zoe Saldana"}, {"cast_id": 25, "character": "Grace", "name": "Sigourney Weaver"}, {"cast_id": 4, "character": "Quaritch", "name": "Stephen Lang"}]`
	avatarCrew     = `[{"department": "Editing", "job": "Editor", "name": "Stephen E. Rivkin"}, {"department": "Directing", "job": "Director", "name": "James Cameron"}]`
)

func TestRunJoinsAndFlattens(t *testing.T) {
	movies := csvText(t, [][]string{
		moviesHeader,
		movieRow("Avatar", "In the 22nd century...", avatarGenres, avatarKeywords),
	})
	credits := csvText(t, [][]string{
		creditsHeader,
		{"19995", "Avatar", avatarCast, avatarCrew},
	})

	var out bytes.Buffer
	stats, err := Run(strings.NewReader(movies), strings.NewReader(credits), &out)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats.Written != 1 || stats.Joined != 1 || stats.Dropped != 0 {
		t.Errorf("Run() stats = %+v, want 1 joined, 1 written", stats)
	}

	records, err := csv.NewReader(&out).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(records[0], OutputColumns) {
		t.Errorf("header = %v, want %v", records[0], OutputColumns)
	}

	want := []string{
		"19995", "Avatar", "In the 22nd century...", "Action Adventure", "culture clash future",
		"7.2", "11800", "150.4", "2009-12-10",
		"Sam Worthington Zoe Saldana Sigourney Weaver", "James Cameron",
	}
	if !reflect.DeepEqual(records[1], want) {
		t.Errorf("row = %v\nwant  %v", records[1], want)
	}
}

func TestRunJoinSemantics(t *testing.T) {
	genres := `[{"id": 18, "name": "Drama"}]`
	keywords := `[{"id": 1, "name": "ship"}]`
	cast := `[{"name": "Someone"}]`
	crew := `[{"job": "Director", "name": "Somebody"}]`

	movies := csvText(t, [][]string{
		moviesHeader,
		movieRow("Titanic", "A ship sinks", genres, keywords),
		movieRow("No Credits", "Nobody worked on it", genres, keywords),
		movieRow("Heat", "", genres, keywords), // empty overview
		movieRow("Zed", "Last movie", genres, keywords),
	})
	credits := csvText(t, [][]string{
		creditsHeader,
		{"1", "Zed", cast, crew},
		{"2", "Titanic", cast, crew},
		{"3", "Titanic", cast, crew},
		{"4", "Heat", cast, crew},
		{"5", "Only In Credits", cast, crew},
	})

	var out bytes.Buffer
	stats, err := Run(strings.NewReader(movies), strings.NewReader(credits), &out)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantStats := Stats{Movies: 4, Credits: 5, Joined: 4, Dropped: 1, Written: 3}
	if stats != wantStats {
		t.Errorf("Run() stats = %+v, want %+v", stats, wantStats)
	}

	records, _ := csv.NewReader(&out).ReadAll()
	var got []string
	for _, r := range records[1:] {
		got = append(got, r[0]+":"+r[1])
	}
	want := []string{"2:Titanic", "3:Titanic", "1:Zed"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
}

func TestRunKeepsEmptyJSONArrays(t *testing.T) {
	movies := csvText(t, [][]string{
		moviesHeader,
		movieRow("Bare", "No tags at all", "[]", "[]"),
	})
	credits := csvText(t, [][]string{
		creditsHeader,
		{"7", "Bare", "[]", "[]"},
	})

	var out bytes.Buffer
	stats, err := Run(strings.NewReader(movies), strings.NewReader(credits), &out)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats.Written != 1 {
		t.Fatalf("Written = %d, want 1", stats.Written)
	}
	records, _ := csv.NewReader(&out).ReadAll()
	row := records[1]
	if row[3] != "" || row[4] != "" || row[9] != "" || row[10] != "" {
		t.Errorf("flattened empty arrays = %q %q %q %q, want all empty", row[3], row[4], row[9], row[10])
	}
}

func TestRunMissingColumns(t *testing.T) {
	movies := csvText(t, [][]string{{"title", "overview"}, {"Heat", "x"}})
	credits := csvText(t, [][]string{creditsHeader})

	_, err := Run(strings.NewReader(movies), strings.NewReader(credits), &bytes.Buffer{})
	if !errors.Is(err, ErrMissingColumns) {
		t.Fatalf("Run() error = %v, want ErrMissingColumns", err)
	}
	if !strings.Contains(err.Error(), "genres") {
		t.Errorf("error %q does not name the missing column", err)
	}
}

func TestRunMalformedJSON(t *testing.T) {
	movies := csvText(t, [][]string{
		moviesHeader,
		movieRow("Broken", "bad genres", "[{'name': 'Drama'}]", "[]"),
	})
	credits := csvText(t, [][]string{
		creditsHeader,
		{"9", "Broken", "[]", "[]"},
	})

	_, err := Run(strings.NewReader(movies), strings.NewReader(credits), &bytes.Buffer{})
	if err == nil {
		t.Fatal("Run() with malformed JSON returned nil error")
	}
	if !strings.Contains(err.Error(), "genres") || !strings.Contains(err.Error(), "Broken") {
		t.Errorf("error %q should name the column and movie", err)
	}
}

func TestRunOutputLoadsAsCatalog(t *testing.T) {
	movies := csvText(t, [][]string{
		moviesHeader,
		movieRow("Avatar", "In the 22nd century...", avatarGenres, avatarKeywords),
	})
	credits := csvText(t, [][]string{
		creditsHeader,
		{"19995", "Avatar", avatarCast, avatarCrew},
	})

	var out bytes.Buffer
	if _, err := Run(strings.NewReader(movies), strings.NewReader(credits), &out); err != nil {
		t.Fatal(err)
	}

	catalog, err := recommend.LoadCatalog(&out)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if catalog.Len() != 1 {
		t.Fatalf("catalog.Len() = %d, want 1", catalog.Len())
	}
}

func TestNameHelpers(t *testing.T) {
	joined, err := JoinNames(avatarGenres)
	if err != nil || joined != "Action Adventure" {
		t.Errorf("JoinNames() = %q, %v; want Action Adventure", joined, err)
	}

	tests := []struct {
		n    int
		want []string
	}{
		{0, []string{}},
		{1, []string{"Sam Worthington"}},
		{3, []string{"Sam Worthington", "Zoe Saldana", "Sigourney Weaver"}},
		{10, []string{"Sam Worthington", "Zoe Saldana", "Sigourney Weaver", "Stephen Lang"}},
	}
	for _, tt := range tests {
		got, err := LeadingNames(avatarCast, tt.n)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("LeadingNames(n=%d) = %v, want %v", tt.n, got, tt.want)
		}
	}

	directors, err := Directors(`[{"job": "Director", "name": "Joel Coen"}, {"job": "Writer", "name": "X"}, {"job": "Director", "name": "Ethan Coen"}]`)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(directors, []string{"Joel Coen", "Ethan Coen"}) {
		t.Errorf("Directors() = %v, want [Joel Coen Ethan Coen]", directors)
	}

	if _, err := JoinNames("not json"); err == nil {
		t.Error("JoinNames(invalid) returned nil error")
	}
}
