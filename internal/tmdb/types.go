// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package tmdb

// Movie is the summary shape shared by search, top-rated and trending.
type Movie struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	ReleaseDate string   `json:"release_date"`
	VoteAverage float64  `json:"vote_average"`
	PosterURL   string   `json:"poster_url,omitempty"`
	Genres      []string `json:"genres"`
}

// MovieDetails extends Movie with the fields from the details endpoint.
type MovieDetails struct {
	Movie
	Runtime    int    `json:"runtime"`
	Director   string `json:"director"`
	TrailerKey string `json:"trailer_key,omitempty"`
	TrailerURL string `json:"trailer_url,omitempty"`
}

// MoviePage is one page of a paginated listing.
type MoviePage struct {
	Page         int     `json:"page"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
	Movies       []Movie `json:"movies"`
}

// Wire formats. Only the fields Marquee reads are declared.

type listResponse struct {
	Page         int        `json:"page"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
	Results      []rawMovie `json:"results"`
}

type rawMovie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	PosterPath  string  `json:"poster_path"`
	GenreIDs    []int   `json:"genre_ids"`
}

type namedGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type crewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

type video struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}

type detailsResponse struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Overview    string       `json:"overview"`
	ReleaseDate string       `json:"release_date"`
	VoteAverage float64      `json:"vote_average"`
	PosterPath  string       `json:"poster_path"`
	Runtime     int          `json:"runtime"`
	Genres      []namedGenre `json:"genres"`
	Credits     struct {
		Crew []crewMember `json:"crew"`
	} `json:"credits"`
	Videos struct {
		Results []video `json:"results"`
	} `json:"videos"`
}
