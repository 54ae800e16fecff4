// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const youtubeWatchURL = "https://www.youtube.com/watch?v="

// SearchMovie returns the first page of title search results.
func (c *Client) SearchMovie(ctx context.Context, title string) ([]Movie, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrMovieNotFound
	}

	var resp listResponse
	if err := c.get(ctx, "search/movie", url.Values{"query": {title}}, &resp); err != nil {
		return nil, err
	}
	return c.toMovies(resp.Results), nil
}

// MovieDetails searches for title and returns full details for the first
// hit, including runtime, director and YouTube trailer.
func (c *Client) MovieDetails(ctx context.Context, title string) (*MovieDetails, error) {
	results, err := c.SearchMovie(ctx, title)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMovieNotFound, title)
	}
	return c.MovieDetailsByID(ctx, results[0].ID)
}

// MovieDetailsByID fetches details, credits and videos in one request.
func (c *Client) MovieDetailsByID(ctx context.Context, id int) (*MovieDetails, error) {
	var resp detailsResponse
	endpoint := "movie/" + strconv.Itoa(id)
	if err := c.get(ctx, endpoint, url.Values{"append_to_response": {"credits,videos"}}, &resp); err != nil {
		return nil, err
	}

	genres := make([]string, 0, len(resp.Genres))
	for _, g := range resp.Genres {
		genres = append(genres, g.Name)
	}

	details := &MovieDetails{
		Movie: Movie{
			ID:          resp.ID,
			Title:       resp.Title,
			Overview:    resp.Overview,
			ReleaseDate: resp.ReleaseDate,
			VoteAverage: resp.VoteAverage,
			PosterURL:   c.posterURL(resp.PosterPath),
			Genres:      genres,
		},
		Runtime:  resp.Runtime,
		Director: directorOf(resp.Credits.Crew),
	}
	if key := trailerKey(resp.Videos.Results); key != "" {
		details.TrailerKey = key
		details.TrailerURL = youtubeWatchURL + key
	}
	return details, nil
}

// TopRated returns one page of TMDB's top rated movies.
func (c *Client) TopRated(ctx context.Context, page int) (*MoviePage, error) {
	return c.listing(ctx, "movie/top_rated", page)
}

// Trending returns one page of today's trending movies.
func (c *Client) Trending(ctx context.Context, page int) (*MoviePage, error) {
	return c.listing(ctx, "trending/movie/day", page)
}

func (c *Client) listing(ctx context.Context, endpoint string, page int) (*MoviePage, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}

	params := url.Values{
		"language": {"en-US"},
		"page":     {strconv.Itoa(page)},
	}
	var resp listResponse
	if err := c.get(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}
	return &MoviePage{
		Page:         resp.Page,
		TotalPages:   resp.TotalPages,
		TotalResults: resp.TotalResults,
		Movies:       c.toMovies(resp.Results),
	}, nil
}

func (c *Client) toMovies(raw []rawMovie) []Movie {
	movies := make([]Movie, 0, len(raw))
	for _, m := range raw {
		movies = append(movies, Movie{
			ID:          m.ID,
			Title:       m.Title,
			Overview:    m.Overview,
			ReleaseDate: m.ReleaseDate,
			VoteAverage: m.VoteAverage,
			PosterURL:   c.posterURL(m.PosterPath),
			Genres:      genreNames(m.GenreIDs),
		})
	}
	return movies
}

// directorOf returns the first crew member credited as Director.
func directorOf(crew []crewMember) string {
	for _, member := range crew {
		if member.Job == "Director" {
			return member.Name
		}
	}
	return ""
}

// trailerKey returns the first YouTube video of type Trailer.
func trailerKey(videos []video) string {
	for _, v := range videos {
		if v.Type == "Trailer" && v.Site == "YouTube" {
			return v.Key
		}
	}
	return ""
}
