// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

// ContentRequest holds the query parameters of the content endpoint.
// Title is matched exactly, so it is not trimmed.
type ContentRequest struct {
	Title   string `json:"title" validate:"required,notblank,max=500"`
	K       int    `json:"k" validate:"min=1"`
	Details bool   `json:"details"`
}

// GenreRequest is the body of POST /recommendations/genre.
type GenreRequest struct {
	Genre   string `json:"genre" validate:"required,notblank,max=100"`
	Number  int    `json:"number" validate:"omitempty,min=1"`
	Details bool   `json:"details"`
}

// MoodRequest is the body of POST /recommendations/mood.
type MoodRequest struct {
	Mood    string `json:"mood" validate:"required,notblank,max=200"`
	Number  int    `json:"number" validate:"omitempty,min=1"`
	Details bool   `json:"details"`
}

// SuggestRequest holds the query parameters of the suggest endpoint.
type SuggestRequest struct {
	Query string `json:"q" validate:"required,notblank,max=200"`
	Limit int    `json:"limit" validate:"min=1"`
}

// PageRequest holds the page parameter of the TMDB listings.
type PageRequest struct {
	Page int `json:"page" validate:"min=1,max=500"`
}

// DetailsRequest holds the title parameter of the details endpoint.
type DetailsRequest struct {
	Title string `json:"title" validate:"required,notblank,max=500"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50,username"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=72"`
}
