// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package auth

import "errors"

var (
	// ErrUserExists is returned when the username or email is already registered.
	ErrUserExists = errors.New("username or email already exists")

	// ErrUserNotFound is returned by stores when no user matches.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers both unknown users and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrPasswordTooLong is returned when a password exceeds bcrypt's
	// MaxPasswordBytes. The limit counts bytes, not characters.
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")

	// ErrInvalidToken is returned for missing, malformed, expired or
	// tampered bearer tokens.
	ErrInvalidToken = errors.New("invalid token")
)
