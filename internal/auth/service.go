// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/marquee/internal/metrics"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// Service registers and authenticates users.
type Service struct {
	store      UserStore
	jwt        *JWTManager
	bcryptCost int

	// dummyHash is compared against when the user does not exist so unknown
	// and known usernames take the same time to reject. It is built once at
	// bcryptCost on first use.
	dummyOnce sync.Once
	dummyHash []byte
}

// NewService creates a Service. bcryptCost outside bcrypt's range falls back
// to bcrypt.DefaultCost.
func NewService(store UserStore, jwt *JWTManager, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{store: store, jwt: jwt, bcryptCost: bcryptCost}
}

// Register creates an account. Emails are compared case-insensitively and
// stored lower-cased; usernames are stored as given.
func (s *Service) Register(ctx context.Context, username, email, password string) (*User, error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)

	if len(password) > MaxPasswordBytes {
		metrics.RecordAuthEvent("register", false)
		return nil, ErrPasswordTooLong
	}

	if err := s.ensureAvailable(ctx, username, email); err != nil {
		metrics.RecordAuthEvent("register", false)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		metrics.RecordAuthEvent("register", false)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.Create(ctx, user); err != nil {
		metrics.RecordAuthEvent("register", false)
		return nil, err
	}

	metrics.RecordAuthEvent("register", true)
	return user, nil
}

func (s *Service) ensureAvailable(ctx context.Context, username, email string) error {
	if _, err := s.store.GetByUsername(ctx, username); err == nil {
		return ErrUserExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("lookup username: %w", err)
	}

	if _, err := s.store.GetByEmail(ctx, email); err == nil {
		return ErrUserExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("lookup email: %w", err)
	}
	return nil
}

// Authenticate returns the user when password matches. Unknown users and
// wrong passwords both return ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	user, err := s.store.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.timingHash(), []byte(password))
			metrics.RecordAuthEvent("login", false)
			return nil, ErrInvalidCredentials
		}
		metrics.RecordAuthEvent("login", false)
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		metrics.RecordAuthEvent("login", false)
		return nil, ErrInvalidCredentials
	}

	metrics.RecordAuthEvent("login", true)
	return user, nil
}

// Login authenticates and issues a bearer token.
func (s *Service) Login(ctx context.Context, username, password string) (string, time.Time, *User, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", time.Time{}, nil, err
	}
	token, expires, err := s.jwt.GenerateToken(user)
	if err != nil {
		return "", time.Time{}, nil, err
	}
	return token, expires, user, nil
}

// CheckToken validates a bearer token; it backs the login check endpoint.
func (s *Service) CheckToken(token string) (*Claims, error) {
	claims, err := s.jwt.ValidateToken(token)
	metrics.RecordAuthEvent("token_check", err == nil)
	return claims, err
}

func (s *Service) timingHash() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("marquee-timing-equalizer"), s.bcryptCost)
	})
	return s.dummyHash
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
