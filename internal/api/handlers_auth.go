// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/models"
)

// Register handles POST /api/v1/auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if !h.authAvailable(w) {
		return
	}
	var req RegisterRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	user, err := h.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			h.security.LogRegister(req.Username, req.Email, clientIP(r), false, "exists")
			respondError(w, http.StatusConflict, ErrCodeConflict, "Username or email already exists", nil)
			return
		}
		if errors.Is(err, auth.ErrPasswordTooLong) {
			h.security.LogRegister(req.Username, req.Email, clientIP(r), false, "password_too_long")
			respondError(w, http.StatusBadRequest, ErrCodeValidation, "Password must be at most 72 bytes", nil)
			return
		}
		h.security.LogRegister(req.Username, req.Email, clientIP(r), false, "store_error")
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "Registration failed", err)
		return
	}

	h.security.LogRegister(user.Username, user.Email, clientIP(r), true, "")
	respondSuccess(w, r, http.StatusCreated, user.Profile(), time.Time{})
}

// Login handles POST /api/v1/auth/login and returns a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.authAvailable(w) {
		return
	}
	var req LoginRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	token, expires, user, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.security.LogLogin(req.Username, clientIP(r), false, "invalid_credentials")
			respondError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "Invalid username or password", nil)
			return
		}
		h.security.LogLogin(req.Username, clientIP(r), false, "internal_error")
		respondError(w, http.StatusInternalServerError, ErrCodeInternal, "Login failed", err)
		return
	}

	h.security.LogLogin(user.Username, clientIP(r), true, "")
	respondSuccess(w, r, http.StatusOK, models.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expires,
		User:      user.Profile(),
	}, time.Time{})
}

// CheckLogin handles GET /api/v1/auth/check. A valid bearer token answers
// with its claims; anything else is 401.
func (h *Handler) CheckLogin(w http.ResponseWriter, r *http.Request) {
	if !h.authAvailable(w) {
		return
	}
	token, err := auth.ExtractBearerToken(r)
	if err != nil {
		h.security.LogTokenRejected(clientIP(r), "missing")
		respondError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "Missing bearer token", nil)
		return
	}

	claims, err := h.auth.CheckToken(token)
	if err != nil {
		h.security.LogTokenRejected(clientIP(r), "invalid")
		respondError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "Invalid or expired token", nil)
		return
	}

	check := models.TokenCheck{
		Valid:    true,
		Username: claims.Username,
		UserID:   claims.UserID,
	}
	if claims.ExpiresAt != nil {
		check.ExpiresAt = claims.ExpiresAt.Time
	}
	respondSuccess(w, r, http.StatusOK, check, time.Time{})
}

func (h *Handler) authAvailable(w http.ResponseWriter) bool {
	if h.auth == nil {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "User accounts are not configured", nil)
		return false
	}
	return true
}
