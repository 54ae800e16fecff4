// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package logging

import (
	"strings"

	"github.com/rs/zerolog"
)

// SecurityEvent is an authentication event for audit logging.
type SecurityEvent struct {
	// Event is the type of event: register, login, token_check.
	Event    string
	Username string
	Email    string
	IP       string
	Success  bool
	Reason   string
}

// SecurityLogger writes authentication events with sensitive fields masked.
type SecurityLogger struct {
	logger zerolog.Logger
}

// NewSecurityLogger creates a security logger on the global logger.
func NewSecurityLogger() *SecurityLogger {
	return &SecurityLogger{logger: WithComponent("auth")}
}

// NewSecurityLoggerWithLogger creates a security logger on a custom logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSecurityLoggerWithLogger(logger zerolog.Logger) *SecurityLogger {
	return &SecurityLogger{logger: logger.With().Str("component", "auth").Logger()}
}

// LogEvent writes one security event.
func (l *SecurityLogger) LogEvent(ev SecurityEvent) {
	e := l.logger.Info()
	if !ev.Success {
		e = l.logger.Warn()
	}
	e = e.Str("event", ev.Event)

	if ev.Success {
		e = e.Str("status", "success")
	} else {
		e = e.Str("status", "failed")
	}
	if ev.Username != "" {
		e = e.Str("username", SanitizeUsername(ev.Username))
	}
	if ev.Email != "" {
		e = e.Str("email", SanitizeEmail(ev.Email))
	}
	if ev.IP != "" {
		e = e.Str("ip", ev.IP)
	}
	if ev.Reason != "" && !ev.Success {
		e = e.Str("reason", SanitizeError(ev.Reason))
	}
	e.Msg("security event")
}

// LogRegister records a registration attempt.
func (l *SecurityLogger) LogRegister(username, email, ip string, success bool, reason string) {
	l.LogEvent(SecurityEvent{
		Event: "register", Username: username, Email: email, IP: ip,
		Success: success, Reason: reason,
	})
}

// LogLogin records a login attempt.
func (l *SecurityLogger) LogLogin(username, ip string, success bool, reason string) {
	l.LogEvent(SecurityEvent{
		Event: "login", Username: username, IP: ip,
		Success: success, Reason: reason,
	})
}

// LogTokenRejected records a bearer token that failed validation.
func (l *SecurityLogger) LogTokenRejected(ip, reason string) {
	l.LogEvent(SecurityEvent{Event: "token_check", IP: ip, Reason: reason})
}

// SanitizeToken masks a token, keeping the first and last 4 characters.
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// SanitizeUsername keeps the first 2 characters of a username.
func SanitizeUsername(username string) string {
	if username == "" {
		return ""
	}
	if len(username) <= 2 {
		return "***"
	}
	return username[:2] + "***"
}

// SanitizeEmail masks the local part of an email address.
// "john.doe@example.com" becomes "jo***@example.com".
func SanitizeEmail(email string) string {
	if email == "" {
		return ""
	}
	at := strings.Index(email, "@")
	if at <= 0 {
		return "***"
	}
	local, domain := email[:at], email[at:]
	if len(local) <= 2 {
		return "***" + domain
	}
	return local[:2] + "***" + domain
}

// SanitizeError replaces messages that mention secrets with a generic one
// and truncates the rest.
func SanitizeError(msg string) string {
	lower := strings.ToLower(msg)
	for _, pattern := range []string{"password", "secret", "token", "key", "bearer", "authorization"} {
		if strings.Contains(lower, pattern) {
			return "authentication error"
		}
	}
	return truncateString(msg, 200)
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
