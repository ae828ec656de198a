// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package logging

import (
	"strings"

	"github.com/rs/zerolog"
)

// SecurityLogger records authentication and authorization outcomes.
// Emails and tokens are masked before they reach the log.
type SecurityLogger struct {
	logger zerolog.Logger
}

// NewSecurityLogger returns a security logger derived from logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSecurityLogger(logger zerolog.Logger) *SecurityLogger {
	return &SecurityLogger{logger: logger.With().Str("component", "security").Logger()}
}

// LogLoginSuccess records a successful password login.
func (l *SecurityLogger) LogLoginSuccess(email, role, ip string) {
	l.logger.Info().
		Str("event", "login_success").
		Str("email", SanitizeEmail(email)).
		Str("role", role).
		Str("ip", ip).
		Msg("Login succeeded")
}

// LogRegistration records a new self-registered student account.
func (l *SecurityLogger) LogRegistration(email string, studentID int, ip string) {
	l.logger.Info().
		Str("event", "registration").
		Str("email", SanitizeEmail(email)).
		Int("student_id", studentID).
		Str("ip", ip).
		Msg("Student registered")
}

// LogLoginFailure records a rejected login. reason must not contain the password.
func (l *SecurityLogger) LogLoginFailure(email, ip, reason string) {
	l.logger.Warn().
		Str("event", "login_failure").
		Str("email", SanitizeEmail(email)).
		Str("ip", ip).
		Str("reason", reason).
		Msg("Login failed")
}

// LogInvalidToken records a request carrying a bad bearer token.
func (l *SecurityLogger) LogInvalidToken(token, ip, path string, err error) {
	l.logger.Warn().
		Str("event", "invalid_token").
		Str("token", SanitizeToken(token)).
		Str("ip", ip).
		Str("path", path).
		Err(err).
		Msg("Rejected bearer token")
}

// LogAccessDenied records an authorization denial.
func (l *SecurityLogger) LogAccessDenied(subject, role, path, method string) {
	l.logger.Warn().
		Str("event", "access_denied").
		Str("subject", subject).
		Str("role", role).
		Str("path", path).
		Str("method", method).
		Msg("Access denied")
}

// SanitizeToken keeps the first and last four characters of a token.
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// SanitizeEmail keeps the first two characters of the local part.
//
//	SanitizeEmail("ana.lee@uni.edu") == "an***@uni.edu"
func SanitizeEmail(email string) string {
	if email == "" {
		return ""
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return "***"
	}
	local, domain := email[:at], email[at:]
	if len(local) <= 2 {
		return "***" + domain
	}
	return local[:2] + "***" + domain
}
