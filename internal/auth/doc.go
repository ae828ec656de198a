// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

/*
Package auth provides login and request authentication for the HTTP API.

# Overview

Accounts are stored in DuckDB with bcrypt password hashes. A successful login
returns an HS256-signed JWT carrying the account email, role and, for
students, the student ID. Every protected request presents the token as a
Bearer header; the middleware validates it and stores the Claims in the
request context for authorization and logging.

# Components

  - JWTManager: token creation and validation (golang-jwt/jwt/v5)
  - HashPassword / CheckPassword: bcrypt hashing (golang.org/x/crypto)
  - LockoutManager: in-memory failed-login tracking with exponential backoff
  - Service: the login flow (account lookup, lockout, password check, token)
  - Middleware: Bearer token authentication for chi routes

# Authentication Modes

  - jwt: tokens are required on protected routes (default)
  - none: every request runs as an anonymous advisor, for local development

# Security Logging

Login successes and failures, rejected tokens and lockouts are written
through logging.SecurityLogger with tokens and emails sanitized.

# Example

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
	    return err
	}
	svc := auth.NewService(db, jwtManager, auth.NewLockoutManager(nil), logger)
	mw := auth.NewMiddleware(jwtManager, cfg.Security.AuthMode, logger)

	r.With(mw.Authenticate).Get("/students/{studentID}/recommendations", h.Recommend)
*/
package auth
