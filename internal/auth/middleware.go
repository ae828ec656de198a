// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package auth

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/coursepilot/internal/database"
	"github.com/tomtom215/coursepilot/internal/logging"
)

// Authentication modes.
const (
	AuthModeJWT  = "jwt"
	AuthModeNone = "none"
)

// anonymousClaims is the identity used when authentication is disabled.
var anonymousClaims = Claims{Email: "anonymous", Role: database.RoleAdvisor}

var errMissingToken = errors.New("missing bearer token")

// Middleware authenticates API requests.
type Middleware struct {
	jwtManager *JWTManager
	authMode   string
	security   *logging.SecurityLogger
}

// NewMiddleware creates the authentication middleware. jwtManager may be nil
// only when authMode is "none".
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewMiddleware(jwtManager *JWTManager, authMode string, logger zerolog.Logger) *Middleware {
	return &Middleware{
		jwtManager: jwtManager,
		authMode:   authMode,
		security:   logging.NewSecurityLogger(logger),
	}
}

// Authenticate requires a valid Bearer token and stores its claims in the
// request context. The student ID, when present, is also added to the
// logging context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.authMode == AuthModeNone {
			claims := anonymousClaims
			next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), &claims)))
			return
		}

		token, err := bearerToken(r)
		if err != nil {
			WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			m.security.LogInvalidToken(token, ClientIP(r), r.URL.Path, err)
			WriteError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		ctx := ContextWithClaims(r.Context(), claims)
		if claims.StudentID != nil {
			ctx = logging.ContextWithStudentID(ctx, *claims.StudentID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errMissingToken
	}
	return strings.TrimSpace(token), nil
}

// ClientIP returns the request's remote host. chi's RealIP middleware has
// already replaced RemoteAddr with the forwarded address when present.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// WriteError writes an error in the API envelope format. 401 responses
// also carry a Bearer challenge.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="coursepilot"`)
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": "error",
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
