// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package authz

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/tomtom215/coursepilot/internal/auth"
	"github.com/tomtom215/coursepilot/internal/database"
	"github.com/tomtom215/coursepilot/internal/logging"
)

// Middleware authorizes authenticated requests.
type Middleware struct {
	enforcer *Enforcer
	security *logging.SecurityLogger
}

// NewMiddleware creates the authorization middleware.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewMiddleware(enforcer *Enforcer, logger zerolog.Logger) *Middleware {
	return &Middleware{
		enforcer: enforcer,
		security: logging.NewSecurityLogger(logger),
	}
}

// Authorize checks the request path against the policy, using the action
// derived from the HTTP method. It must run after auth.Middleware.Authenticate.
func (m *Middleware) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			auth.WriteError(w, http.StatusForbidden, "FORBIDDEN", "No authentication context")
			return
		}

		allowed, err := m.enforcer.Enforce(claims.Role, r.URL.Path, methodToAction(r.Method))
		if err != nil {
			logging.Ctx(r.Context()).Error().Err(err).Msg("Authorization error")
			auth.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Authorization failed")
			return
		}
		if !allowed {
			m.security.LogAccessDenied(claims.Email, claims.Role, r.URL.Path, r.Method)
			auth.WriteError(w, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// methodToAction maps HTTP methods to policy actions.
func methodToAction(method string) string {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return ActionWrite
	default:
		return ActionRead
	}
}

// CanAccessStudent reports whether the caller may read or act on studentID.
// Advisors may access any student; students only themselves.
func CanAccessStudent(claims *auth.Claims, studentID int) bool {
	if claims == nil {
		return false
	}
	switch claims.Role {
	case database.RoleAdvisor:
		return true
	case database.RoleStudent:
		return claims.StudentID != nil && *claims.StudentID == studentID
	default:
		return false
	}
}
