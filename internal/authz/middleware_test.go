// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package authz

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/coursepilot/internal/auth"
)

func intPtr(v int) *int { return &v }

func TestMiddleware_Authorize(t *testing.T) {
	enforcer, err := NewEnforcer()
	if err != nil {
		t.Fatalf("NewEnforcer() error = %v", err)
	}
	mw := NewMiddleware(enforcer, zerolog.Nop())

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := mw.Authorize(next)

	tests := []struct {
		name       string
		claims     *auth.Claims
		method     string
		path       string
		wantStatus int
	}{
		{
			name:       "no claims",
			method:     http.MethodGet,
			path:       "/api/v1/reviews",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "student allowed",
			claims:     &auth.Claims{Email: "ana@uni.example.edu", Role: "student", StudentID: intPtr(1)},
			method:     http.MethodPost,
			path:       "/api/v1/reviews",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "student denied",
			claims:     &auth.Claims{Email: "ana@uni.example.edu", Role: "student", StudentID: intPtr(1)},
			method:     http.MethodGet,
			path:       "/api/v1/admin/stats",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "advisor allowed",
			claims:     &auth.Claims{Email: "advisor@uni.example.edu", Role: "advisor"},
			method:     http.MethodGet,
			path:       "/api/v1/admin/stats",
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			if tt.claims != nil {
				req = req.WithContext(auth.ContextWithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestCanAccessStudent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		claims    *auth.Claims
		studentID int
		want      bool
	}{
		{"nil claims", nil, 1, false},
		{"advisor any student", &auth.Claims{Role: "advisor"}, 42, true},
		{"student self", &auth.Claims{Role: "student", StudentID: intPtr(3)}, 3, true},
		{"student other", &auth.Claims{Role: "student", StudentID: intPtr(3)}, 4, false},
		{"student without id", &auth.Claims{Role: "student"}, 3, false},
		{"unknown role", &auth.Claims{Role: "guest", StudentID: intPtr(3)}, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CanAccessStudent(tt.claims, tt.studentID); got != tt.want {
				t.Errorf("CanAccessStudent() = %v, want %v", got, tt.want)
			}
		})
	}
}
