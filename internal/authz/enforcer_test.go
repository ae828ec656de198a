// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package authz

import (
	"slices"
	"testing"
)

func TestEnforcer_Enforce(t *testing.T) {
	enforcer, err := NewEnforcer()
	if err != nil {
		t.Fatalf("NewEnforcer() error = %v", err)
	}

	tests := []struct {
		name   string
		role   string
		path   string
		action string
		want   bool
	}{
		{"student reads recommendations", "student", "/api/v1/students/7/recommendations", ActionRead, true},
		{"student submits review", "student", "/api/v1/reviews", ActionWrite, true},
		{"student lists reviews", "student", "/api/v1/reviews", ActionRead, true},
		{"student reads course reviews", "student", "/api/v1/reviews/course/10016", ActionRead, true},
		{"student reads own reviews", "student", "/api/v1/reviews/student/7", ActionRead, true},
		{"student cannot write recommendations", "student", "/api/v1/students/7/recommendations", ActionWrite, false},
		{"student cannot read engine stats", "student", "/api/v1/admin/stats", ActionRead, false},
		{"advisor inherits student write", "advisor", "/api/v1/reviews", ActionWrite, true},
		{"advisor reads anything", "advisor", "/api/v1/admin/stats", ActionRead, true},
		{"advisor cannot write arbitrary routes", "advisor", "/api/v1/admin/stats", ActionWrite, false},
		{"unknown role denied", "guest", "/api/v1/reviews", ActionRead, false},
		{"empty role denied", "", "/api/v1/reviews", ActionRead, false},
		{"nested path not matched by param", "student", "/api/v1/students/7/recommendations/extra", ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := enforcer.Enforce(tt.role, tt.path, tt.action)
			if err != nil {
				t.Fatalf("Enforce() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Enforce(%q, %q, %q) = %v, want %v", tt.role, tt.path, tt.action, got, tt.want)
			}
		})
	}
}

func TestEnforcer_RolesFor(t *testing.T) {
	enforcer, err := NewEnforcer()
	if err != nil {
		t.Fatalf("NewEnforcer() error = %v", err)
	}

	roles, err := enforcer.RolesFor("advisor")
	if err != nil {
		t.Fatalf("RolesFor() error = %v", err)
	}
	if !slices.Contains(roles, "advisor") || !slices.Contains(roles, "student") {
		t.Errorf("RolesFor(advisor) = %v, want advisor and student", roles)
	}
}

func TestLoadPolicy_Malformed(t *testing.T) {
	enforcer, err := NewEnforcer()
	if err != nil {
		t.Fatalf("NewEnforcer() error = %v", err)
	}

	if err := loadPolicy(enforcer.enforcer, "p, student"); err == nil {
		t.Error("loadPolicy() expected error for short policy line")
	}
	if err := loadPolicy(enforcer.enforcer, "x, a, b"); err == nil {
		t.Error("loadPolicy() expected error for unknown line type")
	}
	if err := loadPolicy(enforcer.enforcer, "# comment only\n\n"); err != nil {
		t.Errorf("loadPolicy() error = %v for comment-only policy", err)
	}
}

func TestMethodToAction(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"GET":     ActionRead,
		"HEAD":    ActionRead,
		"OPTIONS": ActionRead,
		"POST":    ActionWrite,
		"PUT":     ActionWrite,
		"PATCH":   ActionWrite,
		"DELETE":  ActionWrite,
	}
	for method, want := range tests {
		if got := methodToAction(method); got != want {
			t.Errorf("methodToAction(%s) = %s, want %s", method, got, want)
		}
	}
}
