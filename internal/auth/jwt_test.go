// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tomtom215/coursepilot/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef-test"

func newTestJWTManager(t *testing.T, timeout time.Duration) *JWTManager {
	t.Helper()
	m, err := NewJWTManager(&config.SecurityConfig{JWTSecret: testSecret, SessionTimeout: timeout})
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	return m
}

func TestNewJWTManager(t *testing.T) {
	t.Parallel()

	if _, err := NewJWTManager(&config.SecurityConfig{}); err == nil {
		t.Error("NewJWTManager() with empty secret error = nil")
	}

	m, err := NewJWTManager(&config.SecurityConfig{JWTSecret: testSecret})
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	if m.timeout != 24*time.Hour {
		t.Errorf("default timeout = %v, want 24h", m.timeout)
	}
}

func TestJWTManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := newTestJWTManager(t, time.Hour)
	studentID := 7

	tests := []struct {
		name      string
		email     string
		role      string
		studentID *int
	}{
		{name: "student", email: "ana@uni.example.edu", role: "student", studentID: &studentID},
		{name: "advisor", email: "advisor@uni.example.edu", role: "advisor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			token, expiresAt, err := m.GenerateToken(tt.email, tt.role, tt.studentID)
			if err != nil {
				t.Fatalf("GenerateToken() error = %v", err)
			}
			if time.Until(expiresAt) <= 0 || time.Until(expiresAt) > time.Hour {
				t.Errorf("expiresAt = %v, want within the next hour", expiresAt)
			}

			claims, err := m.ValidateToken(token)
			if err != nil {
				t.Fatalf("ValidateToken() error = %v", err)
			}
			if claims.Email != tt.email || claims.Role != tt.role {
				t.Errorf("claims = %+v", claims)
			}
			if (claims.StudentID == nil) != (tt.studentID == nil) {
				t.Fatalf("StudentID = %v, want %v", claims.StudentID, tt.studentID)
			}
			if tt.studentID != nil && *claims.StudentID != *tt.studentID {
				t.Errorf("StudentID = %d, want %d", *claims.StudentID, *tt.studentID)
			}
			if claims.Subject != tt.email || claims.Issuer != tokenIssuer {
				t.Errorf("registered claims = %+v", claims.RegisteredClaims)
			}
		})
	}
}

func TestJWTManager_ValidateToken_Rejects(t *testing.T) {
	t.Parallel()

	m := newTestJWTManager(t, time.Hour)
	valid, _, err := m.GenerateToken("ana@uni.example.edu", "student", nil)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	other, err := NewJWTManager(&config.SecurityConfig{JWTSecret: strings.Repeat("x", 40), SessionTimeout: time.Hour})
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	foreign, _, _ := other.GenerateToken("ana@uni.example.edu", "student", nil)

	// NewJWTManager replaces non-positive timeouts, so build the manager directly
	expiredManager := &JWTManager{secret: []byte(testSecret), timeout: -time.Minute}
	expired, _, _ := expiredManager.GenerateToken("ana@uni.example.edu", "student", nil)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		Email: "ana@uni.example.edu",
		Role:  "advisor",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	none, _ := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)

	wrongIssuer := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Email: "ana@uni.example.edu",
		Role:  "advisor",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	issuer, _ := wrongIssuer.SignedString([]byte(testSecret))

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Email:            "ana@uni.example.edu",
		Role:             "advisor",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: tokenIssuer},
	})
	unbounded, _ := noExpiry.SignedString([]byte(testSecret))

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.token"},
		{name: "tampered", token: valid[:len(valid)-2] + "xx"},
		{name: "foreign secret", token: foreign},
		{name: "expired", token: expired},
		{name: "alg none", token: none},
		{name: "wrong issuer", token: issuer},
		{name: "no expiry", token: unbounded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := m.ValidateToken(tt.token); err == nil {
				t.Error("ValidateToken() error = nil")
			}
		})
	}
}
