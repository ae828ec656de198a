// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.Caller {
		t.Error("Caller should default to false")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"disabled", zerolog.Disabled},
		{" debug ", zerolog.DebugLevel},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestInit mutates global state, so it does not run in parallel.
func TestInit(t *testing.T) {
	previous := Logger()
	t.Cleanup(func() {
		SetLogger(previous)
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})

	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})

	Debug().Str("key", "value").Msg("debug entry")
	componentLogger := WithComponent("engine")
	componentLogger.Info().Msg("component entry")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %s", len(lines), buf.String())
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if first["message"] != "debug entry" || first["key"] != "value" || first["service"] != "coursepilot" {
		t.Errorf("first entry = %v", first)
	}
	if !strings.Contains(lines[1], `"component":"engine"`) {
		t.Errorf("second entry missing component: %s", lines[1])
	}
}

func TestCtx(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = ContextWithRequestID(ctx, "req-123")
	ctx = ContextWithStudentID(ctx, 7)

	Ctx(ctx).Info().Msg("scored")

	out := buf.String()
	for _, want := range []string{`"request_id":"req-123"`, `"student_id":7`, `"message":"scored"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s missing %s", out, want)
		}
	}
}

func TestContextAccessors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if RequestIDFromContext(ctx) != "" {
		t.Error("empty context should have no request ID")
	}
	if _, ok := StudentIDFromContext(ctx); ok {
		t.Error("empty context should have no student ID")
	}

	id := GenerateRequestID()
	if len(id) != 36 {
		t.Errorf("GenerateRequestID() = %q, want UUID", id)
	}
	if got := RequestIDFromContext(ContextWithRequestID(ctx, id)); got != id {
		t.Errorf("RequestIDFromContext() = %q, want %q", got, id)
	}
}

func TestSecurityLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sl := NewSecurityLogger(NewTestLogger(&buf))

	sl.LogLoginFailure("ana.lee@uni.edu", "10.0.0.1", "invalid credentials")
	sl.LogLoginSuccess("bo@uni.edu", "student", "10.0.0.2")

	out := buf.String()
	if strings.Contains(out, "ana.lee@") {
		t.Errorf("email not masked: %s", out)
	}
	for _, want := range []string{`"an***@uni.edu"`, `"***@uni.edu"`, `"event":"login_failure"`, `"component":"security"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"empty email", SanitizeEmail, "", ""},
		{"no at", SanitizeEmail, "nobody", "***"},
		{"long local", SanitizeEmail, "john.doe@example.com", "jo***@example.com"},
		{"short token", SanitizeToken, "abc", "***"},
		{"long token", SanitizeToken, "eyJhbGciOiJIUzI1NiJ9.payload", "eyJh...load"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
