// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	studentIDKey contextKey = "student_id"
	loggerKey    contextKey = "logger"
)

// GenerateRequestID returns a new random request ID.
func GenerateRequestID() string {
	return uuid.New().String()
}

// ContextWithRequestID returns a context carrying the request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID, or "" when absent.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithStudentID returns a context carrying the student the request acts on.
func ContextWithStudentID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, studentIDKey, id)
}

// StudentIDFromContext returns the student ID and whether one was set.
func StudentIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(studentIDKey).(int)
	return id, ok
}

// ContextWithLogger stores a preconfigured logger in the context.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext returns the logger stored in ctx, or the global logger.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return logger
	}
	return Logger()
}

// Ctx returns a logger with the request-scoped fields of ctx attached.
//
//	logging.Ctx(ctx).Info().Msg("Recommendations computed")
//	// {"level":"info","request_id":"...","student_id":7,"message":"Recommendations computed"}
func Ctx(ctx context.Context) *zerolog.Logger {
	base := LoggerFromContext(ctx)
	lctx := base.With()
	if id := RequestIDFromContext(ctx); id != "" {
		lctx = lctx.Str("request_id", id)
	}
	if id, ok := StudentIDFromContext(ctx); ok {
		lctx = lctx.Int("student_id", id)
	}
	l := lctx.Logger()
	return &l
}
