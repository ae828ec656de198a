// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package database

import (
	"errors"
	"io"

	"github.com/tomtom215/coursepilot/internal/logging"
)

// ErrCourseNotFound is returned when a review refers to an unknown course.
var ErrCourseNotFound = errors.New("course not found")

// ErrAccountExists is returned when an account email is already registered.
var ErrAccountExists = errors.New("account already exists")

// ErrSkillNotFound is returned when a registration names an unknown human skill.
var ErrSkillNotFound = errors.New("skill not found")

// closeWithLog closes a resource and logs any error
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource on an error path where the Close error is not actionable
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
