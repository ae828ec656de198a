// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/coursepilot/internal/database"
	"github.com/tomtom215/coursepilot/internal/recommend"
)

// errorMapping is the HTTP rendering of a domain error.
type errorMapping struct {
	status  int
	code    string
	message string
}

// mapError translates domain errors into HTTP status and error codes.
// Unrecognized errors become 500 INTERNAL_ERROR.
func mapError(err error) errorMapping {
	switch {
	case errors.Is(err, recommend.ErrStudentNotFound):
		return errorMapping{http.StatusNotFound, "STUDENT_NOT_FOUND", "Student not found"}
	case errors.Is(err, recommend.ErrCareerGoalNotFound):
		return errorMapping{http.StatusNotFound, "CAREER_GOAL_NOT_FOUND", "Career goal not found"}
	case errors.Is(err, database.ErrCourseNotFound):
		return errorMapping{http.StatusNotFound, "COURSE_NOT_FOUND", "Course not found"}
	case errors.Is(err, database.ErrSkillNotFound):
		return errorMapping{http.StatusNotFound, "SKILL_NOT_FOUND", "Human skill not found"}
	case errors.Is(err, database.ErrAccountExists):
		return errorMapping{http.StatusConflict, "ACCOUNT_EXISTS", "An account with this email already exists"}
	case errors.Is(err, recommend.ErrRatingOutOfRange):
		return errorMapping{http.StatusBadRequest, "VALIDATION_ERROR", "Ratings must be between 1 and 5"}
	case errors.Is(err, recommend.ErrSnapshotUnavailable):
		return errorMapping{http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Recommendations are temporarily unavailable"}
	case errors.Is(err, context.DeadlineExceeded):
		return errorMapping{http.StatusGatewayTimeout, "TIMEOUT", "The request timed out"}
	default:
		return errorMapping{http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"}
	}
}

// respondDomainError writes the mapped error. Only 5xx errors are logged.
func respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	m := mapError(err)
	var logged error
	if m.status >= http.StatusInternalServerError {
		logged = err
	}
	respondError(w, r, m.status, m.code, m.message, logged)
}
