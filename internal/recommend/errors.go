// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package recommend

import "errors"

var (
	// ErrStudentNotFound is returned when the requested student does not exist.
	ErrStudentNotFound = errors.New("student not found")

	// ErrCareerGoalNotFound is returned when the requested career goal does not exist.
	ErrCareerGoalNotFound = errors.New("career goal not found")

	// ErrNoDataProvider is returned when Recommend is called before SetDataProvider.
	ErrNoDataProvider = errors.New("data provider not set")

	// ErrSnapshotUnavailable is returned while the snapshot circuit breaker is open.
	ErrSnapshotUnavailable = errors.New("snapshot source unavailable")

	// ErrRatingOutOfRange is returned when a review rating is outside 1..5.
	ErrRatingOutOfRange = errors.New("rating out of range")
)

// IsNotFound reports whether err is a student or career goal lookup failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrStudentNotFound) || errors.Is(err, ErrCareerGoalNotFound)
}
