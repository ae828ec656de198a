// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package events

import (
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/tomtom215/coursepilot/internal/metrics"
)

// Review event results.
const (
	ResultOK      = "ok"
	ResultInvalid = "invalid"
)

// ReviewAuditor consumes review events. It logs each review and keeps
// per-course counts of reviews seen since start.
type ReviewAuditor struct {
	logger zerolog.Logger

	mu       sync.RWMutex
	byCourse map[int]int
	total    int
}

// NewReviewAuditor creates an auditor.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewReviewAuditor(logger zerolog.Logger) *ReviewAuditor {
	return &ReviewAuditor{
		logger:   logger,
		byCourse: make(map[int]int),
	}
}

// Handle processes one message. Malformed events are acknowledged and
// counted as invalid rather than retried.
func (a *ReviewAuditor) Handle(msg *message.Message) error {
	e, err := decodeReview(msg)
	if err != nil {
		metrics.RecordReviewEvent(ResultInvalid)
		a.logger.Warn().Err(err).Str("message_uuid", msg.UUID).Msg("Dropping malformed review event")
		return nil
	}

	a.mu.Lock()
	a.byCourse[e.CourseID]++
	a.total++
	a.mu.Unlock()

	metrics.RecordReviewEvent(ResultOK)
	a.logger.Info().
		Str("event_id", e.EventID).
		Str("request_id", msg.Metadata.Get(MetadataRequestID)).
		Int("review_id", e.ReviewID).
		Int("student_id", e.StudentID).
		Int("course_id", e.CourseID).
		Float64("final_score", e.FinalScore).
		Msg("Review submitted")
	return nil
}

// Total returns the number of valid events processed.
func (a *ReviewAuditor) Total() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.total
}

// CourseCount returns the number of valid events seen for courseID.
func (a *ReviewAuditor) CourseCount(courseID int) int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.byCourse[courseID]
}
