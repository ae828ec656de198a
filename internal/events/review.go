// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// TopicReviewSubmitted is the topic for persisted course reviews.
const TopicReviewSubmitted = "review.submitted"

// Metadata keys set on every message.
const (
	MetadataEventType = "event_type"
	MetadataRequestID = "request_id"
)

// ErrInvalidEvent is returned for events missing required fields.
var ErrInvalidEvent = errors.New("invalid event")

// ReviewSubmitted is emitted after a review is stored.
type ReviewSubmitted struct {
	EventID     string    `json:"event_id"`
	ReviewID    int       `json:"review_id"`
	StudentID   int       `json:"student_id"`
	CourseID    int       `json:"course_id"`
	FinalScore  float64   `json:"final_score"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Validate checks the fields consumers rely on.
func (e *ReviewSubmitted) Validate() error {
	switch {
	case e.ReviewID <= 0:
		return fmt.Errorf("%w: review_id must be positive, got %d", ErrInvalidEvent, e.ReviewID)
	case e.StudentID <= 0:
		return fmt.Errorf("%w: student_id must be positive, got %d", ErrInvalidEvent, e.StudentID)
	case e.CourseID <= 0:
		return fmt.Errorf("%w: course_id must be positive, got %d", ErrInvalidEvent, e.CourseID)
	case e.FinalScore < 1 || e.FinalScore > 10:
		return fmt.Errorf("%w: final_score must be in [1, 10], got %v", ErrInvalidEvent, e.FinalScore)
	}
	return nil
}

// newReviewMessage encodes the event as a Watermill message. The event ID
// doubles as the message UUID and is generated when empty.
func newReviewMessage(e *ReviewSubmitted, requestID string) (*message.Message, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.SubmittedAt.IsZero() {
		e.SubmittedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal review event: %w", err)
	}

	msg := message.NewMessage(e.EventID, payload)
	msg.Metadata.Set(MetadataEventType, TopicReviewSubmitted)
	if requestID != "" {
		msg.Metadata.Set(MetadataRequestID, requestID)
	}
	return msg, nil
}

// decodeReview parses a message payload.
func decodeReview(msg *message.Message) (*ReviewSubmitted, error) {
	var e ReviewSubmitted
	if err := json.Unmarshal(msg.Payload, &e); err != nil {
		return nil, fmt.Errorf("unmarshal review event: %w", err)
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}
