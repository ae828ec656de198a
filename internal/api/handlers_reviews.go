// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/coursepilot/internal/auth"
	"github.com/tomtom215/coursepilot/internal/database"
	"github.com/tomtom215/coursepilot/internal/events"
	"github.com/tomtom215/coursepilot/internal/metrics"
	"github.com/tomtom215/coursepilot/internal/models"
)

// Review list pagination defaults.
const (
	defaultReviewLimit = 100
)

// CreateReview stores a review written by the calling student and announces
// it on the event bus.
func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	claims, _ := auth.ClaimsFromContext(r.Context())
	if claims == nil || claims.StudentID == nil {
		respondError(w, r, http.StatusForbidden, "STUDENT_ACCOUNT_REQUIRED", "Only student accounts can submit reviews", nil)
		return
	}

	var req models.CreateReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	review, err := h.reviews.CreateReview(r.Context(), &database.ReviewInput{
		StudentID:               *claims.StudentID,
		CourseID:                req.CourseID,
		LanguagesLearned:        req.LanguagesLearned,
		CourseOutputs:           req.CourseOutputs,
		IndustryRelevanceText:   req.IndustryRelevanceText,
		InstructorFeedback:      req.InstructorFeedback,
		UsefulLearningText:      req.UsefulLearningText,
		IndustryRelevanceRating: req.IndustryRelevanceRating,
		InstructorRating:        req.InstructorRating,
		UsefulLearningRating:    req.UsefulLearningRating,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	metrics.RecordReviewSubmitted()

	if h.publisher != nil {
		if err := h.publisher.PublishReviewSubmitted(r.Context(), &events.ReviewSubmitted{
			ReviewID:    review.ID,
			StudentID:   review.StudentID,
			CourseID:    review.CourseID,
			FinalScore:  review.FinalScore,
			SubmittedAt: review.CreatedAt,
		}); err != nil {
			h.logger.Warn().Err(err).Int("review_id", review.ID).Msg("Failed to publish review event")
		}
	}

	respondData(w, r, http.StatusCreated, review, start)
}

// ListReviews returns reviews with skip/limit pagination.
func (h *Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_PARAMETER", err.Error(), nil)
		return
	}
	limit, err := queryInt(r, "limit", defaultReviewLimit)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_PARAMETER", err.Error(), nil)
		return
	}
	page := models.ListReviewsRequest{Skip: skip, Limit: limit}
	if apiErr := validateRequest(&page); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	reviews, err := h.reviews.ListReviews(r.Context(), page.Skip, page.Limit)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondData(w, r, http.StatusOK, reviews, start)
}

// ListCourseReviews returns every review of a course.
func (h *Handler) ListCourseReviews(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	courseID, err := pathID(r, "courseID")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_PARAMETER", err.Error(), nil)
		return
	}

	reviews, err := h.reviews.ListReviewsByCourse(r.Context(), courseID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondData(w, r, http.StatusOK, reviews, start)
}

// ListStudentReviews returns every review written by a student.
func (h *Handler) ListStudentReviews(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	studentID, err := pathID(r, "studentID")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_PARAMETER", err.Error(), nil)
		return
	}

	reviews, err := h.reviews.ListReviewsByStudent(r.Context(), studentID)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondData(w, r, http.StatusOK, reviews, start)
}
