// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/coursepilot/internal/auth"
	"github.com/tomtom215/coursepilot/internal/authz"
	"github.com/tomtom215/coursepilot/internal/logging"
	"github.com/tomtom215/coursepilot/internal/metrics"
	"github.com/tomtom215/coursepilot/internal/models"
	"github.com/tomtom215/coursepilot/internal/recommend"
)

// Recommendations runs the engine for a student and career goal.
//
// Query parameters: career_goal_id (required), k, enforce_prereqs.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	studentID, err := pathID(r, "studentID")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_PARAMETER", err.Error(), nil)
		return
	}
	if !h.requireStudentAccess(w, r, studentID) {
		return
	}

	goalID, err := queryInt(r, "career_goal_id", 0)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_PARAMETER", err.Error(), nil)
		return
	}
	k, err := queryInt(r, "k", 0)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_PARAMETER", err.Error(), nil)
		return
	}
	enforce, err := queryBool(r, "enforce_prereqs")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_PARAMETER", err.Error(), nil)
		return
	}

	query := models.RecommendationQuery{CareerGoalID: goalID, K: k}
	if apiErr := validateRequest(&query); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	resp, err := h.engine.Recommend(r.Context(), recommend.Request{
		StudentID:      studentID,
		CareerGoalID:   goalID,
		K:              k,
		EnforcePrereqs: enforce,
		RequestID:      logging.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		outcome := metrics.OutcomeError
		if recommend.IsNotFound(err) {
			outcome = metrics.OutcomeNotFound
		}
		metrics.RecordRecommendation(outcome, 0, time.Since(start))
		respondDomainError(w, r, err)
		return
	}

	outcome := metrics.OutcomeOK
	if resp.IsBlocked() {
		outcome = metrics.OutcomeBlocked
	}
	metrics.RecordRecommendation(outcome, len(resp.Recommendations), time.Since(start))

	respondData(w, r, http.StatusOK, resp, start)
}

// EngineStats returns the engine's request counters and breaker state.
func (h *Handler) EngineStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondData(w, r, http.StatusOK, h.engine.GetStats(), start)
}

// requireStudentAccess writes 403 and returns false when the caller may not
// act on studentID.
func (h *Handler) requireStudentAccess(w http.ResponseWriter, r *http.Request, studentID int) bool {
	claims, _ := auth.ClaimsFromContext(r.Context())
	if authz.CanAccessStudent(claims, studentID) {
		return true
	}
	respondError(w, r, http.StatusForbidden, "FORBIDDEN", "Students may only access their own records", nil)
	return false
}
