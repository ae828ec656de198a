// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/coursepilot/internal/auth"
	"github.com/tomtom215/coursepilot/internal/models"
)

// Login exchanges email and password for a JWT.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	result, err := h.auth.Login(r.Context(), req.Email, req.Password, auth.ClientIP(r))
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		respondError(w, r, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password", nil)
		return
	case errors.Is(err, auth.ErrAccountLocked):
		respondError(w, r, http.StatusTooManyRequests, "ACCOUNT_LOCKED", "Too many failed attempts, try again later", nil)
		return
	case err != nil:
		respondError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed", err)
		return
	}

	respondData(w, r, http.StatusOK, &models.LoginResponse{
		Token:     result.Token,
		TokenType: "Bearer",
		ExpiresAt: result.ExpiresAt,
		Role:      result.Role,
		StudentID: result.StudentID,
	}, start)
}

// Register creates a student profile with a login account. The caller logs
// in afterwards to obtain a token.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	student, err := h.auth.Register(r.Context(), &auth.Registration{
		Name:               req.Name,
		Email:              req.Email,
		Password:           req.Password,
		Faculty:            req.Faculty,
		Year:               req.Year,
		CompletedCourseIDs: req.CompletedCourseIDs,
		HumanSkillIDs:      req.HumanSkillIDs,
	}, auth.ClientIP(r))
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondData(w, r, http.StatusCreated, student, start)
}
