// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/coursepilot/internal/models"
)

const readinessTimeout = 2 * time.Second

// HealthLive reports that the process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondData(w, r, http.StatusOK, &models.HealthStatus{
		Status:        "alive",
		Version:       h.version,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}, start)
}

// HealthReady reports whether the database is reachable.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if h.db == nil {
		respondError(w, r, http.StatusServiceUnavailable, "NOT_READY", "Database not configured", nil)
		return
	}
	if err := h.db.Ping(ctx); err != nil {
		respondError(w, r, http.StatusServiceUnavailable, "NOT_READY", "Database unavailable", err)
		return
	}

	respondData(w, r, http.StatusOK, &models.HealthStatus{
		Status:        "ready",
		Version:       h.version,
		Database:      "connected",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}, start)
}
