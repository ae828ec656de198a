// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

// Package middleware holds the net/http middleware shared by every route:
// request ID propagation, Prometheus request metrics and response security
// headers. All middleware has the chi signature func(http.Handler) http.Handler.
package middleware
