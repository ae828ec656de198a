// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

// Package api exposes the recommendation engine and course reviews over HTTP.
//
// Routes are served by chi under /api/v1:
//
//	GET  /api/v1/health/live
//	GET  /api/v1/health/ready
//	POST /api/v1/auth/login
//	POST /api/v1/auth/register
//	GET  /api/v1/students/{studentID}/recommendations
//	POST /api/v1/reviews
//	GET  /api/v1/reviews
//	GET  /api/v1/reviews/course/{courseID}
//	GET  /api/v1/reviews/student/{studentID}
//	GET  /api/v1/admin/stats
//	GET  /metrics
//
// Every response uses the models.APIResponse envelope, encoded with
// goccy/go-json. Authenticated routes pass through JWT authentication and
// Casbin authorization; students may additionally only act on their own
// student ID.
package api
