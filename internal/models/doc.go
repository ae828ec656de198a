// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

// Package models defines the HTTP API's request and response shapes.
//
// Every endpoint answers with an APIResponse envelope. Domain payloads are
// the recommend and database types; this package only adds the request
// bodies and list wrappers that exist solely at the API boundary.
package models
