// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

// Package authz provides role-based authorization using Casbin.
//
// The model and policy are compiled into the binary. Subjects are account
// roles: "student" may read recommendations and reviews and submit reviews;
// "advisor" inherits every student permission and may read anything under
// /api/v1. Paths are matched with keyMatch2, so policy objects use chi-style
// ":param" segments.
//
// Casbin answers "may this role perform this action on this route". Whether
// a student may act on a particular student ID is an ownership question and
// is answered by CanAccessStudent.
package authz
