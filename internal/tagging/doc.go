// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

// Package tagging links courses to skills using keyword heuristics.
//
// It is an offline maintenance tool, run by cmd/tagger after the catalogue
// has been loaded. The recommendation engine never calls it.
//
// # Categorization
//
// Categorize lowercases the course name and description and detects one
// course category (web, backend, db, ml, systems, security, or none) by
// substring match. The first matching category in that order decides the
// technical skills:
//
//	web       JavaScript, React, Node.js, Docker (+ SQL when data keywords appear)
//	backend   Node.js, Docker, SQL, AWS
//	db        SQL, Python, AWS, Docker
//	ml        Python, TensorFlow, Docker, AWS
//	systems   C++, Docker, AWS
//	security  Docker, AWS, Python, SQL
//	none      Python, SQL, Docker
//
// Git is always included, and the result always holds 4 to 6 technical
// skills. Problem-solving is always included among the 2 to 3 human skills.
// Project-like courses add Teamwork, Communication and Leadership; ML and
// research courses add Self-learner.
//
// # Backfill
//
// Backfill runs Categorize for every course and adds the missing
// (course, skill) links with an unscored relevance. It never deletes or
// rescores existing links, so running it repeatedly is safe.
package tagging
