// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

// Package recommend implements the course recommendation scoring engine.
//
// # Architecture
//
// A recommendation is computed from a read-only Snapshot of the curriculum
// and of one student's state. The engine is split into small pure stages:
//
//   - Readiness Gate: compares the goal's required human skills with the
//     student's held human skills and blocks the whole request on zero overlap
//   - Eligibility Filter: drops completed courses and, optionally, courses
//     whose prerequisites are not met
//   - Score Aggregator: role fit, affinity to completed courses and
//     Bayesian-smoothed review quality, combined with configured weights
//   - Ranker: stable sort by final score, truncated to K
//
// The Similarity Engine (cluster match blended with technical-skill Jaccard
// overlap) is used by the affinity sub-score.
//
// # Scoring
//
//	final = W_role*s_role + W_affinity*s_affinity + W_quality*q_smoothed
//
// with reference weights 0.80 / 0.10 / 0.10, ALPHA 0.6, TOP_K_SIMILAR 3 and a
// prior strength of 5 virtual reviews at the global mean.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	engine.SetDataProvider(db)
//
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    StudentID:    studentID,
//	    CareerGoalID: goalID,
//	})
//
// # Thread Safety
//
// The engine holds no mutable state apart from atomic counters and the
// circuit breaker guarding the snapshot fetch. Compute is a pure function of
// the snapshot and request, so identical inputs produce identical output.
package recommend
