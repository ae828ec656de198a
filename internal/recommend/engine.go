// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
)

// Note: This package has no dependencies on other internal packages.
// The DataProvider interface allows integration with the database package
// without creating circular imports.

// Engine produces ranked, explained course recommendations.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	// breaker guards snapshot fetches; nil when disabled
	breaker *gobreaker.CircuitBreaker[*Snapshot]

	dataProvider DataProvider

	requestCount  atomic.Int64
	blockedCount  atomic.Int64
	notFoundCount atomic.Int64
	errorCount    atomic.Int64
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}

	if cfg.Breaker.Enabled {
		e.breaker = gobreaker.NewCircuitBreaker[*Snapshot](gobreaker.Settings{
			Name:        "recommend-snapshot",
			MaxRequests: 1,
			Timeout:     cfg.Breaker.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= cfg.Breaker.FailureThreshold
			},
			// Unknown students and goals are caller errors, not source failures
			IsSuccessful: func(err error) bool {
				return err == nil || IsNotFound(err)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				e.logger.Warn().
					Str("breaker", name).
					Str("from", from.String()).
					Str("to", to.String()).
					Msg("snapshot circuit breaker state changed")
			},
		})
	}

	return e, nil
}

// SetDataProvider sets the data provider used by Recommend.
func (e *Engine) SetDataProvider(dp DataProvider) {
	e.dataProvider = dp
}

// Recommend fetches a snapshot for the request and computes recommendations.
// It returns ErrStudentNotFound or ErrCareerGoalNotFound (wrapped) for
// unknown identifiers. A blocked outcome is a successful response.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req = e.prepareRequest(req)
	logger := e.createRequestLogger(req)
	logger.Debug().Msg("processing recommendation request")

	snap, err := e.fetchSnapshot(ctx, req)
	if err != nil {
		if IsNotFound(err) {
			e.notFoundCount.Add(1)
		} else {
			e.errorCount.Add(1)
			logger.Error().Err(err).Msg("snapshot fetch failed")
		}
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}

	resp := e.compute(snap, req, logger)
	if resp.IsBlocked() {
		e.blockedCount.Add(1)
	}

	logger.Debug().
		Int("courses", len(snap.Courses)).
		Int("returned", len(resp.Recommendations)).
		Bool("blocked", resp.IsBlocked()).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")

	return resp, nil
}

// Compute runs the scoring pipeline over an already fetched snapshot.
// It performs no I/O and identical inputs yield identical responses.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Compute(snap *Snapshot, req Request) *Response {
	req = e.prepareRequest(req)
	return e.compute(snap, req, e.createRequestLogger(req))
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) compute(snap *Snapshot, req Request, logger zerolog.Logger) *Response {
	idx := newSnapshotIndex(snap)
	enforce := req.enforcePrereqs()

	var requiredHuman []int
	if snap.Goal != nil {
		requiredHuman = snap.Goal.HumanSkillIDs
	}

	readiness := AssessReadiness(requiredHuman, idx.held, idx.skillNames)
	if readiness.Blocked() {
		logger.Debug().
			Int("required_human_skills", len(readiness.Missing)).
			Msg("blocked by readiness gate")
		return blockedResponse(readiness, enforce)
	}

	candidates, blocked := FilterEligible(snap.Courses, idx.completed, snap.Prerequisites, enforce)

	scorer := newScorer(snap, idx, e.config)
	scored := make([]ScoredCourse, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, scorer.Score(c))
	}

	logger.Debug().
		Int("candidates", len(candidates)).
		Int("blocked_courses", len(blocked)).
		Float64("soft_readiness", readiness.Ratio).
		Msg("scored candidates")

	return &Response{
		SoftReadiness:      readiness.Ratio,
		OverlapHumanSkills: readiness.Overlap,
		MissingHumanSkills: readiness.Missing,
		Recommendations:    Rank(scored, req.K),
		BlockedCourses:     blocked,
	}
}

// blockedResponse builds the terminal response for a readiness block.
func blockedResponse(readiness ReadinessResult, enforce bool) *Response {
	var blocked []BlockedCourse
	if enforce {
		blocked = []BlockedCourse{}
	}
	return &Response{
		SoftReadiness:      readiness.Ratio,
		OverlapHumanSkills: readiness.Overlap,
		MissingHumanSkills: readiness.Missing,
		Recommendations:    []ScoredCourse{},
		BlockedReason:      readiness.BlockedReason,
		BlockedCourses:     blocked,
	}
}

// fetchSnapshot loads the snapshot within the configured timeout and
// through the circuit breaker when one is enabled.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) fetchSnapshot(ctx context.Context, req Request) (*Snapshot, error) {
	if e.dataProvider == nil {
		return nil, ErrNoDataProvider
	}

	if timeout := e.config.Limits.SnapshotTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	load := func() (*Snapshot, error) {
		return LoadSnapshot(ctx, e.dataProvider, req.StudentID, req.CareerGoalID)
	}

	if e.breaker == nil {
		return load()
	}

	snap, err := e.breaker.Execute(load)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotUnavailable, err)
	}
	return snap, err
}

// prepareRequest applies defaults and generates request ID if needed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	if req.K <= 0 {
		req.K = e.config.Limits.DefaultK
	}
	if req.K > e.config.Limits.MaxK {
		req.K = e.config.Limits.MaxK
	}

	if req.EnforcePrereqs == nil {
		enforce := true
		req.EnforcePrereqs = &enforce
	}

	return req
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Int("student_id", req.StudentID).
		Int("career_goal_id", req.CareerGoalID).
		Int("k", req.K).
		Logger()
}

// GetStats returns a point-in-time copy of the engine counters.
func (e *Engine) GetStats() Stats {
	s := Stats{
		RequestCount: e.requestCount.Load(),
		BlockedCount: e.blockedCount.Load(),
		NotFound:     e.notFoundCount.Load(),
		ErrorCount:   e.errorCount.Load(),
		BreakerState: "disabled",
	}
	if e.breaker != nil {
		s.BreakerState = e.breaker.State().String()
	}
	return s
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}
