// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package recommend

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// weightSumTolerance bounds floating point drift when checking that the
// score weights sum to 1.0.
const weightSumTolerance = 1e-6

// Config contains all configuration for the recommendation engine.
// It is treated as immutable once passed to NewEngine.
type Config struct {
	// Alpha blends cluster match against technical-skill overlap in the
	// course similarity. Default: 0.6.
	Alpha float64 `json:"alpha"`

	// Weights defines the contribution of each sub-score to the final score.
	// Weights must sum to 1.0.
	Weights ScoreWeights `json:"weights"`

	// TopKSimilar is the number of most similar completed courses averaged
	// into the affinity sub-score. Default: 3.
	TopKSimilar int `json:"top_k_similar"`

	// PriorM is the prior strength (virtual reviews at the global mean)
	// used for Bayesian smoothing of review quality. Default: 5.
	PriorM float64 `json:"prior_m"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`

	// Breaker configures the circuit breaker around snapshot fetches.
	Breaker BreakerConfig `json:"breaker"`
}

// ScoreWeights defines the relative contribution of each sub-score.
type ScoreWeights struct {
	// Role is the weight for technical fit with the career goal.
	Role float64 `json:"role"`

	// Affinity is the weight for similarity to completed courses.
	Affinity float64 `json:"affinity"`

	// Quality is the weight for smoothed review quality.
	Quality float64 `json:"quality"`
}

// Sum returns the total of all weights.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w ScoreWeights) Sum() float64 {
	return w.Role + w.Affinity + w.Quality
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultK is the number of recommendations returned when the request
	// does not specify one. Default: 10.
	DefaultK int `json:"default_k"`

	// MaxK is the maximum allowed K value. Default: 100.
	MaxK int `json:"max_k"`

	// SnapshotTimeout bounds the time spent fetching the data snapshot.
	// Zero disables the timeout. Default: 5s.
	SnapshotTimeout time.Duration `json:"snapshot_timeout"`
}

// BreakerConfig configures the snapshot circuit breaker.
type BreakerConfig struct {
	// Enabled controls whether snapshot fetches go through the breaker.
	// Default: true.
	Enabled bool `json:"enabled"`

	// FailureThreshold is the number of consecutive failures that opens
	// the breaker. Default: 5.
	FailureThreshold uint32 `json:"failure_threshold"`

	// Timeout is how long the breaker stays open before probing again.
	// Default: 30s.
	Timeout time.Duration `json:"timeout"`
}

// DefaultConfig returns a Config with the reference scoring constants.
func DefaultConfig() *Config {
	return &Config{
		Alpha: 0.6,
		Weights: ScoreWeights{
			Role:     0.80,
			Affinity: 0.10,
			Quality:  0.10,
		},
		TopKSimilar: 3,
		PriorM:      5,
		Limits: LimitsConfig{
			DefaultK:        10,
			MaxK:            100,
			SnapshotTimeout: 5 * time.Second,
		},
		Breaker: BreakerConfig{
			Enabled:          true,
			FailureThreshold: 5,
			Timeout:          30 * time.Second,
		},
	}
}

// Validate checks the configuration for errors.
//
//nolint:gocyclo // validation needs to check many fields
func (c *Config) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"alpha", c.Alpha},
		{"weights.role", c.Weights.Role},
		{"weights.affinity", c.Weights.Affinity},
		{"weights.quality", c.Weights.Quality},
		{"prior_m", c.PriorM},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s must be a finite number, got %f", f.name, f.value)
		}
	}

	if c.Alpha < 0 || c.Alpha > 1 {
		return fmt.Errorf("alpha must be in [0, 1], got %f", c.Alpha)
	}

	if c.Weights.Role < 0 {
		return fmt.Errorf("weights.role must be non-negative, got %f", c.Weights.Role)
	}
	if c.Weights.Affinity < 0 {
		return fmt.Errorf("weights.affinity must be non-negative, got %f", c.Weights.Affinity)
	}
	if c.Weights.Quality < 0 {
		return fmt.Errorf("weights.quality must be non-negative, got %f", c.Weights.Quality)
	}
	if sum := c.Weights.Sum(); math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %f", sum)
	}

	if c.TopKSimilar < 1 {
		return fmt.Errorf("top_k_similar must be positive, got %d", c.TopKSimilar)
	}
	if c.PriorM < 0 {
		return fmt.Errorf("prior_m must be non-negative, got %f", c.PriorM)
	}

	if c.Limits.DefaultK < 1 {
		return fmt.Errorf("limits.default_k must be positive, got %d", c.Limits.DefaultK)
	}
	if c.Limits.MaxK < c.Limits.DefaultK {
		return fmt.Errorf("limits.max_k must be >= limits.default_k, got %d < %d", c.Limits.MaxK, c.Limits.DefaultK)
	}
	if c.Limits.SnapshotTimeout < 0 {
		return fmt.Errorf("limits.snapshot_timeout must be non-negative, got %v", c.Limits.SnapshotTimeout)
	}

	if c.Breaker.Enabled {
		if c.Breaker.FailureThreshold < 1 {
			return fmt.Errorf("breaker.failure_threshold must be positive, got %d", c.Breaker.FailureThreshold)
		}
		if c.Breaker.Timeout <= 0 {
			return fmt.Errorf("breaker.timeout must be positive, got %v", c.Breaker.Timeout)
		}
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs contain only value types
	clone := *c
	return &clone
}

// MarshalJSON implements custom JSON marshaling for duration fields.
func (c *Config) MarshalJSON() ([]byte, error) {
	type Alias Config
	type limits struct {
		DefaultK        int    `json:"default_k"`
		MaxK            int    `json:"max_k"`
		SnapshotTimeout string `json:"snapshot_timeout"`
	}
	type breaker struct {
		Enabled          bool   `json:"enabled"`
		FailureThreshold uint32 `json:"failure_threshold"`
		Timeout          string `json:"timeout"`
	}
	return json.Marshal(&struct {
		*Alias
		Limits  limits  `json:"limits"`
		Breaker breaker `json:"breaker"`
	}{
		Alias: (*Alias)(c),
		Limits: limits{
			DefaultK:        c.Limits.DefaultK,
			MaxK:            c.Limits.MaxK,
			SnapshotTimeout: c.Limits.SnapshotTimeout.String(),
		},
		Breaker: breaker{
			Enabled:          c.Breaker.Enabled,
			FailureThreshold: c.Breaker.FailureThreshold,
			Timeout:          c.Breaker.Timeout.String(),
		},
	})
}
