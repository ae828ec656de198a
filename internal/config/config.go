// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package config

import (
	"time"

	"github.com/tomtom215/coursepilot/internal/recommend"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Security  SecurityConfig  `koanf:"security"`
	Recommend RecommendConfig `koanf:"recommend"`
	Events    EventsConfig    `koanf:"events"`
	Tagging   TaggingConfig   `koanf:"tagging"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // Environment mode: "development", "staging", "production" (default: "development")
}

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	Path         string `koanf:"path"`
	MaxMemory    string `koanf:"max_memory"`
	Threads      int    `koanf:"threads"`        // Number of DuckDB threads (0 = use NumCPU)
	SeedDemoData bool   `koanf:"seed_demo_data"` // Load the demo curriculum on an empty database
	DemoPassword string `koanf:"demo_password"`  // Password given to every seeded demo account
}

// SecurityConfig holds authentication and authorization settings
type SecurityConfig struct {
	AuthMode          string        `koanf:"auth_mode"` // "jwt" or "none"
	JWTSecret         string        `koanf:"jwt_secret"`
	SessionTimeout    time.Duration `koanf:"session_timeout"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// RecommendConfig holds the scoring engine settings.
//
// Environment Variables:
//   - RECOMMEND_ALPHA: Cluster match weight in course similarity (default: 0.6)
//   - RECOMMEND_WEIGHT_ROLE: Career fit weight (default: 0.80)
//   - RECOMMEND_WEIGHT_AFFINITY: Completed course affinity weight (default: 0.10)
//   - RECOMMEND_WEIGHT_QUALITY: Review quality weight (default: 0.10)
//   - RECOMMEND_TOP_K_SIMILAR: Completed courses averaged for affinity (default: 3)
//   - RECOMMEND_PRIOR_M: Bayesian prior strength (default: 5)
//   - RECOMMEND_DEFAULT_K / RECOMMEND_MAX_K: Result size limits (default: 10 / 100)
//   - RECOMMEND_SNAPSHOT_TIMEOUT: Snapshot fetch deadline (default: 5s)
//   - RECOMMEND_BREAKER_ENABLED: Circuit breaker on snapshot fetches (default: true)
type RecommendConfig struct {
	Alpha                   float64       `koanf:"alpha"`
	WeightRole              float64       `koanf:"weight_role"`
	WeightAffinity          float64       `koanf:"weight_affinity"`
	WeightQuality           float64       `koanf:"weight_quality"`
	TopKSimilar             int           `koanf:"top_k_similar"`
	PriorM                  float64       `koanf:"prior_m"`
	DefaultK                int           `koanf:"default_k"`
	MaxK                    int           `koanf:"max_k"`
	SnapshotTimeout         time.Duration `koanf:"snapshot_timeout"`
	BreakerEnabled          bool          `koanf:"breaker_enabled"`
	BreakerFailureThreshold uint32        `koanf:"breaker_failure_threshold"`
	BreakerTimeout          time.Duration `koanf:"breaker_timeout"`
}

// EngineConfig converts the settings into the engine's configuration value.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (r RecommendConfig) EngineConfig() *recommend.Config {
	return &recommend.Config{
		Alpha: r.Alpha,
		Weights: recommend.ScoreWeights{
			Role:     r.WeightRole,
			Affinity: r.WeightAffinity,
			Quality:  r.WeightQuality,
		},
		TopKSimilar: r.TopKSimilar,
		PriorM:      r.PriorM,
		Limits: recommend.LimitsConfig{
			DefaultK:        r.DefaultK,
			MaxK:            r.MaxK,
			SnapshotTimeout: r.SnapshotTimeout,
		},
		Breaker: recommend.BreakerConfig{
			Enabled:          r.BreakerEnabled,
			FailureThreshold: r.BreakerFailureThreshold,
			Timeout:          r.BreakerTimeout,
		},
	}
}

// EventsConfig holds in-process event bus settings
type EventsConfig struct {
	OutputBuffer         int64         `koanf:"output_buffer"`
	CloseTimeout         time.Duration `koanf:"close_timeout"`
	RetryCount           int           `koanf:"retry_count"`
	RetryInitialInterval time.Duration `koanf:"retry_initial_interval"`
}

// TaggingConfig holds settings for the offline course-skill tagger.
type TaggingConfig struct {
	DryRun bool `koanf:"dry_run"` // Report the links that would be added without writing them
}

// LoggingConfig holds logging configuration settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from all sources with the following precedence
// (highest to lowest):
//  1. Environment variables
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Built-in defaults
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
