// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

/*
Package config provides centralized configuration management for Coursepilot.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file (CONFIG_PATH or config.yaml), then environment variables. The result
is validated before the service starts.

# Environment Variables

HTTP Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development or production (default: development)

Database:
  - DUCKDB_PATH: Database file path (default: /data/coursepilot.duckdb)
  - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 1GB)
  - DUCKDB_THREADS: DuckDB worker threads (default: NumCPU)
  - SEED_DEMO_DATA: Load the demo curriculum into an empty database

Security:
  - AUTH_MODE: jwt or none (default: jwt)
  - JWT_SECRET: HS256 signing secret, at least 32 characters
  - SESSION_TIMEOUT: Token lifetime (default: 24h)
  - RATE_LIMIT_REQUESTS / RATE_LIMIT_WINDOW / DISABLE_RATE_LIMIT
  - CORS_ORIGINS: Comma-separated allowed origins

Recommendation engine:
  - RECOMMEND_ALPHA, RECOMMEND_WEIGHT_ROLE, RECOMMEND_WEIGHT_AFFINITY,
    RECOMMEND_WEIGHT_QUALITY, RECOMMEND_TOP_K_SIMILAR, RECOMMEND_PRIOR_M
  - RECOMMEND_DEFAULT_K, RECOMMEND_MAX_K, RECOMMEND_SNAPSHOT_TIMEOUT
  - RECOMMEND_BREAKER_ENABLED, RECOMMEND_BREAKER_FAILURE_THRESHOLD,
    RECOMMEND_BREAKER_TIMEOUT

The three weights must sum to 1.0; loading fails otherwise.

Events:
  - EVENTS_OUTPUT_BUFFER, EVENTS_CLOSE_TIMEOUT, EVENTS_RETRY_COUNT,
    EVENTS_RETRY_INTERVAL

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file and line (default: false)
*/
package config
