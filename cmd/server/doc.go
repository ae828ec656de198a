// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

/*
Package main is the entry point for the Coursepilot server application.

Coursepilot recommends courses to students for a chosen career goal. It
scores the course catalogue by fit with the goal's technical skills, by
similarity to courses the student has completed and by review quality, and
withholds courses whose prerequisites are unmet.

# Application Architecture

The server runs its long-lived components under Suture v4 supervision:

	RootSupervisor ("coursepilot")
	├── EventsSupervisor ("events-layer")
	│   └── Event Router (review.submitted auditing)
	├── APISupervisor ("api-layer")
	│   └── HTTP Server
	└── MaintenanceSupervisor ("maintenance-layer")
	    └── Login Lockout Cleanup

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Database: DuckDB, with optional demo curriculum seeding
 4. Recommendation Engine: scoring with a circuit-breaker guarded snapshot fetch
 5. Authentication: JWT logins with account lockout
 6. Authorization: Casbin role policies for students and advisors
 7. Event Bus: Watermill in-process pub/sub
 8. HTTP Server: Chi router with middleware stack

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	HTTP_PORT=8080               # HTTP server port
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console
	DUCKDB_PATH=/data/coursepilot.duckdb
	AUTH_MODE=jwt                # jwt or none
	JWT_SECRET=<32+ chars>       # Required for JWT mode
	SEED_DEMO_DATA=false         # Load the demo curriculum on an empty database

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:

 1. Stops accepting new HTTP connections
 2. Waits for in-flight requests (10s timeout)
 3. Stops the event router and closes the bus
 4. Closes the database
 5. Reports any services that failed to stop

# Usage Examples

Development (no auth, demo data):

	AUTH_MODE=none SEED_DEMO_DATA=true go run ./cmd/server

Production:

	export AUTH_MODE=jwt
	export JWT_SECRET=$(openssl rand -base64 32)
	export ENVIRONMENT=production
	./coursepilot
*/
package main
