// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

// Package main is the offline course-skill tagger.
//
// The tagger opens the configured DuckDB database and links every course to
// the technical and human skills suggested by its name and description. It
// only adds missing links, with no relevance score, and is safe to re-run.
//
// Configuration is shared with the server (Koanf v2: defaults, config.yaml,
// environment). Relevant variables:
//   - DUCKDB_PATH: Database file to tag
//   - TAGGING_DRY_RUN: Report the links that would be added without writing
//   - LOG_LEVEL / LOG_FORMAT: Logging output
//
// # Example Usage
//
//	DUCKDB_PATH=./data/coursepilot.duckdb TAGGING_DRY_RUN=true AUTH_MODE=none ./tagger
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/coursepilot/internal/config"
	"github.com/tomtom215/coursepilot/internal/database"
	"github.com/tomtom215/coursepilot/internal/logging"
	"github.com/tomtom215/coursepilot/internal/tagging"
)

var _ tagging.Store = (*database.DB)(nil)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		logging.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Error().Err(err).Str("path", cfg.Database.Path).Msg("Failed to open database")
		return 1
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	backfiller := tagging.NewBackfiller(db, cfg.Tagging.DryRun, logging.Logger())
	stats, err := backfiller.Backfill(ctx)
	if err != nil {
		logging.Error().Err(err).Int("links_added", stats.LinksAdded).Msg("Backfill failed")
		return 1
	}

	for i := range stats.Reports {
		r := &stats.Reports[i]
		logging.Info().
			Int("course_id", r.CourseID).
			Str("course", r.Name).
			Str("category", string(r.Category)).
			Strs("added", r.Added).
			Msg("Course skills")
	}

	logging.Info().
		Bool("dry_run", stats.DryRun).
		Int("courses", stats.Courses).
		Int("links_added", stats.LinksAdded).
		Dur("duration", stats.Duration()).
		Msg("Tagging complete")
	return 0
}
