// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package database

import (
	"context"
	"fmt"
	"time"
)

// Migration is a versioned schema change. Migrations are append-only:
// once released, a migration must never be edited or removed.
type Migration struct {
	Version     int
	Name        string
	Description string
	Statements  []string
	AppliedAt   time.Time
}

const schemaMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	applied_at TIMESTAMP NOT NULL DEFAULT current_timestamp
)`

// migrations returns all migrations in version order.
func migrations() []Migration {
	return []Migration{
		{
			Version:     1,
			Name:        "curriculum",
			Description: "Courses, skills, clusters, prerequisites and career goals",
			Statements: []string{
				`CREATE TABLE IF NOT EXISTS skills (
					id INTEGER PRIMARY KEY,
					name TEXT NOT NULL UNIQUE,
					type TEXT NOT NULL CHECK (type IN ('technical', 'human'))
				)`,
				`CREATE TABLE IF NOT EXISTS courses (
					id INTEGER PRIMARY KEY,
					name TEXT NOT NULL,
					description TEXT,
					difficulty INTEGER,
					workload INTEGER,
					credits DOUBLE,
					status TEXT
				)`,
				`CREATE TABLE IF NOT EXISTS clusters (
					id INTEGER PRIMARY KEY,
					name TEXT NOT NULL UNIQUE,
					description TEXT
				)`,
				`CREATE TABLE IF NOT EXISTS course_clusters (
					course_id INTEGER NOT NULL,
					cluster_id INTEGER NOT NULL,
					PRIMARY KEY (course_id, cluster_id)
				)`,
				`CREATE TABLE IF NOT EXISTS course_skills (
					course_id INTEGER NOT NULL,
					skill_id INTEGER NOT NULL,
					relevance_score DOUBLE CHECK (relevance_score IS NULL OR (relevance_score >= 0 AND relevance_score <= 1)),
					PRIMARY KEY (course_id, skill_id)
				)`,
				`CREATE TABLE IF NOT EXISTS course_prerequisites (
					course_id INTEGER NOT NULL,
					required_course_id INTEGER NOT NULL,
					PRIMARY KEY (course_id, required_course_id)
				)`,
				`CREATE TABLE IF NOT EXISTS career_goals (
					id INTEGER PRIMARY KEY,
					name TEXT NOT NULL UNIQUE,
					description TEXT
				)`,
				`CREATE TABLE IF NOT EXISTS career_goal_technical_skills (
					career_goal_id INTEGER NOT NULL,
					skill_id INTEGER NOT NULL,
					sort_order INTEGER NOT NULL DEFAULT 0,
					PRIMARY KEY (career_goal_id, skill_id)
				)`,
				`CREATE TABLE IF NOT EXISTS career_goal_human_skills (
					career_goal_id INTEGER NOT NULL,
					skill_id INTEGER NOT NULL,
					sort_order INTEGER NOT NULL DEFAULT 0,
					PRIMARY KEY (career_goal_id, skill_id)
				)`,
			},
		},
		{
			Version:     2,
			Name:        "students",
			Description: "Student profiles, completed courses, held human skills and login accounts",
			Statements: []string{
				`CREATE TABLE IF NOT EXISTS students (
					id INTEGER PRIMARY KEY,
					name TEXT NOT NULL,
					email TEXT NOT NULL UNIQUE,
					faculty TEXT,
					year INTEGER,
					created_at TIMESTAMP NOT NULL DEFAULT current_timestamp
				)`,
				`CREATE TABLE IF NOT EXISTS student_courses (
					student_id INTEGER NOT NULL,
					course_id INTEGER NOT NULL,
					status TEXT NOT NULL DEFAULT 'completed',
					PRIMARY KEY (student_id, course_id)
				)`,
				`CREATE TABLE IF NOT EXISTS student_human_skills (
					student_id INTEGER NOT NULL,
					skill_id INTEGER NOT NULL,
					PRIMARY KEY (student_id, skill_id)
				)`,
				`CREATE SEQUENCE IF NOT EXISTS accounts_id_seq START 1`,
				`CREATE TABLE IF NOT EXISTS accounts (
					id INTEGER PRIMARY KEY DEFAULT nextval('accounts_id_seq'),
					email TEXT NOT NULL UNIQUE,
					password_hash TEXT NOT NULL,
					role TEXT NOT NULL CHECK (role IN ('student', 'advisor')),
					student_id INTEGER,
					created_at TIMESTAMP NOT NULL DEFAULT current_timestamp
				)`,
			},
		},
		{
			Version:     3,
			Name:        "course_reviews",
			Description: "Student course reviews feeding the quality prior",
			Statements: []string{
				`CREATE SEQUENCE IF NOT EXISTS course_reviews_id_seq START 1`,
				`CREATE TABLE IF NOT EXISTS course_reviews (
					id INTEGER PRIMARY KEY DEFAULT nextval('course_reviews_id_seq'),
					student_id INTEGER NOT NULL,
					course_id INTEGER NOT NULL,
					languages_learned TEXT,
					course_outputs TEXT,
					industry_relevance_text TEXT,
					instructor_feedback TEXT,
					useful_learning_text TEXT,
					industry_relevance_rating INTEGER NOT NULL CHECK (industry_relevance_rating BETWEEN 1 AND 5),
					instructor_rating INTEGER NOT NULL CHECK (instructor_rating BETWEEN 1 AND 5),
					useful_learning_rating INTEGER NOT NULL CHECK (useful_learning_rating BETWEEN 1 AND 5),
					final_score DOUBLE NOT NULL,
					created_at TIMESTAMP NOT NULL DEFAULT current_timestamp
				)`,
				`CREATE INDEX IF NOT EXISTS idx_course_reviews_course ON course_reviews (course_id)`,
				`CREATE INDEX IF NOT EXISTS idx_course_reviews_student ON course_reviews (student_id)`,
			},
		},
	}
}

// migrate applies every migration not yet recorded in schema_migrations.
// Each migration runs in its own transaction together with its bookkeeping row.
func (db *DB) migrate() error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, schemaMigrationsTable); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := db.appliedVersions(ctx)
	if err != nil {
		return err
	}

	count := 0
	for _, m := range migrations() {
		if applied[m.Version] {
			continue
		}
		if err := db.applyMigration(ctx, m); err != nil {
			return err
		}
		count++
	}

	if count > 0 {
		db.logger.Info().Int("applied", count).Msg("Applied database migrations")
	}
	return nil
}

func (db *DB) applyMigration(ctx context.Context, m Migration) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration v%d: %w", m.Version, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range m.Statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute migration v%d (%s): %w", m.Version, m.Name, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name, description) VALUES (?, ?, ?)`,
		m.Version, m.Name, m.Description); err != nil {
		return fmt.Errorf("failed to record migration v%d: %w", m.Version, err)
	}
	return tx.Commit()
}

func (db *DB) appliedVersions(ctx context.Context) (map[int]bool, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

// SchemaVersion returns the highest applied migration version.
func (db *DB) SchemaVersion(ctx context.Context) (int, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	var version int
	err := db.conn.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}

// MigrationHistory returns applied migrations in version order.
func (db *DB) MigrationHistory(ctx context.Context) ([]Migration, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT version, name, COALESCE(description, ''), applied_at FROM schema_migrations ORDER BY version`)
	if err != nil {
		return nil, fmt.Errorf("failed to query migration history: %w", err)
	}
	defer rows.Close()

	var history []Migration
	for rows.Next() {
		var m Migration
		if err := rows.Scan(&m.Version, &m.Name, &m.Description, &m.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan migration: %w", err)
		}
		history = append(history, m)
	}
	return history, rows.Err()
}
