// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package database

import (
	"context"
	"fmt"
)

// LinkCourseSkill adds an unscored course-skill link unless one already exists.
// It reports whether a row was added and never modifies existing links.
func (db *DB) LinkCourseSkill(ctx context.Context, courseID, skillID int) (bool, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	linked, err := db.exists(ctx,
		`SELECT EXISTS (SELECT 1 FROM course_skills WHERE course_id = ? AND skill_id = ?)`,
		courseID, skillID)
	if err != nil {
		return false, fmt.Errorf("check course skill: %w", err)
	}
	if linked {
		return false, nil
	}

	if _, err := db.conn.ExecContext(ctx,
		`INSERT INTO course_skills (course_id, skill_id, relevance_score) VALUES (?, ?, NULL)`,
		courseID, skillID); err != nil {
		return false, fmt.Errorf("insert course skill: %w", err)
	}
	return true, nil
}

// SetCourseSkillRelevance scores an existing link. relevance must be in [0, 1].
func (db *DB) SetCourseSkillRelevance(ctx context.Context, courseID, skillID int, relevance float64) error {
	if relevance < 0 || relevance > 1 {
		return fmt.Errorf("relevance must be in [0, 1], got %f", relevance)
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	res, err := db.conn.ExecContext(ctx,
		`UPDATE course_skills SET relevance_score = ? WHERE course_id = ? AND skill_id = ?`,
		relevance, courseID, skillID)
	if err != nil {
		return fmt.Errorf("update course skill: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("course %d has no link to skill %d", courseID, skillID)
	}
	return nil
}
