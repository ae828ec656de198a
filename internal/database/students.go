// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/coursepilot/internal/recommend"
)

// StudentRegistration is a self-registered student together with the
// password hash of its login account.
type StudentRegistration struct {
	Name               string
	Email              string
	PasswordHash       string
	Faculty            *string
	Year               *int
	CompletedCourseIDs []int
	HumanSkillIDs      []int
}

// RegisterStudent creates the student profile, its completed courses, its
// human skills and a student login account in one transaction.
//
// Returns ErrAccountExists when the email is taken by an account or a
// student, ErrCourseNotFound for an unknown completed course and
// ErrSkillNotFound for an id that is not a human skill.
func (db *DB) RegisterStudent(ctx context.Context, reg *StudentRegistration) (*recommend.Student, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	email := normalizeEmail(reg.Email)
	courses := uniqueIDs(reg.CompletedCourseIDs)
	skills := uniqueIDs(reg.HumanSkillIDs)

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin registration: %w", err)
	}
	defer func() { _ = tx.Rollback() }() //nolint:errcheck // no-op after commit

	taken, err := queryExists(ctx, tx, `SELECT EXISTS (SELECT 1 FROM students WHERE lower(email) = ?)`, email)
	if err != nil {
		return nil, fmt.Errorf("check student email: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: %s", ErrAccountExists, email)
	}

	for _, id := range courses {
		ok, err := queryExists(ctx, tx, `SELECT EXISTS (SELECT 1 FROM courses WHERE id = ?)`, id)
		if err != nil {
			return nil, fmt.Errorf("check course: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: id %d", ErrCourseNotFound, id)
		}
	}
	for _, id := range skills {
		ok, err := queryExists(ctx, tx, `SELECT EXISTS (SELECT 1 FROM skills WHERE id = ? AND type = 'human')`, id)
		if err != nil {
			return nil, fmt.Errorf("check skill: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: human skill id %d", ErrSkillNotFound, id)
		}
	}

	// Seeded students carry explicit ids, so new ids continue after the largest.
	var studentID int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO students (id, name, email, faculty, year)
		SELECT COALESCE(MAX(id), 0) + 1, ?, ?, ?, ? FROM students
		RETURNING id`,
		reg.Name, email, nullable(reg.Faculty), nullable(reg.Year)).Scan(&studentID)
	if err != nil {
		return nil, fmt.Errorf("insert student: %w", err)
	}

	for _, id := range courses {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO student_courses (student_id, course_id) VALUES (?, ?)`, studentID, id); err != nil {
			return nil, fmt.Errorf("insert completed course %d: %w", id, err)
		}
	}
	for _, id := range skills {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO student_human_skills (student_id, skill_id) VALUES (?, ?)`, studentID, id); err != nil {
			return nil, fmt.Errorf("insert human skill %d: %w", id, err)
		}
	}

	if _, err := createAccount(ctx, tx, &Account{
		Email:        email,
		PasswordHash: reg.PasswordHash,
		Role:         RoleStudent,
		StudentID:    &studentID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit registration: %w", err)
	}

	student := &recommend.Student{ID: studentID, Name: reg.Name, Email: email}
	if reg.Faculty != nil {
		student.Faculty = *reg.Faculty
	}
	if reg.Year != nil {
		student.Year = *reg.Year
	}
	return student, nil
}

// uniqueIDs drops repeated ids, keeping first occurrences in order.
func uniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
