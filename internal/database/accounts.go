// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Account roles.
const (
	RoleStudent = "student"
	RoleAdvisor = "advisor"
)

// Account is a login identity. StudentID is set for student accounts only.
type Account struct {
	ID           int
	Email        string
	PasswordHash string
	Role         string
	StudentID    *int
}

// GetAccountByEmail returns the account with the given email (case-insensitive),
// or nil when none exists.
func (db *DB) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	var a Account
	var studentID sql.NullInt64
	err := db.conn.QueryRowContext(ctx, `
		SELECT id, email, password_hash, role, student_id
		FROM accounts WHERE lower(email) = ?`, normalizeEmail(email)).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &studentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query account: %w", err)
	}
	if studentID.Valid {
		id := int(studentID.Int64)
		a.StudentID = &id
	}
	return &a, nil
}

// createAccount validates a and inserts it through q.
func createAccount(ctx context.Context, q querier, a *Account) (int, error) {
	if a.Role != RoleStudent && a.Role != RoleAdvisor {
		return 0, fmt.Errorf("invalid role %q", a.Role)
	}
	if a.Role == RoleStudent && a.StudentID == nil {
		return 0, fmt.Errorf("student account requires a student id")
	}

	email := normalizeEmail(a.Email)
	taken, err := queryExists(ctx, q, `SELECT EXISTS (SELECT 1 FROM accounts WHERE lower(email) = ?)`, email)
	if err != nil {
		return 0, fmt.Errorf("check account: %w", err)
	}
	if taken {
		return 0, fmt.Errorf("%w: %s", ErrAccountExists, email)
	}

	var id int
	err = q.QueryRowContext(ctx, `
		INSERT INTO accounts (email, password_hash, role, student_id)
		VALUES (?, ?, ?, ?) RETURNING id`,
		email, a.PasswordHash, a.Role, nullable(a.StudentID)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert account: %w", err)
	}
	return id, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
