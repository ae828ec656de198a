// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/coursepilot/internal/recommend"
)

// Review is a stored course review.
type Review struct {
	ID                      int       `json:"id"`
	StudentID               int       `json:"student_id"`
	CourseID                int       `json:"course_id"`
	LanguagesLearned        *string   `json:"languages_learned"`
	CourseOutputs           *string   `json:"course_outputs"`
	IndustryRelevanceText   *string   `json:"industry_relevance_text"`
	InstructorFeedback      *string   `json:"instructor_feedback"`
	UsefulLearningText      *string   `json:"useful_learning_text"`
	IndustryRelevanceRating int       `json:"industry_relevance_rating"`
	InstructorRating        int       `json:"instructor_rating"`
	UsefulLearningRating    int       `json:"useful_learning_rating"`
	FinalScore              float64   `json:"final_score"`
	CreatedAt               time.Time `json:"created_at"`
}

// ReviewInput is a review to be stored. FinalScore is derived from the ratings.
type ReviewInput struct {
	StudentID               int
	CourseID                int
	LanguagesLearned        *string
	CourseOutputs           *string
	IndustryRelevanceText   *string
	InstructorFeedback      *string
	UsefulLearningText      *string
	IndustryRelevanceRating int
	InstructorRating        int
	UsefulLearningRating    int
}

const reviewColumns = `id, student_id, course_id, languages_learned, course_outputs,
	industry_relevance_text, instructor_feedback, useful_learning_text,
	industry_relevance_rating, instructor_rating, useful_learning_rating,
	final_score, created_at`

// CreateReview validates the ratings, computes the final score and stores the review.
// Returns ErrCourseNotFound or recommend.ErrStudentNotFound for unknown references.
func (db *DB) CreateReview(ctx context.Context, in *ReviewInput) (*Review, error) {
	finalScore, err := recommend.ReviewFinalScore(in.IndustryRelevanceRating, in.InstructorRating, in.UsefulLearningRating)
	if err != nil {
		return nil, err
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	if err := db.requireCourse(ctx, in.CourseID); err != nil {
		return nil, err
	}
	if err := db.requireStudent(ctx, in.StudentID); err != nil {
		return nil, err
	}

	row := db.conn.QueryRowContext(ctx, `
		INSERT INTO course_reviews (
			student_id, course_id, languages_learned, course_outputs,
			industry_relevance_text, instructor_feedback, useful_learning_text,
			industry_relevance_rating, instructor_rating, useful_learning_rating,
			final_score
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+reviewColumns,
		in.StudentID, in.CourseID, nullable(in.LanguagesLearned), nullable(in.CourseOutputs),
		nullable(in.IndustryRelevanceText), nullable(in.InstructorFeedback), nullable(in.UsefulLearningText),
		in.IndustryRelevanceRating, in.InstructorRating, in.UsefulLearningRating,
		finalScore)

	review, err := scanReview(row)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	return review, nil
}

// ListReviews returns reviews ordered by ID with offset pagination.
func (db *DB) ListReviews(ctx context.Context, skip, limit int) ([]Review, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	return db.queryReviews(ctx, `SELECT `+reviewColumns+` FROM course_reviews ORDER BY id LIMIT ? OFFSET ?`, limit, skip)
}

// ListReviewsByCourse returns every review of a course.
func (db *DB) ListReviewsByCourse(ctx context.Context, courseID int) ([]Review, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	if err := db.requireCourse(ctx, courseID); err != nil {
		return nil, err
	}
	return db.queryReviews(ctx, `SELECT `+reviewColumns+` FROM course_reviews WHERE course_id = ? ORDER BY id`, courseID)
}

// ListReviewsByStudent returns every review written by a student.
func (db *DB) ListReviewsByStudent(ctx context.Context, studentID int) ([]Review, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	if err := db.requireStudent(ctx, studentID); err != nil {
		return nil, err
	}
	return db.queryReviews(ctx, `SELECT `+reviewColumns+` FROM course_reviews WHERE student_id = ? ORDER BY id`, studentID)
}

func (db *DB) queryReviews(ctx context.Context, query string, args ...any) ([]Review, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	reviews := []Review{}
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, *r)
	}
	return reviews, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(s rowScanner) (*Review, error) {
	var r Review
	var lang, outputs, industry, instructor, useful sql.NullString
	err := s.Scan(&r.ID, &r.StudentID, &r.CourseID, &lang, &outputs,
		&industry, &instructor, &useful,
		&r.IndustryRelevanceRating, &r.InstructorRating, &r.UsefulLearningRating,
		&r.FinalScore, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	r.LanguagesLearned = nullString(lang)
	r.CourseOutputs = nullString(outputs)
	r.IndustryRelevanceText = nullString(industry)
	r.InstructorFeedback = nullString(instructor)
	r.UsefulLearningText = nullString(useful)
	return &r, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// nullable turns a nil pointer into SQL NULL.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func (db *DB) requireCourse(ctx context.Context, courseID int) error {
	ok, err := db.exists(ctx, `SELECT EXISTS (SELECT 1 FROM courses WHERE id = ?)`, courseID)
	if err != nil {
		return fmt.Errorf("check course: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: id %d", ErrCourseNotFound, courseID)
	}
	return nil
}

func (db *DB) requireStudent(ctx context.Context, studentID int) error {
	ok, err := db.exists(ctx, `SELECT EXISTS (SELECT 1 FROM students WHERE id = ?)`, studentID)
	if err != nil {
		return fmt.Errorf("check student: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: id %d", recommend.ErrStudentNotFound, studentID)
	}
	return nil
}

func (db *DB) exists(ctx context.Context, query string, args ...any) (bool, error) {
	return queryExists(ctx, db.conn, query, args...)
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func queryExists(ctx context.Context, q querier, query string, args ...any) (bool, error) {
	var ok bool
	err := q.QueryRowContext(ctx, query, args...).Scan(&ok)
	return ok, err
}
