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
	"time"

	"github.com/tomtom215/coursepilot/internal/metrics"
	"github.com/tomtom215/coursepilot/internal/recommend"
)

var _ recommend.DataProvider = (*DB)(nil)

// observe records a snapshot query's latency and failure.
//
//	defer db.observe("courses", time.Now(), &err)
func (db *DB) observe(query string, start time.Time, errp *error) {
	metrics.RecordSnapshotQuery(query, time.Since(start), *errp)
}

// GetStudent returns the student profile, or nil when it does not exist.
func (db *DB) GetStudent(ctx context.Context, studentID int) (_ *recommend.Student, err error) {
	defer db.observe("student", time.Now(), &err)

	var s recommend.Student
	err = db.conn.QueryRowContext(ctx, `
		SELECT id, name, email, COALESCE(faculty, ''), COALESCE(year, 0)
		FROM students WHERE id = ?`, studentID).
		Scan(&s.ID, &s.Name, &s.Email, &s.Faculty, &s.Year)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query student %d: %w", studentID, err)
	}
	return &s, nil
}

// GetCareerGoal returns the goal with its required skills in their stored order,
// or nil when it does not exist.
func (db *DB) GetCareerGoal(ctx context.Context, goalID int) (_ *recommend.CareerGoal, err error) {
	defer db.observe("career_goal", time.Now(), &err)

	goal := recommend.CareerGoal{ID: goalID}
	err = db.conn.QueryRowContext(ctx, `SELECT name FROM career_goals WHERE id = ?`, goalID).Scan(&goal.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query career goal %d: %w", goalID, err)
	}

	goal.TechnicalSkillIDs, err = db.queryIDs(ctx, `
		SELECT skill_id FROM career_goal_technical_skills
		WHERE career_goal_id = ? ORDER BY sort_order, skill_id`, goalID)
	if err != nil {
		return nil, fmt.Errorf("query goal technical skills: %w", err)
	}
	goal.HumanSkillIDs, err = db.queryIDs(ctx, `
		SELECT skill_id FROM career_goal_human_skills
		WHERE career_goal_id = ? ORDER BY sort_order, skill_id`, goalID)
	if err != nil {
		return nil, fmt.Errorf("query goal human skills: %w", err)
	}
	return &goal, nil
}

// GetCourses returns all courses ordered by ID.
func (db *DB) GetCourses(ctx context.Context) (_ []recommend.Course, err error) {
	defer db.observe("courses", time.Now(), &err)

	rows, err := db.conn.QueryContext(ctx, `SELECT id, name, COALESCE(description, '') FROM courses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	var courses []recommend.Course
	for rows.Next() {
		var c recommend.Course
		if err = rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, c)
	}
	err = rows.Err()
	return courses, err
}

// GetSkills returns all skills ordered by ID.
func (db *DB) GetSkills(ctx context.Context) (_ []recommend.Skill, err error) {
	defer db.observe("skills", time.Now(), &err)

	rows, err := db.conn.QueryContext(ctx, `SELECT id, name, type FROM skills ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}
	defer rows.Close()

	var skills []recommend.Skill
	for rows.Next() {
		var s recommend.Skill
		var kind string
		if err = rows.Scan(&s.ID, &s.Name, &kind); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		s.Kind = recommend.SkillKind(kind)
		skills = append(skills, s)
	}
	err = rows.Err()
	return skills, err
}

// GetCourseClusters returns course ID -> cluster IDs.
func (db *DB) GetCourseClusters(ctx context.Context) (_ map[int][]int, err error) {
	defer db.observe("course_clusters", time.Now(), &err)

	m, err := db.queryIDPairs(ctx, `SELECT course_id, cluster_id FROM course_clusters ORDER BY course_id, cluster_id`)
	if err != nil {
		return nil, fmt.Errorf("query course clusters: %w", err)
	}
	return m, nil
}

// GetCourseSkills returns every course-skill link. Relevance is nil where unscored.
func (db *DB) GetCourseSkills(ctx context.Context) (_ []recommend.CourseSkill, err error) {
	defer db.observe("course_skills", time.Now(), &err)

	rows, err := db.conn.QueryContext(ctx, `
		SELECT course_id, skill_id, relevance_score
		FROM course_skills ORDER BY course_id, skill_id`)
	if err != nil {
		return nil, fmt.Errorf("query course skills: %w", err)
	}
	defer rows.Close()

	var out []recommend.CourseSkill
	for rows.Next() {
		var cs recommend.CourseSkill
		var rel sql.NullFloat64
		if err = rows.Scan(&cs.CourseID, &cs.SkillID, &rel); err != nil {
			return nil, fmt.Errorf("scan course skill: %w", err)
		}
		if rel.Valid {
			v := rel.Float64
			cs.Relevance = &v
		}
		out = append(out, cs)
	}
	err = rows.Err()
	return out, err
}

// GetReviewStats returns per-course review count and mean final score, plus
// the mean over all reviews (nil when there are none).
func (db *DB) GetReviewStats(ctx context.Context) (_ map[int]recommend.ReviewAggregate, _ *float64, err error) {
	defer db.observe("review_stats", time.Now(), &err)

	rows, err := db.conn.QueryContext(ctx, `
		SELECT course_id, COUNT(*), AVG(final_score)
		FROM course_reviews GROUP BY course_id`)
	if err != nil {
		return nil, nil, fmt.Errorf("query review stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[int]recommend.ReviewAggregate)
	for rows.Next() {
		var courseID int
		var agg recommend.ReviewAggregate
		if err = rows.Scan(&courseID, &agg.Count, &agg.Mean); err != nil {
			return nil, nil, fmt.Errorf("scan review stats: %w", err)
		}
		stats[courseID] = agg
	}
	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate review stats: %w", err)
	}

	var global sql.NullFloat64
	if err = db.conn.QueryRowContext(ctx, `SELECT AVG(final_score) FROM course_reviews`).Scan(&global); err != nil {
		return nil, nil, fmt.Errorf("query global review mean: %w", err)
	}
	if !global.Valid {
		return stats, nil, nil
	}
	mean := global.Float64
	return stats, &mean, nil
}

// GetPrerequisites returns course ID -> required course IDs.
func (db *DB) GetPrerequisites(ctx context.Context) (_ map[int][]int, err error) {
	defer db.observe("prerequisites", time.Now(), &err)

	m, err := db.queryIDPairs(ctx, `
		SELECT course_id, required_course_id FROM course_prerequisites
		ORDER BY course_id, required_course_id`)
	if err != nil {
		return nil, fmt.Errorf("query prerequisites: %w", err)
	}
	return m, nil
}

// GetCompletedCourses returns the IDs of courses the student completed.
func (db *DB) GetCompletedCourses(ctx context.Context, studentID int) (_ []int, err error) {
	defer db.observe("completed_courses", time.Now(), &err)

	ids, err := db.queryIDs(ctx, `
		SELECT course_id FROM student_courses
		WHERE student_id = ? AND status = 'completed' ORDER BY course_id`, studentID)
	if err != nil {
		return nil, fmt.Errorf("query completed courses: %w", err)
	}
	return ids, nil
}

// GetStudentHumanSkills returns the IDs of human skills the student holds.
func (db *DB) GetStudentHumanSkills(ctx context.Context, studentID int) (_ []int, err error) {
	defer db.observe("student_human_skills", time.Now(), &err)

	ids, err := db.queryIDs(ctx, `
		SELECT skill_id FROM student_human_skills
		WHERE student_id = ? ORDER BY skill_id`, studentID)
	if err != nil {
		return nil, fmt.Errorf("query student human skills: %w", err)
	}
	return ids, nil
}

// queryIDs runs a single-column integer query.
func (db *DB) queryIDs(ctx context.Context, query string, args ...any) ([]int, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// queryIDPairs runs a two-column integer query and groups the second column by the first.
func (db *DB) queryIDPairs(ctx context.Context, query string) (map[int][]int, error) {
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m := make(map[int][]int)
	for rows.Next() {
		var key, val int
		if err := rows.Scan(&key, &val); err != nil {
			return nil, err
		}
		m[key] = append(m[key], val)
	}
	return m, rows.Err()
}
