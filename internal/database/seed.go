// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomtom215/coursepilot/internal/recommend"
)

// Demo curriculum. Course IDs follow the university catalogue numbering.
var (
	seedSkills = [][]any{
		{1, "Python", "technical"},
		{2, "JavaScript", "technical"},
		{3, "SQL", "technical"},
		{4, "React", "technical"},
		{5, "Node.js", "technical"},
		{6, "TensorFlow", "technical"},
		{7, "C++", "technical"},
		{8, "AWS", "technical"},
		{9, "Docker", "technical"},
		{10, "Git", "technical"},
		{11, "Teamwork", "human"},
		{12, "Communication", "human"},
		{13, "Self-learner", "human"},
		{14, "Problem-solving", "human"},
		{15, "Adaptability", "human"},
		{16, "Leadership", "human"},
	}

	seedCourses = [][]any{
		{90901, "Calculus 1", "Limits, derivatives, and integrals of single-variable functions.", 6, 5.0, "Mandatory"},
		{90911, "Intro to Probability", "Axioms of probability and random variables.", 4, 3.5, "Mandatory"},
		{10016, "Intro to Computer Science", "Fundamentals of programming and problem-solving.", 6, 4.5, "Mandatory"},
		{10128, "Object Oriented Programming", "Advanced programming, inheritance, and polymorphism.", 6, 4.5, "Mandatory"},
		{10117, "Data Structures", "Linked lists, trees, and hash tables.", 6, 5.0, "Mandatory"},
		{10010, "Intro to System Programming", "C programming and memory management.", 4, 3.0, "Mandatory"},
		{10120, "Analysis of Algorithms", "Algorithm efficiency and complexity theory.", 6, 5.0, "Mandatory"},
		{10303, "Operating Systems", "Process management and file systems.", 4, 3.5, "Mandatory"},
		{10014, "Software Engineering", "Software lifecycle and design methodologies.", 5, 4.0, "Mandatory"},
		{11402, "CS Project - Part 1", "Initial phase of final development project.", 2, 4.0, "Mandatory"},
		{19101, "Intro to AI", "Basic AI concepts and search algorithms.", 3, 2.5, "Mandatory"},
		{10127, "Database Systems", "Relational databases and SQL.", 4, 3.0, "Selective"},
		{10351, "Big Data Analytics", "Large scale data processing.", 3, 2.5, "Selective"},
		{10245, "Machine Learning", "Supervised and unsupervised learning.", 4, 3.0, "Selective"},
		{10240, "Deep Learning", "Neural networks and deep architectures.", 4, 3.0, "Selective"},
		{10313, "Data Security", "Cryptography and network security.", 3, 2.5, "Selective"},
		{10227, "Cyber Security", "Defense and offensive security.", 3, 2.5, "Selective"},
		{10233, "Secure Development", "Writing exploit-free code.", 3, 2.5, "Selective"},
		{10147, "UI Characterization", "UX design and user requirements.", 5, 4.0, "Selective"},
		{10208, "User Interface Development", "Building interactive user interfaces.", 6, 4.0, "Selective"},
		{10266, "Web Platforms", "Modern web development frameworks.", 4, 3.0, "Selective"},
		{10142, "Development Tools", "Use of IDEs, Git, and build tools.", 2, 1.0, "Selective"},
	}

	seedClusters = [][]any{
		{1, "Machine Learning", "Machine learning, deep learning, and AI techniques"},
		{2, "Cyber", "Cybersecurity, network security, and secure development"},
		{3, "User Interfaces", "UI/UX design and web development"},
		{4, "Data Analysis", "Data analysis, data science, and analytics"},
		{5, "Software Development", "Software engineering and development practices"},
	}

	seedCourseClusters = [][]any{
		{19101, 1}, {10127, 1}, {10245, 1}, {10240, 1}, {10351, 1},
		{10147, 2}, {10313, 2}, {10208, 2}, {10233, 2}, {10227, 2},
		{10147, 3}, {10313, 3}, {10208, 3}, {10266, 3},
		{90911, 4}, {10127, 4}, {10351, 4},
		{10010, 5}, {10142, 5}, {10014, 5},
	}

	// course_id, skill_id, relevance (nil for unscored human-skill links)
	seedCourseSkills = [][]any{
		{90911, 1, 0.3},
		{10016, 1, 0.6}, {10016, 10, 0.4}, {10016, 14, nil},
		{10128, 7, 0.7}, {10128, 10, 0.5},
		{10117, 7, 0.6}, {10117, 1, 0.5}, {10117, 14, nil},
		{10010, 7, 0.9}, {10010, 10, 0.4},
		{10120, 1, 0.4}, {10120, 7, 0.5}, {10120, 14, nil},
		{10303, 7, 0.8}, {10303, 9, 0.3},
		{10014, 10, 0.8}, {10014, 9, 0.6}, {10014, 8, 0.3}, {10014, 11, nil}, {10014, 12, nil},
		{11402, 10, 0.7}, {11402, 9, 0.5}, {11402, 8, 0.4}, {11402, 11, nil}, {11402, 16, nil},
		{19101, 1, 0.8}, {19101, 6, 0.4}, {19101, 13, nil},
		{10127, 3, 0.95}, {10127, 1, 0.3},
		{10351, 3, 0.8}, {10351, 1, 0.7}, {10351, 8, 0.6},
		{10245, 1, 0.9}, {10245, 6, 0.7}, {10245, 13, nil},
		{10240, 1, 0.8}, {10240, 6, 0.95}, {10240, 8, 0.3},
		{10313, 1, 0.3}, {10313, 8, 0.4},
		{10227, 8, 0.6}, {10227, 9, 0.5}, {10227, 1, 0.4},
		{10233, 7, 0.5}, {10233, 10, 0.4}, {10233, 9, 0.4},
		{10147, 2, 0.4}, {10147, 4, 0.5}, {10147, 12, nil},
		{10208, 2, 0.8}, {10208, 4, 0.9},
		{10266, 2, 0.9}, {10266, 4, 0.7}, {10266, 5, 0.6},
		{10142, 10, 0.95}, {10142, 9, 0.7},
	}

	seedPrerequisites = [][]any{
		{90911, 90901},
		{10128, 10016}, {10117, 10016}, {10147, 10016}, {10266, 10016},
		{10010, 10128}, {10014, 10128}, {10233, 10128},
		{10120, 10117},
		{10303, 10010},
		{11402, 10120},
		{19101, 90911}, {19101, 10016},
		{10245, 90911}, {10245, 10117},
		{10240, 90911}, {10240, 10245},
		{10313, 90911},
		{10227, 10313},
		{10208, 10128}, {10208, 10147},
	}

	seedCareerGoals = [][]any{
		{1, "Machine Learning Engineer", "Builds and deploys learning systems"},
		{2, "Full-Stack Developer", "Ships web products end to end"},
		{3, "Security Engineer", "Hardens systems and responds to threats"},
		{4, "Data Analyst", "Turns data into decisions"},
		{5, "Engineering Manager", "Leads delivery teams"},
	}

	// career_goal_id, skill_id, sort_order
	seedGoalTechnical = [][]any{
		{1, 1, 0}, {1, 6, 1}, {1, 3, 2}, {1, 8, 3},
		{2, 2, 0}, {2, 4, 1}, {2, 5, 2}, {2, 3, 3}, {2, 9, 4},
		{3, 1, 0}, {3, 8, 1}, {3, 9, 2}, {3, 7, 3},
		{4, 3, 0}, {4, 1, 1},
	}
	seedGoalHuman = [][]any{
		{1, 13, 0}, {1, 14, 1}, {1, 12, 2},
		{2, 11, 0}, {2, 12, 1}, {2, 15, 2},
		{3, 14, 0}, {3, 13, 1},
		{4, 12, 0}, {4, 14, 1},
		{5, 16, 0},
	}

	seedStudents = [][]any{
		{1, "Ana Levi", "ana@uni.example.edu", "Computer Science", 3},
		{2, "Ben Cohen", "ben@uni.example.edu", "Computer Science", 2},
		{3, "Dana Mizrahi", "dana@uni.example.edu", "Information Systems", 1},
	}

	seedStudentCourses = [][]any{
		{1, 90901}, {1, 90911}, {1, 10016}, {1, 10128}, {1, 10117},
		{2, 10016}, {2, 10147},
	}

	seedStudentHumanSkills = [][]any{
		{1, 13}, {1, 14},
		{2, 11}, {2, 15},
	}

	// student_id, course_id, industry, instructor, useful
	seedReviews = [][5]int{
		{1, 10016, 5, 4, 5},
		{1, 10128, 4, 3, 4},
		{1, 10117, 5, 5, 5},
		{2, 10016, 3, 5, 4},
		{2, 10147, 4, 4, 3},
	}

	// email, role, student_id
	seedAccounts = [][]any{
		{"ana@uni.example.edu", RoleStudent, 1},
		{"ben@uni.example.edu", RoleStudent, 2},
		{"dana@uni.example.edu", RoleStudent, 3},
		{"advisor@uni.example.edu", RoleAdvisor, nil},
	}
)

// SeedDemoData loads the demo curriculum, students and accounts into an empty
// database. Every account gets passwordHash. It reports false without writing
// anything when courses already exist.
func (db *DB) SeedDemoData(ctx context.Context, passwordHash string) (bool, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	var existing int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&existing); err != nil {
		return false, fmt.Errorf("count courses: %w", err)
	}
	if existing > 0 {
		db.logger.Info().Int("courses", existing).Msg("Database already populated, skipping demo seed")
		return false, nil
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	batches := []struct {
		query string
		rows  [][]any
	}{
		{`INSERT INTO skills (id, name, type) VALUES (?, ?, ?)`, seedSkills},
		{`INSERT INTO courses (id, name, description, workload, credits, status) VALUES (?, ?, ?, ?, ?, ?)`, seedCourses},
		{`INSERT INTO clusters (id, name, description) VALUES (?, ?, ?)`, seedClusters},
		{`INSERT INTO course_clusters (course_id, cluster_id) VALUES (?, ?)`, seedCourseClusters},
		{`INSERT INTO course_skills (course_id, skill_id, relevance_score) VALUES (?, ?, ?)`, seedCourseSkills},
		{`INSERT INTO course_prerequisites (course_id, required_course_id) VALUES (?, ?)`, seedPrerequisites},
		{`INSERT INTO career_goals (id, name, description) VALUES (?, ?, ?)`, seedCareerGoals},
		{`INSERT INTO career_goal_technical_skills (career_goal_id, skill_id, sort_order) VALUES (?, ?, ?)`, seedGoalTechnical},
		{`INSERT INTO career_goal_human_skills (career_goal_id, skill_id, sort_order) VALUES (?, ?, ?)`, seedGoalHuman},
		{`INSERT INTO students (id, name, email, faculty, year) VALUES (?, ?, ?, ?, ?)`, seedStudents},
		{`INSERT INTO student_courses (student_id, course_id) VALUES (?, ?)`, seedStudentCourses},
		{`INSERT INTO student_human_skills (student_id, skill_id) VALUES (?, ?)`, seedStudentHumanSkills},
		{`INSERT INTO course_reviews (student_id, course_id, industry_relevance_rating, instructor_rating, useful_learning_rating, final_score) VALUES (?, ?, ?, ?, ?, ?)`, reviewSeedRows()},
		{`INSERT INTO accounts (email, password_hash, role, student_id) VALUES (?, ?, ?, ?)`, accountSeedRows(passwordHash)},
	}

	for _, b := range batches {
		if err := execBatch(ctx, tx, b.query, b.rows); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed: %w", err)
	}

	db.logger.Info().
		Int("courses", len(seedCourses)).
		Int("students", len(seedStudents)).
		Int("career_goals", len(seedCareerGoals)).
		Msg("Seeded demo curriculum")
	return true, nil
}

func execBatch(ctx context.Context, tx *sql.Tx, query string, rows [][]any) error {
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare seed statement: %w", err)
	}
	defer closeWithLog(stmt, "seed statement")

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("seed %v: %w", row, err)
		}
	}
	return nil
}

func reviewSeedRows() [][]any {
	rows := make([][]any, 0, len(seedReviews))
	for _, r := range seedReviews {
		// seed ratings are all within 1..5
		score, _ := recommend.ReviewFinalScore(r[2], r[3], r[4])
		rows = append(rows, []any{r[0], r[1], r[2], r[3], r[4], score})
	}
	return rows
}

func accountSeedRows(passwordHash string) [][]any {
	rows := make([][]any, 0, len(seedAccounts))
	for _, a := range seedAccounts {
		rows = append(rows, []any{a[0], passwordHash, a[1], a[2]})
	}
	return rows
}
