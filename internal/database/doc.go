// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

/*
Package database provides the DuckDB-backed curriculum store.

DB implements recommend.DataProvider, so the recommendation engine reads
its snapshot straight from here. The package also owns review persistence,
login accounts, the course-skill links written by the tagging tool, and an
optional demo curriculum.

# Schema

The schema is created by versioned migrations recorded in schema_migrations:

  - skills, courses, clusters, course_clusters
  - course_skills (relevance_score may be NULL until scored)
  - course_prerequisites
  - career_goals with career_goal_technical_skills and career_goal_human_skills
    (a sort_order column keeps the goal's required order)
  - students, student_courses (status 'completed' feeds affinity),
    student_human_skills
  - accounts (bcrypt password hash, role student or advisor)
  - course_reviews (three 1-5 ratings and the derived 1-10 final_score)

# Usage

	db, err := database.New(&cfg.Database)
	if err != nil {
	    return err
	}
	defer db.Close()

	engine.SetDataProvider(db)

Every snapshot query is timed into snapshot_query_duration_seconds.
*/
package database
