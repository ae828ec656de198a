// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package models

import "time"

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=128"`
}

// LoginResponse carries an issued token.
type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
	Role      string    `json:"role"`
	StudentID *int      `json:"student_id,omitempty"`
}

// RegisterRequest is the body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Name               string  `json:"name" validate:"required,max=200"`
	Email              string  `json:"email" validate:"required,email,max=254"`
	Password           string  `json:"password" validate:"required,min=8,max=128"`
	Faculty            *string `json:"faculty" validate:"omitempty,max=200"`
	Year               *int    `json:"year" validate:"omitempty,min=1,max=10"`
	CompletedCourseIDs []int   `json:"completed_course_ids" validate:"omitempty,max=500,dive,gt=0"`
	HumanSkillIDs      []int   `json:"human_skill_ids" validate:"omitempty,max=100,dive,gt=0"`
}

// CreateReviewRequest is the body of POST /api/v1/reviews. The student is
// taken from the caller's token.
type CreateReviewRequest struct {
	CourseID                int     `json:"course_id" validate:"required,gt=0"`
	LanguagesLearned        *string `json:"languages_learned" validate:"omitempty,max=2000"`
	CourseOutputs           *string `json:"course_outputs" validate:"omitempty,max=2000"`
	IndustryRelevanceText   *string `json:"industry_relevance_text" validate:"omitempty,max=2000"`
	InstructorFeedback      *string `json:"instructor_feedback" validate:"omitempty,max=2000"`
	UsefulLearningText      *string `json:"useful_learning_text" validate:"omitempty,max=2000"`
	IndustryRelevanceRating int     `json:"industry_relevance_rating" validate:"rating"`
	InstructorRating        int     `json:"instructor_rating" validate:"rating"`
	UsefulLearningRating    int     `json:"useful_learning_rating" validate:"rating"`
}

// ListReviewsRequest holds the pagination query of GET /api/v1/reviews.
type ListReviewsRequest struct {
	Skip  int `json:"skip" validate:"min=0"`
	Limit int `json:"limit" validate:"min=1,max=1000"`
}

// RecommendationQuery holds the query of the recommendations endpoint.
type RecommendationQuery struct {
	CareerGoalID int `json:"career_goal_id" validate:"required,gt=0"`
	K            int `json:"k" validate:"min=0"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version,omitempty"`
	Database      string  `json:"database,omitempty"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}
