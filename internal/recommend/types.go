// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package recommend

// SkillKind partitions skills into technical and human skills.
type SkillKind string

const (
	// SkillTechnical marks a hard, course-taught skill.
	SkillTechnical SkillKind = "technical"

	// SkillHuman marks a soft skill held by students.
	SkillHuman SkillKind = "human"
)

// IsValid reports whether k is a known skill kind.
func (k SkillKind) IsValid() bool {
	return k == SkillTechnical || k == SkillHuman
}

// Course is a course in the catalogue.
type Course struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Skill is a technical or human skill.
type Skill struct {
	ID   int       `json:"id"`
	Name string    `json:"name"`
	Kind SkillKind `json:"type"`
}

// CareerGoal is a target role with required technical and human skills.
type CareerGoal struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	TechnicalSkillIDs []int  `json:"technical_skill_ids"`
	HumanSkillIDs     []int  `json:"human_skill_ids"`
}

// Student is the profile of the student requesting recommendations.
type Student struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Faculty string `json:"faculty,omitempty"`
	Year    int    `json:"year,omitempty"`
}

// CourseSkill associates a course with a skill.
// Relevance is nil when the association has not been scored yet.
type CourseSkill struct {
	CourseID  int
	SkillID   int
	Relevance *float64
}

// ReviewAggregate holds review statistics for a single course.
// Mean is on the 1-10 review scale.
type ReviewAggregate struct {
	Count int
	Mean  float64
}

// Request represents a recommendation request.
type Request struct {
	// StudentID identifies the student to recommend for.
	StudentID int `json:"student_id"`

	// CareerGoalID identifies the target career goal.
	CareerGoalID int `json:"career_goal_id"`

	// K is the number of recommendations to return.
	// Zero selects the configured default; values above the limit are clamped.
	K int `json:"k"`

	// EnforcePrereqs controls prerequisite blocking. Nil means true.
	EnforcePrereqs *bool `json:"enforce_prereqs,omitempty"`

	// RequestID is used for tracing. Generated when empty.
	RequestID string `json:"request_id,omitempty"`
}

// enforcePrereqs resolves the EnforcePrereqs default.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (r Request) enforcePrereqs() bool {
	return r.EnforcePrereqs == nil || *r.EnforcePrereqs
}

// Response is the result of a recommendation request.
type Response struct {
	SoftReadiness      float64         `json:"soft_readiness"`
	OverlapHumanSkills []SkillRef      `json:"overlap_human_skills"`
	MissingHumanSkills []SkillRef      `json:"missing_human_skills"`
	Recommendations    []ScoredCourse  `json:"recommendations"`
	BlockedReason      *string         `json:"blocked_reason"`
	BlockedCourses     []BlockedCourse `json:"blocked_courses"`
}

// IsBlocked reports whether the readiness gate rejected the request.
func (r *Response) IsBlocked() bool {
	return r.BlockedReason != nil
}

// SkillRef names a skill in explanations.
type SkillRef struct {
	SkillID int    `json:"skill_id"`
	Name    string `json:"name"`
}

// SkillMatch is a required technical skill the course covers.
type SkillMatch struct {
	SkillID        int     `json:"skill_id"`
	Name           string  `json:"name"`
	RelevanceScore float64 `json:"relevance_score"`
}

// Breakdown holds the sub-scores that make up a final score.
type Breakdown struct {
	SRole     float64 `json:"s_role"`
	SAffinity float64 `json:"s_affinity"`
	QSmoothed float64 `json:"q_smoothed"`
}

// ScoredCourse is a candidate course with its score and explanation.
type ScoredCourse struct {
	CourseID               int                  `json:"course_id"`
	Name                   string               `json:"name"`
	FinalScore             float64              `json:"final_score"`
	Breakdown              Breakdown            `json:"breakdown"`
	AvgScoreRaw            *float64             `json:"avg_score_raw"`
	ReviewCount            int                  `json:"review_count"`
	MatchedTechnicalSkills []SkillMatch         `json:"matched_technical_skills"`
	MissingTechnicalSkills []int                `json:"missing_technical_skills"`
	AffinityExplanation    *AffinityExplanation `json:"affinity_explanation"`
}

// AffinityExplanation lists the completed courses behind an affinity score.
type AffinityExplanation struct {
	TopContributingCourses []AffinityDetail `json:"top_contributing_courses"`
}

// AffinityDetail is the similarity between a candidate and one completed course.
type AffinityDetail struct {
	CompletedCourseID   int     `json:"completed_course_id"`
	CompletedCourseName string  `json:"completed_course_name"`
	SimilarityScore     float64 `json:"similarity_score"`
	ClusterMatched      bool    `json:"cluster_matched"`
	TechOverlapScore    float64 `json:"tech_overlap_score"`
}

// BlockedCourse is a course withheld because of unmet prerequisites.
type BlockedCourse struct {
	CourseID       int    `json:"course_id"`
	CourseName     string `json:"course_name"`
	MissingPrereqs []int  `json:"missing_prereqs"`
}

// SimilarityResult is the outcome of comparing two courses.
type SimilarityResult struct {
	Score          float64
	ClusterMatched bool
	TechOverlap    float64
}

// ReadinessResult is the outcome of the human-skill readiness gate.
type ReadinessResult struct {
	Ratio         float64
	Overlap       []SkillRef
	Missing       []SkillRef
	BlockedReason *string
}

// Blocked reports whether the gate blocks all recommendations.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (r ReadinessResult) Blocked() bool {
	return r.BlockedReason != nil
}

// IDSet is a set of integer identifiers.
type IDSet map[int]struct{}

// NewIDSet builds a set from ids.
func NewIDSet(ids ...int) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set.
func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Stats holds engine counters.
type Stats struct {
	RequestCount int64  `json:"request_count"`
	BlockedCount int64  `json:"blocked_count"`
	NotFound     int64  `json:"not_found_count"`
	ErrorCount   int64  `json:"error_count"`
	BreakerState string `json:"breaker_state"`
}
