// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package recommend

import (
	"context"
	"fmt"
)

// DataProvider defines the read-only queries the engine needs.
// This is typically implemented by the database layer.
//
// Lookups of a single entity return (nil, nil) when it does not exist.
// Collection queries return empty results rather than errors when there
// is no data.
type DataProvider interface {
	// GetStudent returns the student profile.
	GetStudent(ctx context.Context, studentID int) (*Student, error)

	// GetCareerGoal returns the goal with its required skill IDs.
	GetCareerGoal(ctx context.Context, goalID int) (*CareerGoal, error)

	// GetCourses returns all courses ordered by ID.
	GetCourses(ctx context.Context) ([]Course, error)

	// GetSkills returns all skills.
	GetSkills(ctx context.Context) ([]Skill, error)

	// GetCourseClusters returns course ID -> cluster IDs.
	GetCourseClusters(ctx context.Context) (map[int][]int, error)

	// GetCourseSkills returns every course-skill association.
	GetCourseSkills(ctx context.Context) ([]CourseSkill, error)

	// GetReviewStats returns per-course review aggregates and the global
	// mean review score, which is nil when there are no reviews at all.
	GetReviewStats(ctx context.Context) (map[int]ReviewAggregate, *float64, error)

	// GetPrerequisites returns course ID -> required course IDs.
	GetPrerequisites(ctx context.Context) (map[int][]int, error)

	// GetCompletedCourses returns the IDs of courses the student completed.
	GetCompletedCourses(ctx context.Context, studentID int) ([]int, error)

	// GetStudentHumanSkills returns the IDs of human skills the student holds.
	GetStudentHumanSkills(ctx context.Context, studentID int) ([]int, error)
}

// Snapshot is a consistent, read-only view of everything one
// recommendation needs. It must not be modified after it is built.
type Snapshot struct {
	Student       *Student
	Goal          *CareerGoal
	Courses       []Course
	Skills        []Skill
	Clusters      map[int][]int
	CourseSkills  []CourseSkill
	Reviews       map[int]ReviewAggregate
	GlobalMean    *float64
	Prerequisites map[int][]int
	Completed     []int
	HumanSkills   []int
}

// LoadSnapshot fetches a snapshot for one student and career goal.
// It fails with ErrStudentNotFound or ErrCareerGoalNotFound when either
// does not exist.
//
//nolint:gocyclo // sequential queries each need their own error wrap
func LoadSnapshot(ctx context.Context, dp DataProvider, studentID, goalID int) (*Snapshot, error) {
	if dp == nil {
		return nil, ErrNoDataProvider
	}

	student, err := dp.GetStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load student: %w", err)
	}
	if student == nil {
		return nil, fmt.Errorf("%w: id %d", ErrStudentNotFound, studentID)
	}

	goal, err := dp.GetCareerGoal(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("load career goal: %w", err)
	}
	if goal == nil {
		return nil, fmt.Errorf("%w: id %d", ErrCareerGoalNotFound, goalID)
	}

	snap := &Snapshot{Student: student, Goal: goal}

	if snap.Courses, err = dp.GetCourses(ctx); err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}
	if snap.Skills, err = dp.GetSkills(ctx); err != nil {
		return nil, fmt.Errorf("load skills: %w", err)
	}
	if snap.Clusters, err = dp.GetCourseClusters(ctx); err != nil {
		return nil, fmt.Errorf("load course clusters: %w", err)
	}
	if snap.CourseSkills, err = dp.GetCourseSkills(ctx); err != nil {
		return nil, fmt.Errorf("load course skills: %w", err)
	}
	if snap.Reviews, snap.GlobalMean, err = dp.GetReviewStats(ctx); err != nil {
		return nil, fmt.Errorf("load review stats: %w", err)
	}
	if snap.Prerequisites, err = dp.GetPrerequisites(ctx); err != nil {
		return nil, fmt.Errorf("load prerequisites: %w", err)
	}
	if snap.Completed, err = dp.GetCompletedCourses(ctx, studentID); err != nil {
		return nil, fmt.Errorf("load completed courses: %w", err)
	}
	if snap.HumanSkills, err = dp.GetStudentHumanSkills(ctx, studentID); err != nil {
		return nil, fmt.Errorf("load student human skills: %w", err)
	}

	return snap, nil
}

// snapshotIndex holds lookup structures derived from a Snapshot.
type snapshotIndex struct {
	courseNames map[int]string
	skillNames  map[int]string
	techSkills  map[int]IDSet
	relevance   RelevanceMap
	completed   IDSet
	held        IDSet
}

func newSnapshotIndex(snap *Snapshot) *snapshotIndex {
	idx := &snapshotIndex{
		courseNames: make(map[int]string, len(snap.Courses)),
		skillNames:  make(map[int]string, len(snap.Skills)),
		completed:   NewIDSet(snap.Completed...),
		held:        NewIDSet(snap.HumanSkills...),
	}
	for _, c := range snap.Courses {
		idx.courseNames[c.ID] = c.Name
	}
	for _, s := range snap.Skills {
		idx.skillNames[s.ID] = s.Name
	}
	idx.techSkills = TechSkillSets(snap.CourseSkills, snap.Skills)
	idx.relevance = NewRelevanceMap(snap.CourseSkills)
	return idx
}

// RelevanceMap maps course ID -> skill ID -> relevance in [0, 1].
type RelevanceMap map[int]map[int]float64

// NewRelevanceMap builds a relevance lookup. Unscored associations count as 0.
func NewRelevanceMap(rows []CourseSkill) RelevanceMap {
	m := make(RelevanceMap)
	for _, row := range rows {
		skills, ok := m[row.CourseID]
		if !ok {
			skills = make(map[int]float64)
			m[row.CourseID] = skills
		}
		var rel float64
		if row.Relevance != nil {
			rel = *row.Relevance
		}
		skills[row.SkillID] = rel
	}
	return m
}

// Get returns the relevance of skillID for courseID, or 0 if absent.
func (m RelevanceMap) Get(courseID, skillID int) float64 {
	return m[courseID][skillID]
}

// TechSkillSets returns course ID -> technical skill IDs, counting every
// association with a technical skill regardless of its relevance.
func TechSkillSets(rows []CourseSkill, skills []Skill) map[int]IDSet {
	technical := make(IDSet)
	for _, s := range skills {
		if s.Kind == SkillTechnical {
			technical[s.ID] = struct{}{}
		}
	}

	m := make(map[int]IDSet)
	for _, row := range rows {
		if !technical.Has(row.SkillID) {
			continue
		}
		set, ok := m[row.CourseID]
		if !ok {
			set = make(IDSet)
			m[row.CourseID] = set
		}
		set[row.SkillID] = struct{}{}
	}
	return m
}

// uniqueIDs returns ids without duplicates, keeping first occurrences.
func uniqueIDs(ids []int) []int {
	seen := make(IDSet, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if seen.Has(id) {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
