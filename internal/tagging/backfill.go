// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package tagging

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/coursepilot/internal/recommend"
)

// Store is the catalogue access the backfill needs. *database.DB implements it.
type Store interface {
	GetCourses(ctx context.Context) ([]recommend.Course, error)
	GetSkills(ctx context.Context) ([]recommend.Skill, error)
	GetCourseSkills(ctx context.Context) ([]recommend.CourseSkill, error)

	// LinkCourseSkill adds an unscored link and reports whether it was new.
	LinkCourseSkill(ctx context.Context, courseID, skillID int) (bool, error)
}

// CourseReport describes what the backfill did for one course.
type CourseReport struct {
	CourseID int      `json:"course_id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Added    []string `json:"added"`
}

// Stats summarizes a backfill run.
type Stats struct {
	DryRun        bool           `json:"dry_run"`
	Courses       int            `json:"courses"`
	LinksAdded    int            `json:"links_added"`
	UnknownSkills []string       `json:"unknown_skills"`
	Reports       []CourseReport `json:"reports"`
	StartTime     time.Time      `json:"start_time"`
	EndTime       time.Time      `json:"end_time"`
}

// Duration returns how long the run took.
func (s *Stats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

// Backfiller links every course to its categorized skills.
type Backfiller struct {
	store  Store
	dryRun bool
	logger zerolog.Logger
}

// NewBackfiller creates a backfiller. In dry-run mode nothing is written and
// LinksAdded counts the links that would have been added.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBackfiller(store Store, dryRun bool, logger zerolog.Logger) *Backfiller {
	return &Backfiller{
		store:  store,
		dryRun: dryRun,
		logger: logger.With().Str("component", "tagging").Logger(),
	}
}

// Backfill runs Categorize over all courses and adds the missing links.
// Existing links are never modified. Suggested skill names with no matching
// skill row are logged and skipped.
func (b *Backfiller) Backfill(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		DryRun:        b.dryRun,
		UnknownSkills: []string{},
		Reports:       []CourseReport{},
		StartTime:     time.Now(),
	}
	defer func() { stats.EndTime = time.Now() }()

	courses, err := b.store.GetCourses(ctx)
	if err != nil {
		return stats, fmt.Errorf("load courses: %w", err)
	}
	skills, err := b.store.GetSkills(ctx)
	if err != nil {
		return stats, fmt.Errorf("load skills: %w", err)
	}
	links, err := b.store.GetCourseSkills(ctx)
	if err != nil {
		return stats, fmt.Errorf("load course skills: %w", err)
	}

	skillIDs := make(map[string]int, len(skills))
	for _, s := range skills {
		skillIDs[s.Name] = s.ID
	}
	existing := make(map[[2]int]struct{}, len(links))
	for _, l := range links {
		existing[[2]int{l.CourseID, l.SkillID}] = struct{}{}
	}
	unknown := make(map[string]struct{})

	b.logger.Info().
		Int("courses", len(courses)).
		Int("skills", len(skills)).
		Bool("dry_run", b.dryRun).
		Msg("Starting course-skill backfill")

	for _, c := range courses {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		result := Analyze(c.Name, c.Description)
		report := CourseReport{CourseID: c.ID, Name: c.Name, Category: result.Category, Added: []string{}}

		for _, name := range append(result.Technical, result.Human...) {
			skillID, ok := skillIDs[name]
			if !ok {
				if _, seen := unknown[name]; !seen {
					b.logger.Warn().Str("skill", name).Int("course_id", c.ID).Msg("Suggested skill not found, skipping")
				}
				unknown[name] = struct{}{}
				continue
			}

			added, err := b.link(ctx, c.ID, skillID, existing)
			if err != nil {
				return stats, fmt.Errorf("link course %d to %s: %w", c.ID, name, err)
			}
			if added {
				report.Added = append(report.Added, name)
			}
		}

		stats.Courses++
		stats.LinksAdded += len(report.Added)
		stats.Reports = append(stats.Reports, report)

		b.logger.Debug().
			Int("course_id", c.ID).
			Str("category", string(result.Category)).
			Int("added", len(report.Added)).
			Msg("Course tagged")
	}

	for name := range unknown {
		stats.UnknownSkills = append(stats.UnknownSkills, name)
	}
	sort.Strings(stats.UnknownSkills)

	b.logger.Info().
		Int("courses", stats.Courses).
		Int("links_added", stats.LinksAdded).
		Strs("unknown_skills", stats.UnknownSkills).
		Dur("duration", time.Since(stats.StartTime)).
		Msg("Backfill completed")

	return stats, nil
}

func (b *Backfiller) link(ctx context.Context, courseID, skillID int, existing map[[2]int]struct{}) (bool, error) {
	key := [2]int{courseID, skillID}
	if _, ok := existing[key]; ok {
		return false, nil
	}
	existing[key] = struct{}{}
	if b.dryRun {
		return true, nil
	}
	return b.store.LinkCourseSkill(ctx, courseID, skillID)
}
