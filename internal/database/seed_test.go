// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package database

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/coursepilot/internal/recommend"
)

func TestSeedDemoData_Idempotent(t *testing.T) {
	db := setupSeededDB(t)

	seeded, err := db.SeedDemoData(context.Background(), "other-hash")
	if err != nil {
		t.Fatalf("second SeedDemoData() error = %v", err)
	}
	if seeded {
		t.Error("second SeedDemoData() = true, want false")
	}

	courses, err := db.GetCourses(context.Background())
	if err != nil {
		t.Fatalf("GetCourses() error = %v", err)
	}
	if len(courses) != len(seedCourses) {
		t.Errorf("GetCourses() returned %d after re-seed, want %d", len(courses), len(seedCourses))
	}
}

func TestSeedData_Consistency(t *testing.T) {
	t.Parallel()

	courseIDs := make(map[int]bool)
	for _, c := range seedCourses {
		courseIDs[c[0].(int)] = true
	}
	skillIDs := make(map[int]bool)
	for _, s := range seedSkills {
		skillIDs[s[0].(int)] = true
	}

	for _, p := range seedPrerequisites {
		if !courseIDs[p[0].(int)] || !courseIDs[p[1].(int)] {
			t.Errorf("prerequisite %v references an unknown course", p)
		}
	}
	for _, cs := range seedCourseSkills {
		if !courseIDs[cs[0].(int)] || !skillIDs[cs[1].(int)] {
			t.Errorf("course skill %v references unknown rows", cs)
		}
	}
	for _, r := range seedReviews {
		if _, err := recommend.ReviewFinalScore(r[2], r[3], r[4]); err != nil {
			t.Errorf("seed review %v: %v", r, err)
		}
	}
}

// The demo curriculum run end to end through the engine.
func TestSeededDB_RecommendEndToEnd(t *testing.T) {
	db := setupSeededDB(t)

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	engine.SetDataProvider(db)
	ctx := context.Background()

	t.Run("ready student", func(t *testing.T) {
		resp, err := engine.Recommend(ctx, recommend.Request{StudentID: 1, CareerGoalID: 1, K: 5})
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if resp.IsBlocked() {
			t.Fatalf("Recommend() blocked: %s", *resp.BlockedReason)
		}
		if math.Abs(resp.SoftReadiness-2.0/3.0) > 1e-9 {
			t.Errorf("SoftReadiness = %f, want 2/3", resp.SoftReadiness)
		}
		if len(resp.MissingHumanSkills) != 1 || resp.MissingHumanSkills[0].Name != "Communication" {
			t.Errorf("MissingHumanSkills = %+v, want [Communication]", resp.MissingHumanSkills)
		}

		if len(resp.Recommendations) != 5 {
			t.Fatalf("got %d recommendations, want 5", len(resp.Recommendations))
		}
		if top := resp.Recommendations[0]; top.CourseID != 10351 {
			t.Errorf("top recommendation = %d (%s), want 10351", top.CourseID, top.Name)
		}

		completed := recommend.NewIDSet(90901, 90911, 10016, 10128, 10117)
		for i, rec := range resp.Recommendations {
			if completed.Has(rec.CourseID) {
				t.Errorf("completed course %d recommended", rec.CourseID)
			}
			if i > 0 && rec.FinalScore > resp.Recommendations[i-1].FinalScore {
				t.Errorf("recommendations not sorted at %d", i)
			}
		}

		var deepLearning *recommend.BlockedCourse
		for i := range resp.BlockedCourses {
			if resp.BlockedCourses[i].CourseID == 10240 {
				deepLearning = &resp.BlockedCourses[i]
			}
		}
		if deepLearning == nil {
			t.Fatal("course 10240 not reported as blocked")
		}
		if !reflect.DeepEqual(deepLearning.MissingPrereqs, []int{10245}) {
			t.Errorf("10240 missing prereqs = %v, want [10245]", deepLearning.MissingPrereqs)
		}
	})

	t.Run("student without human skills is blocked", func(t *testing.T) {
		resp, err := engine.Recommend(ctx, recommend.Request{StudentID: 3, CareerGoalID: 1})
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if !resp.IsBlocked() {
			t.Fatal("Recommend() not blocked for student without human skills")
		}
		if len(resp.Recommendations) != 0 {
			t.Errorf("blocked response has %d recommendations", len(resp.Recommendations))
		}
	})

	t.Run("unknown identifiers", func(t *testing.T) {
		_, err := engine.Recommend(ctx, recommend.Request{StudentID: 404, CareerGoalID: 1})
		if !errors.Is(err, recommend.ErrStudentNotFound) {
			t.Errorf("unknown student error = %v", err)
		}
		_, err = engine.Recommend(ctx, recommend.Request{StudentID: 1, CareerGoalID: 404})
		if !errors.Is(err, recommend.ErrCareerGoalNotFound) {
			t.Errorf("unknown goal error = %v", err)
		}
	})
}
