// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package recommend

import (
	"reflect"
	"testing"
)

func courseIDs(courses []Course) []int {
	ids := make([]int, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestFilterEligible(t *testing.T) {
	t.Parallel()

	courses := []Course{
		{ID: 1, Name: "Intro to Programming"},
		{ID: 2, Name: "Data Structures"},
		{ID: 3, Name: "Algorithms"},
		{ID: 4, Name: "Databases"},
		{ID: 5, Name: "Distributed Systems"},
	}
	prereqs := map[int][]int{
		2: {1},
		3: {2, 1},
		5: {4, 3},
	}

	tests := []struct {
		name           string
		completed      IDSet
		enforce        bool
		wantCandidates []int
		wantBlocked    []BlockedCourse
	}{
		{
			name:           "nothing completed enforce",
			completed:      NewIDSet(),
			enforce:        true,
			wantCandidates: []int{1, 4},
			wantBlocked: []BlockedCourse{
				{CourseID: 2, CourseName: "Data Structures", MissingPrereqs: []int{1}},
				{CourseID: 3, CourseName: "Algorithms", MissingPrereqs: []int{2, 1}},
				{CourseID: 5, CourseName: "Distributed Systems", MissingPrereqs: []int{4, 3}},
			},
		},
		{
			name:           "partial progress enforce",
			completed:      NewIDSet(1, 4),
			enforce:        true,
			wantCandidates: []int{2},
			wantBlocked: []BlockedCourse{
				{CourseID: 3, CourseName: "Algorithms", MissingPrereqs: []int{2}},
				{CourseID: 5, CourseName: "Distributed Systems", MissingPrereqs: []int{3}},
			},
		},
		{
			name:           "no enforcement keeps everything not completed",
			completed:      NewIDSet(1),
			enforce:        false,
			wantCandidates: []int{2, 3, 4, 5},
			wantBlocked:    nil,
		},
		{
			name:           "all completed",
			completed:      NewIDSet(1, 2, 3, 4, 5),
			enforce:        true,
			wantCandidates: []int{},
			wantBlocked:    []BlockedCourse{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			candidates, blocked := FilterEligible(courses, tt.completed, prereqs, tt.enforce)

			if got := courseIDs(candidates); !reflect.DeepEqual(got, tt.wantCandidates) {
				t.Errorf("candidates = %v, want %v", got, tt.wantCandidates)
			}
			if !reflect.DeepEqual(blocked, tt.wantBlocked) {
				t.Errorf("blocked = %+v, want %+v", blocked, tt.wantBlocked)
			}
		})
	}
}

func TestFilterEligible_BlockedNilOnlyWithoutEnforcement(t *testing.T) {
	t.Parallel()

	courses := []Course{{ID: 1, Name: "A"}}

	_, blocked := FilterEligible(courses, NewIDSet(), nil, true)
	if blocked == nil {
		t.Error("blocked = nil with enforcement, want empty slice")
	}

	_, blocked = FilterEligible(courses, NewIDSet(), nil, false)
	if blocked != nil {
		t.Errorf("blocked = %v without enforcement, want nil", blocked)
	}
}

func TestFilterEligible_NoPrerequisiteEntry(t *testing.T) {
	t.Parallel()

	courses := []Course{{ID: 9, Name: "Standalone"}}
	candidates, blocked := FilterEligible(courses, NewIDSet(), map[int][]int{1: {2}}, true)
	if len(candidates) != 1 || candidates[0].ID != 9 {
		t.Errorf("candidates = %v, want [9]", courseIDs(candidates))
	}
	if len(blocked) != 0 {
		t.Errorf("blocked = %v, want empty", blocked)
	}
}
