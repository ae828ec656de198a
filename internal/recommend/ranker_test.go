// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package recommend

import (
	"reflect"
	"testing"
)

func TestRank(t *testing.T) {
	t.Parallel()

	items := []ScoredCourse{
		{CourseID: 1, FinalScore: 0.2},
		{CourseID: 2, FinalScore: 0.9},
		{CourseID: 3, FinalScore: 0.5},
		{CourseID: 4, FinalScore: 0.9},
		{CourseID: 5, FinalScore: 0.5},
	}

	tests := []struct {
		name string
		k    int
		want []int
	}{
		{"all", 10, []int{2, 4, 3, 5, 1}},
		{"truncated keeps ties in input order", 3, []int{2, 4, 3}},
		{"exact length", 5, []int{2, 4, 3, 5, 1}},
		{"zero", 0, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ranked := Rank(items, tt.k)
			got := make([]int, 0, len(ranked))
			for _, r := range ranked {
				got = append(got, r.CourseID)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Rank() order = %v, want %v", got, tt.want)
			}
		})
	}

	if items[0].CourseID != 1 || items[1].CourseID != 2 {
		t.Error("Rank() modified its input")
	}
}

func TestRank_NonIncreasing(t *testing.T) {
	t.Parallel()

	scores := []float64{0.31, 0.05, 0.77, 0.77, 0.5, 0.99, 0, 0.42, 0.31, 0.6}
	items := make([]ScoredCourse, len(scores))
	for i, s := range scores {
		items[i] = ScoredCourse{CourseID: i + 1, FinalScore: s}
	}

	ranked := Rank(items, len(items))
	for i := 1; i < len(ranked); i++ {
		if ranked[i].FinalScore > ranked[i-1].FinalScore {
			t.Fatalf("score at %d (%f) exceeds score at %d (%f)", i, ranked[i].FinalScore, i-1, ranked[i-1].FinalScore)
		}
	}
}
