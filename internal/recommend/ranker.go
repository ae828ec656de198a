// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package recommend

import "sort"

// Rank orders courses by final score descending and keeps the first k.
// Equal scores keep their input order. The input slice is not modified.
func Rank(items []ScoredCourse, k int) []ScoredCourse {
	ranked := make([]ScoredCourse, len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalScore > ranked[j].FinalScore
	})

	if k >= 0 && len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
