// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package recommend

// Similarity compares two courses by cluster membership and technical skills.
//
// The score is alpha*clusterMatch + (1-alpha)*jaccard, where clusterMatch is
// 1 when the courses share at least one cluster. The result is symmetric in
// a and b.
func Similarity(a, b int, clusters map[int][]int, techSkills map[int]IDSet, alpha float64) SimilarityResult {
	matched := sharesCluster(clusters[a], clusters[b])
	overlap := Jaccard(techSkills[a], techSkills[b])

	var match float64
	if matched {
		match = 1
	}

	return SimilarityResult{
		Score:          alpha*match + (1-alpha)*overlap,
		ClusterMatched: matched,
		TechOverlap:    overlap,
	}
}

// Jaccard returns |a∩b| / |a∪b|, or 0 when both sets are empty.
func Jaccard(a, b IDSet) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	// Iterate the smaller set
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}

	intersection := 0
	for id := range small {
		if large.Has(id) {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func sharesCluster(a, b []int) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := NewIDSet(a...)
	for _, id := range b {
		if set.Has(id) {
			return true
		}
	}
	return false
}
