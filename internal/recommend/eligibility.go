// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package recommend

// FilterEligible removes completed courses from the catalogue and, when
// enforce is set, withholds courses whose prerequisites are not all completed.
//
// Both returned slices keep the input course order. MissingPrereqs keeps the
// order of the prerequisite list. The blocked slice is nil when enforce is
// false and non-nil otherwise.
func FilterEligible(courses []Course, completed IDSet, prereqs map[int][]int, enforce bool) ([]Course, []BlockedCourse) {
	candidates := make([]Course, 0, len(courses))
	var blocked []BlockedCourse
	if enforce {
		blocked = make([]BlockedCourse, 0)
	}

	for _, c := range courses {
		if completed.Has(c.ID) {
			continue
		}

		if enforce {
			if missing := missingPrereqs(prereqs[c.ID], completed); len(missing) > 0 {
				blocked = append(blocked, BlockedCourse{
					CourseID:       c.ID,
					CourseName:     c.Name,
					MissingPrereqs: missing,
				})
				continue
			}
		}

		candidates = append(candidates, c)
	}

	return candidates, blocked
}

func missingPrereqs(required []int, completed IDSet) []int {
	var missing []int
	for _, id := range uniqueIDs(required) {
		if !completed.Has(id) {
			missing = append(missing, id)
		}
	}
	return missing
}
