// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package recommend

// BlockedReasonNoHumanSkillOverlap is reported when the student holds none
// of the human skills required by the career goal.
const BlockedReasonNoHumanSkillOverlap = "No overlap between student's human skills and required human skills for this goal"

// AssessReadiness compares the required human skills of a goal with the
// skills the student holds.
//
// A goal without human-skill requirements is always satisfied (ratio 1).
// Otherwise the ratio is |overlap| / |required| and a ratio of exactly zero
// blocks the request. Any non-zero ratio only feeds the explanation.
// Overlap and Missing keep the order of required. Skill names that cannot be
// resolved are reported as empty strings.
func AssessReadiness(required []int, held IDSet, skillNames map[int]string) ReadinessResult {
	result := ReadinessResult{
		Ratio:   1.0,
		Overlap: []SkillRef{},
		Missing: []SkillRef{},
	}

	required = uniqueIDs(required)
	if len(required) == 0 {
		return result
	}

	for _, id := range required {
		ref := SkillRef{SkillID: id, Name: skillNames[id]}
		if held.Has(id) {
			result.Overlap = append(result.Overlap, ref)
		} else {
			result.Missing = append(result.Missing, ref)
		}
	}

	result.Ratio = float64(len(result.Overlap)) / float64(len(required))
	if len(result.Overlap) == 0 {
		reason := BlockedReasonNoHumanSkillOverlap
		result.BlockedReason = &reason
	}

	return result
}
