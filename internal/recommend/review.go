// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package recommend

import (
	"fmt"
	"math"
)

// Review rating bounds and weights. The weighted mean lands on 1-5 and is
// doubled onto the 1-10 scale consumed by quality smoothing.
const (
	MinRating = 1
	MaxRating = 5

	industryWeight   = 5
	instructorWeight = 2
	usefulWeight     = 3
)

// ReviewFinalScore combines the three review ratings into a final score on
// the 1-10 scale, rounded to two decimals.
func ReviewFinalScore(industryRelevance, instructorRating, usefulLearning int) (float64, error) {
	ratings := []struct {
		name  string
		value int
	}{
		{"industry_relevance_rating", industryRelevance},
		{"instructor_rating", instructorRating},
		{"useful_learning_rating", usefulLearning},
	}
	for _, r := range ratings {
		if r.value < MinRating || r.value > MaxRating {
			return 0, fmt.Errorf("%w: %s must be in [%d, %d], got %d", ErrRatingOutOfRange, r.name, MinRating, MaxRating, r.value)
		}
	}

	weighted := float64(industryRelevance*industryWeight+
		instructorRating*instructorWeight+
		usefulLearning*usefulWeight) / (industryWeight + instructorWeight + usefulWeight)

	return math.Round(weighted*2*100) / 100, nil
}
