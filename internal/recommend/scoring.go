// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package recommend

import "sort"

const (
	// DefaultQualityPrior is the normalized global mean used when no course
	// has been reviewed yet.
	DefaultQualityPrior = 0.5

	// reviewScaleMax normalizes 1-10 review scores into [0, 1].
	reviewScaleMax = 10.0
)

// GlobalPrior returns the normalized global review mean C, or
// DefaultQualityPrior when there are no reviews.
func GlobalPrior(globalMean *float64) float64 {
	if globalMean == nil {
		return DefaultQualityPrior
	}
	return *globalMean / reviewScaleMax
}

// SmoothQuality returns the Bayesian average of a course's review quality:
// (m*C + n*avg) / (m + n), where avg is the course mean normalized to [0, 1].
// A course without reviews gets exactly the prior.
func SmoothQuality(prior, priorM float64, agg *ReviewAggregate) float64 {
	n := 0.0
	avg := prior
	if agg != nil && agg.Count > 0 {
		n = float64(agg.Count)
		avg = agg.Mean / reviewScaleMax
	}

	if priorM+n <= 0 {
		return prior
	}
	return (priorM*prior + n*avg) / (priorM + n)
}

// RoleFit returns the mean relevance of a course over the required
// technical skills, or 0 when nothing is required.
func RoleFit(courseID int, required []int, relevance RelevanceMap) float64 {
	if len(required) == 0 {
		return 0
	}
	var sum float64
	for _, id := range required {
		sum += relevance.Get(courseID, id)
	}
	return sum / float64(len(required))
}

// Scorer computes ScoredCourse values against one snapshot.
type Scorer struct {
	cfg       *Config
	idx       *snapshotIndex
	clusters  map[int][]int
	reviews   map[int]ReviewAggregate
	required  []int
	completed []Course
	prior     float64
}

// NewScorer prepares a scorer for the snapshot's student and career goal.
func NewScorer(snap *Snapshot, cfg *Config) *Scorer {
	return newScorer(snap, newSnapshotIndex(snap), cfg)
}

func newScorer(snap *Snapshot, idx *snapshotIndex, cfg *Config) *Scorer {
	s := &Scorer{
		cfg:      cfg,
		idx:      idx,
		clusters: snap.Clusters,
		reviews:  snap.Reviews,
		prior:    GlobalPrior(snap.GlobalMean),
	}
	if snap.Goal != nil {
		s.required = uniqueIDs(snap.Goal.TechnicalSkillIDs)
	}

	// Completed courses missing from the catalogue are ignored
	for _, id := range uniqueIDs(snap.Completed) {
		if name, ok := idx.courseNames[id]; ok {
			s.completed = append(s.completed, Course{ID: id, Name: name})
		}
	}
	return s
}

// Prior returns the normalized global review mean used for smoothing.
func (s *Scorer) Prior() float64 {
	return s.prior
}

// Score computes the sub-scores, final score and explanation for a course.
// Missing relevance, cluster or review data default to zero values.
func (s *Scorer) Score(c Course) ScoredCourse {
	sRole := RoleFit(c.ID, s.required, s.idx.relevance)
	sAffinity, details := s.Affinity(c.ID)

	var agg *ReviewAggregate
	if stats, ok := s.reviews[c.ID]; ok && stats.Count > 0 {
		agg = &stats
	}
	qSmoothed := SmoothQuality(s.prior, s.cfg.PriorM, agg)

	w := s.cfg.Weights
	scored := ScoredCourse{
		CourseID:   c.ID,
		Name:       c.Name,
		FinalScore: w.Role*sRole + w.Affinity*sAffinity + w.Quality*qSmoothed,
		Breakdown: Breakdown{
			SRole:     sRole,
			SAffinity: sAffinity,
			QSmoothed: qSmoothed,
		},
		MatchedTechnicalSkills: []SkillMatch{},
		MissingTechnicalSkills: []int{},
	}

	if agg != nil {
		mean := agg.Mean
		scored.AvgScoreRaw = &mean
		scored.ReviewCount = agg.Count
	}

	for _, id := range s.required {
		rel := s.idx.relevance.Get(c.ID, id)
		if rel > 0 {
			scored.MatchedTechnicalSkills = append(scored.MatchedTechnicalSkills, SkillMatch{
				SkillID:        id,
				Name:           s.idx.skillNames[id],
				RelevanceScore: rel,
			})
		} else {
			scored.MissingTechnicalSkills = append(scored.MissingTechnicalSkills, id)
		}
	}

	if len(details) > 0 {
		scored.AffinityExplanation = &AffinityExplanation{TopContributingCourses: details}
	}

	return scored
}

// Affinity returns the mean similarity between a course and the student's
// TopKSimilar most similar completed courses, along with those courses in
// descending similarity order.
func (s *Scorer) Affinity(courseID int) (float64, []AffinityDetail) {
	if len(s.completed) == 0 {
		return 0, nil
	}

	details := make([]AffinityDetail, 0, len(s.completed))
	for _, done := range s.completed {
		sim := Similarity(courseID, done.ID, s.clusters, s.idx.techSkills, s.cfg.Alpha)
		details = append(details, AffinityDetail{
			CompletedCourseID:   done.ID,
			CompletedCourseName: done.Name,
			SimilarityScore:     sim.Score,
			ClusterMatched:      sim.ClusterMatched,
			TechOverlapScore:    sim.TechOverlap,
		})
	}

	sort.SliceStable(details, func(i, j int) bool {
		return details[i].SimilarityScore > details[j].SimilarityScore
	})

	top := min(s.cfg.TopKSimilar, len(details))
	details = details[:top]

	var sum float64
	for _, d := range details {
		sum += d.SimilarityScore
	}
	return sum / float64(top), details
}
