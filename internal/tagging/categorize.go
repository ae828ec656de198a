// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package tagging

import "strings"

// Category is the detected subject area of a course.
type Category string

// Course categories, in detection priority order.
const (
	CategoryWeb      Category = "web"
	CategoryBackend  Category = "backend"
	CategoryDatabase Category = "db"
	CategoryML       Category = "ml"
	CategorySystems  Category = "systems"
	CategorySecurity Category = "security"
	CategoryGeneral  Category = "general"
)

// Skill names as stored in the skills table.
const (
	SkillPython     = "Python"
	SkillJavaScript = "JavaScript"
	SkillSQL        = "SQL"
	SkillReact      = "React"
	SkillNode       = "Node.js"
	SkillTensorFlow = "TensorFlow"
	SkillCPP        = "C++"
	SkillAWS        = "AWS"
	SkillDocker     = "Docker"
	SkillGit        = "Git"

	SkillTeamwork       = "Teamwork"
	SkillCommunication  = "Communication"
	SkillSelfLearner    = "Self-learner"
	SkillProblemSolving = "Problem-solving"
	SkillLeadership     = "Leadership"
)

const (
	minTechnical = 4
	maxTechnical = 6
	minHuman     = 2
	maxHuman     = 3
)

var (
	webKeywords      = []string{"web", "ui", "interface", "frontend", "react", "javascript"}
	backendKeywords  = []string{"server", "service", "api", "node"}
	dbKeywords       = []string{"database", "data", "sql", "mining", "big data"}
	mlKeywords       = []string{"machine learning", "deep", "neural", "ai", "vision", "nlp"}
	systemsKeywords  = []string{"operating", "systems", "parallel", "compiler", "assembly", "os"}
	securityKeywords = []string{"security", "cyber", "cryptography", "secure"}
	projectKeywords  = []string{"project", "software engineering", "seminar", "capstone"}
)

// categorySkills lists the technical skills each category adds on top of Git.
var categorySkills = map[Category][]string{
	CategoryWeb:      {SkillJavaScript, SkillReact, SkillNode, SkillDocker},
	CategoryBackend:  {SkillNode, SkillDocker, SkillSQL, SkillAWS},
	CategoryDatabase: {SkillSQL, SkillPython, SkillAWS, SkillDocker},
	CategoryML:       {SkillPython, SkillTensorFlow, SkillDocker, SkillAWS},
	CategorySystems:  {SkillCPP, SkillDocker, SkillAWS},
	CategorySecurity: {SkillDocker, SkillAWS, SkillPython, SkillSQL},
	CategoryGeneral:  {SkillPython, SkillSQL, SkillDocker},
}

// Result is the outcome of categorizing one course.
type Result struct {
	Category  Category
	Project   bool
	Technical []string
	Human     []string
}

// Categorize suggests technical and human skill names for a course.
// Both lists are deterministic and free of duplicates.
func Categorize(name, description string) (technical, human []string) {
	r := Analyze(name, description)
	return r.Technical, r.Human
}

// Analyze is Categorize with the detected category attached.
func Analyze(name, description string) Result {
	text := strings.ToLower(name + " " + description)

	isDB := containsAny(text, dbKeywords)
	isML := containsAny(text, mlKeywords)
	isProject := containsAny(text, projectKeywords)
	category := detectCategory(text, isDB, isML)

	tech := newOrderedSet(SkillGit)
	tech.add(categorySkills[category]...)
	if category == CategoryWeb && isDB {
		tech.add(SkillSQL)
	}
	if tech.len() < minTechnical {
		tech.add(SkillPython, SkillGit, SkillDocker)
	}
	tech.trim(maxTechnical, SkillGit, SkillDocker, SkillPython, SkillSQL)

	human := newOrderedSet(SkillProblemSolving)
	if isProject {
		human.add(SkillTeamwork, SkillCommunication)
	}
	if isML || strings.Contains(text, "research") {
		human.add(SkillSelfLearner)
	}
	if isProject {
		human.add(SkillLeadership)
	}
	if human.len() < minHuman {
		human.add(SkillSelfLearner)
	}
	human.trim(maxHuman, SkillProblemSolving)

	return Result{
		Category:  category,
		Project:   isProject,
		Technical: tech.items,
		Human:     human.items,
	}
}

func detectCategory(text string, isDB, isML bool) Category {
	switch {
	case containsAny(text, webKeywords):
		return CategoryWeb
	case containsAny(text, backendKeywords):
		return CategoryBackend
	case isDB:
		return CategoryDatabase
	case isML:
		return CategoryML
	case containsAny(text, systemsKeywords):
		return CategorySystems
	case containsAny(text, securityKeywords):
		return CategorySecurity
	default:
		return CategoryGeneral
	}
}

// containsAny reports whether text contains any keyword as a substring.
func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// orderedSet keeps insertion order so results are reproducible.
type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func newOrderedSet(items ...string) *orderedSet {
	s := &orderedSet{seen: make(map[string]struct{})}
	s.add(items...)
	return s
}

func (s *orderedSet) add(items ...string) {
	for _, it := range items {
		if _, ok := s.seen[it]; ok {
			continue
		}
		s.seen[it] = struct{}{}
		s.items = append(s.items, it)
	}
}

func (s *orderedSet) len() int { return len(s.items) }

// trim cuts the set down to limit items. Preferred items present in the set
// are kept first, in the given order, followed by the rest in insertion order.
func (s *orderedSet) trim(limit int, preferred ...string) {
	if len(s.items) <= limit {
		return
	}
	kept := make([]string, 0, limit)
	keep := make(map[string]struct{}, limit)
	for _, p := range preferred {
		if _, ok := s.seen[p]; ok && len(kept) < limit {
			kept = append(kept, p)
			keep[p] = struct{}{}
		}
	}
	for _, it := range s.items {
		if len(kept) == limit {
			break
		}
		if _, ok := keep[it]; !ok {
			kept = append(kept, it)
			keep[it] = struct{}{}
		}
	}
	s.items = kept
	s.seen = keep
}
