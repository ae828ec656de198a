// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package tagging

import (
	"reflect"
	"slices"
	"testing"
)

func TestAnalyze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		courseName   string
		description  string
		wantCategory Category
		wantTech     []string
		wantHuman    []string
	}{
		{
			name:         "web course",
			courseName:   "Web Platforms",
			description:  "Modern web development frameworks.",
			wantCategory: CategoryWeb,
			wantTech:     []string{SkillGit, SkillJavaScript, SkillReact, SkillNode, SkillDocker},
			wantHuman:    []string{SkillProblemSolving, SkillSelfLearner},
		},
		{
			name:         "web course with data adds SQL",
			courseName:   "Web Data Dashboards",
			wantCategory: CategoryWeb,
			wantTech:     []string{SkillGit, SkillJavaScript, SkillReact, SkillNode, SkillDocker, SkillSQL},
			wantHuman:    []string{SkillProblemSolving, SkillSelfLearner},
		},
		{
			name:         "machine learning course",
			courseName:   "Deep Learning",
			description:  "Neural networks and deep architectures.",
			wantCategory: CategoryML,
			wantTech:     []string{SkillGit, SkillPython, SkillTensorFlow, SkillDocker, SkillAWS},
			wantHuman:    []string{SkillProblemSolving, SkillSelfLearner},
		},
		{
			name:         "systems course",
			courseName:   "Operating Systems",
			description:  "Process management and file systems.",
			wantCategory: CategorySystems,
			wantTech:     []string{SkillGit, SkillCPP, SkillDocker, SkillAWS},
			wantHuman:    []string{SkillProblemSolving, SkillSelfLearner},
		},
		{
			name:         "security course",
			courseName:   "Cyber Security",
			description:  "Defense and offensive security.",
			wantCategory: CategorySecurity,
			wantTech:     []string{SkillGit, SkillDocker, SkillAWS, SkillPython, SkillSQL},
			wantHuman:    []string{SkillProblemSolving, SkillSelfLearner},
		},
		{
			name:         "project course keeps three human skills",
			courseName:   "CS Project - Part 1",
			description:  "Initial phase of final development project.",
			wantCategory: CategoryGeneral,
			wantTech:     []string{SkillGit, SkillPython, SkillSQL, SkillDocker},
			wantHuman:    []string{SkillProblemSolving, SkillTeamwork, SkillCommunication},
		},
		{
			name:         "case insensitive",
			courseName:   "DATABASE SYSTEMS",
			wantCategory: CategoryDatabase,
			wantTech:     []string{SkillGit, SkillSQL, SkillPython, SkillAWS, SkillDocker},
			wantHuman:    []string{SkillProblemSolving, SkillSelfLearner},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Analyze(tt.courseName, tt.description)
			if got.Category != tt.wantCategory {
				t.Errorf("Category = %q, want %q", got.Category, tt.wantCategory)
			}
			if !reflect.DeepEqual(got.Technical, tt.wantTech) {
				t.Errorf("Technical = %v, want %v", got.Technical, tt.wantTech)
			}
			if !reflect.DeepEqual(got.Human, tt.wantHuman) {
				t.Errorf("Human = %v, want %v", got.Human, tt.wantHuman)
			}
		})
	}
}

func TestCategorize_Bounds(t *testing.T) {
	t.Parallel()

	courses := [][2]string{
		{"Calculus 1", "Limits, derivatives, and integrals of single-variable functions."},
		{"Intro to AI", "Basic AI concepts and search algorithms."},
		{"Big Data Analytics", "Large scale data processing."},
		{"Secure Development", "Writing exploit-free code."},
		{"User Interface Development", "Building interactive user interfaces."},
		{"Software Engineering", "Software lifecycle and design methodologies."},
		{"Research Seminar", "Capstone research presentation."},
		{"", ""},
	}

	for _, c := range courses {
		tech, human := Categorize(c[0], c[1])

		if len(tech) < minTechnical || len(tech) > maxTechnical {
			t.Errorf("%q: %d technical skills, want %d..%d", c[0], len(tech), minTechnical, maxTechnical)
		}
		if !slices.Contains(tech, SkillGit) {
			t.Errorf("%q: technical skills %v lack Git", c[0], tech)
		}
		if len(human) < minHuman || len(human) > maxHuman {
			t.Errorf("%q: %d human skills, want %d..%d", c[0], len(human), minHuman, maxHuman)
		}
		if !slices.Contains(human, SkillProblemSolving) {
			t.Errorf("%q: human skills %v lack Problem-solving", c[0], human)
		}
		if len(slices.Compact(slices.Sorted(slices.Values(tech)))) != len(tech) {
			t.Errorf("%q: duplicate technical skills %v", c[0], tech)
		}

		again, _ := Categorize(c[0], c[1])
		if !reflect.DeepEqual(tech, again) {
			t.Errorf("%q: Categorize not deterministic: %v then %v", c[0], tech, again)
		}
	}
}

func TestOrderedSet_Trim(t *testing.T) {
	t.Parallel()

	s := newOrderedSet("a", "b", SkillGit, "c", SkillDocker, "d")
	s.trim(4, SkillGit, SkillDocker, SkillPython)

	want := []string{SkillGit, SkillDocker, "a", "b"}
	if !reflect.DeepEqual(s.items, want) {
		t.Errorf("trim() = %v, want %v", s.items, want)
	}
	if s.len() != 4 {
		t.Errorf("len() = %d, want 4", s.len())
	}

	s.add("a")
	if s.len() != 4 {
		t.Errorf("re-adding kept item changed length to %d", s.len())
	}
	s.add("c")
	if s.len() != 5 {
		t.Errorf("trimmed item not re-addable, len = %d", s.len())
	}
}
