// Package match scores a resume against a job description by combining
// TF-IDF content similarity with skill-vocabulary overlap.
package match

import (
	"math"

	"matcher-backend/internal/taxonomy"
	"matcher-backend/internal/textnorm"
)

// Score weights: content similarity 40%, skill overlap 60%.
const (
	contentWeight = 0.4
	skillWeight   = 0.6
)

// Report is the full outcome of a resume/job comparison. It is built fresh
// per call and never mutated afterwards.
type Report struct {
	MatchScore           float64  `json:"match_score"`
	ResumeSkills         []string `json:"resume_skills"`
	JDSkills             []string `json:"jd_skills"`
	MatchingSkills       []string `json:"matching_skills"`
	MissingSkills        []string `json:"missing_skills"`
	SkillMatchPercentage float64  `json:"skill_match_percentage"`
}

// Score returns the combined match score in [0,100] plus the skills found in
// each document. Empty or degenerate input fails soft: zero score, no
// skills, no error.
func Score(resumeText, jobText string) (float64, []string, []string) {
	resumeTokens := textnorm.Normalize(resumeText)
	jobTokens := textnorm.Normalize(jobText)
	if len(resumeTokens) == 0 || len(jobTokens) == 0 {
		return 0, nil, nil
	}

	contentScore := tfidfCosine(resumeTokens, jobTokens) * 100

	// Skills come from the raw text so multi-word vocabulary terms survive.
	resumeSkills := taxonomy.ExtractSkills(resumeText)
	jdSkills := taxonomy.ExtractSkills(jobText)

	skillRatio := 0.0
	if len(jdSkills) > 0 {
		skillRatio = float64(len(intersect(resumeSkills, jdSkills))) / float64(len(jdSkills)) * 100
	}

	final := contentScore*contentWeight + skillRatio*skillWeight
	return final, resumeSkills, jdSkills
}

// Analyze wraps Score into a full Report with matching/missing skill sets
// and two-decimal rounding.
func Analyze(resumeText, jobText string) Report {
	score, resumeSkills, jdSkills := Score(resumeText, jobText)

	matching := intersect(resumeSkills, jdSkills)
	missing := subtract(jdSkills, resumeSkills)

	skillPct := 0.0
	if len(jdSkills) > 0 {
		skillPct = float64(len(matching)) / float64(len(jdSkills)) * 100
	}

	return Report{
		MatchScore:           round2(score),
		ResumeSkills:         resumeSkills,
		JDSkills:             jdSkills,
		MatchingSkills:       matching,
		MissingSkills:        missing,
		SkillMatchPercentage: round2(skillPct),
	}
}

// intersect keeps elements of a that appear in b, preserving a's order.
func intersect(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, s := range b {
		inB[s] = true
	}
	var out []string
	for _, s := range a {
		if inB[s] {
			out = append(out, s)
		}
	}
	return out
}

// subtract keeps elements of a not present in b, preserving a's order.
func subtract(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, s := range b {
		inB[s] = true
	}
	var out []string
	for _, s := range a {
		if !inB[s] {
			out = append(out, s)
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
