package jobanalysis

import (
	"strings"

	"matcher-backend/internal/profile"
)

// Component caps for relevance scoring. Skills split 30/10 between
// required and preferred coverage.
const (
	skillsCap          = 40.0
	requiredSkillsCap  = 30.0
	preferredSkillsCap = 10.0
	experienceCap      = 30.0
	educationCap       = 20.0
	summaryCap         = 10.0

	experienceDefaultCredit = 0.5
	educationPartialCredit  = 0.3
	educationDefaultCredit  = 0.5
)

// RelevanceScore computes how well a profile matches the extracted
// requirements, as a value in [0,1]. An empty profile or empty requirement
// set scores 0. Each component is capped independently; the sum is
// normalized by the total cap and clamped to 1.
func RelevanceScore(p profile.Profile, req RequirementSet) float64 {
	if p.IsZero() || req.IsZero() {
		return 0
	}

	total := skillsComponent(p, req) +
		experienceComponent(p, req) +
		educationComponent(p, req) +
		summaryComponent(p, req)

	maxTotal := skillsCap + experienceCap + educationCap + summaryCap
	score := total / maxTotal
	if score > 1 {
		score = 1
	}
	return score
}

// skillsComponent: required-skill coverage up to 30, preferred up to 10.
// A requirement counts as covered when it appears as a substring of any
// profile skill string, case-insensitively.
func skillsComponent(p profile.Profile, req RequirementSet) float64 {
	profileSkills := lowerProfileSkills(p)

	score := 0.0
	if len(req.RequiredSkills) > 0 {
		score += coverage(req.RequiredSkills, profileSkills) * requiredSkillsCap
	}
	if len(req.PreferredSkills) > 0 {
		score += coverage(req.PreferredSkills, profileSkills) * preferredSkillsCap
	}
	return score
}

func lowerProfileSkills(p profile.Profile) []string {
	categories := []string{
		profile.SkillsTechnical,
		profile.SkillsSoft,
		profile.SkillsLanguages,
		profile.SkillsCertifications,
	}
	var out []string
	for _, category := range categories {
		for _, skill := range p.Skills[category] {
			out = append(out, strings.ToLower(skill))
		}
	}
	return out
}

func coverage(requirements, profileSkills []string) float64 {
	matched := 0
	for _, requirement := range requirements {
		needle := strings.ToLower(requirement)
		for _, skill := range profileSkills {
			if strings.Contains(skill, needle) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(requirements))
}

// experienceComponent: entry count against the numeric year requirement,
// half credit when the requirement carries no extractable number, zero when
// the profile has no work history.
func experienceComponent(p profile.Profile, req RequirementSet) float64 {
	if len(p.WorkExperience) == 0 {
		return 0
	}
	years := requiredYears(req.ExperienceLevel)
	if years == 0 {
		return experienceCap * experienceDefaultCredit
	}
	ratio := float64(len(p.WorkExperience)) / float64(years)
	if ratio > 1 {
		ratio = 1
	}
	return ratio * experienceCap
}

// educationComponent: full credit when a profile degree appears in the
// requirement string, partial credit otherwise, half credit when no
// requirement was extracted, zero without any education entries.
func educationComponent(p profile.Profile, req RequirementSet) float64 {
	if len(p.Education) == 0 {
		return 0
	}
	requirement := strings.ToLower(req.EducationRequirements)
	if requirement == "" {
		return educationCap * educationDefaultCredit
	}
	for _, edu := range p.Education {
		degree := strings.ToLower(strings.TrimSpace(edu.Degree))
		if degree != "" && strings.Contains(requirement, degree) {
			return educationCap
		}
	}
	return educationCap * educationPartialCredit
}

// summaryComponent: fraction of required skills literally present in the
// summary plus all work-experience descriptions.
func summaryComponent(p profile.Profile, req RequirementSet) float64 {
	if len(req.RequiredSkills) == 0 {
		return 0
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(p.Summary))
	for _, exp := range p.WorkExperience {
		b.WriteString(" ")
		b.WriteString(strings.ToLower(exp.Description))
	}
	text := b.String()
	if strings.TrimSpace(text) == "" {
		return 0
	}

	matched := 0
	for _, skill := range req.RequiredSkills {
		if strings.Contains(text, strings.ToLower(skill)) {
			matched++
		}
	}
	return float64(matched) / float64(len(req.RequiredSkills)) * summaryCap
}
