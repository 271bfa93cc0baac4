package jobanalysis

import (
	"regexp"
	"strings"

	"matcher-backend/internal/taxonomy"
)

const (
	maxResponsibilities  = 5
	minResponsibilityLen = 20
	maxCompanyInfoLen    = 200
)

// RequirementSet is the structured requirements extracted from one job
// description. It is built once and never mutated afterwards.
type RequirementSet struct {
	RequiredSkills        []string `json:"required_skills"`
	PreferredSkills       []string `json:"preferred_skills"`
	ExperienceLevel       string   `json:"experience_level"`
	EducationRequirements string   `json:"education_requirements"`
	KeyResponsibilities   []string `json:"key_responsibilities"`
	CompanyInfo           string   `json:"company_info"`
}

// IsZero reports whether nothing at all was extracted.
func (r RequirementSet) IsZero() bool {
	return len(r.RequiredSkills) == 0 &&
		len(r.PreferredSkills) == 0 &&
		r.ExperienceLevel == "" &&
		r.EducationRequirements == "" &&
		len(r.KeyResponsibilities) == 0 &&
		r.CompanyInfo == ""
}

var (
	// Skill sections are only recognized inside explicitly bounded spans.
	// Skills mentioned outside such sections are not collected; that
	// mirrors how postings separate hard requirements from context.
	requiredSectionRe  = regexp.MustCompile(`(?s)(?:required|must have|essential).*?(?:preferred|nice to have|plus|bonus|\n\n)`)
	preferredSectionRe = regexp.MustCompile(`(?s)(?:preferred|nice to have|plus|bonus|would be great).*?(?:\n\n|$)`)

	bulletRe   = regexp.MustCompile(`(?:•|\*|-|\d+\.)\s*([^\n•*\-\d]+)`)
	yearDigits = regexp.MustCompile(`\d+`)
)

// IdentifyRequirements parses a job description into a RequirementSet.
// Empty input yields an all-empty set, never an error.
func IdentifyRequirements(jobDescription string) RequirementSet {
	if strings.TrimSpace(jobDescription) == "" {
		return RequirementSet{}
	}

	lowered := strings.ToLower(jobDescription)

	return RequirementSet{
		RequiredSkills:        skillsInSections(lowered, requiredSectionRe),
		PreferredSkills:       skillsInSections(lowered, preferredSectionRe),
		ExperienceLevel:       experienceLevel(lowered),
		EducationRequirements: educationRequirement(lowered),
		KeyResponsibilities:   responsibilities(jobDescription),
		CompanyInfo:           companyInfo(jobDescription),
	}
}

// skillsInSections locates section spans with the given boundary pattern
// and collects taxonomy skill matches inside them, first occurrence order,
// duplicate-free.
func skillsInSections(lowered string, sectionRe *regexp.Regexp) []string {
	var found []string
	seen := make(map[string]bool)
	for _, section := range sectionRe.FindAllString(lowered, -1) {
		for _, pattern := range taxonomy.SkillPatterns() {
			for _, m := range pattern.FindAllString(section, -1) {
				if !seen[m] {
					seen[m] = true
					found = append(found, m)
				}
			}
		}
	}
	return found
}

// experienceLevel tries the ordered duration patterns, then the dedicated
// "N+ years" fallback. Unmatched input yields "".
func experienceLevel(lowered string) string {
	for _, pattern := range taxonomy.ExperiencePatterns() {
		m := pattern.FindStringSubmatch(lowered)
		if m == nil {
			continue
		}
		switch len(m) {
		case 2:
			return m[1] + " years"
		case 3:
			return m[1] + "-" + m[2] + " years"
		}
	}
	if m := taxonomy.ExperiencePlusPattern().FindStringSubmatch(lowered); m != nil {
		return m[1] + "+ years"
	}
	return ""
}

// educationRequirement returns the first match among the ordered education
// patterns, or "".
func educationRequirement(lowered string) string {
	for _, pattern := range taxonomy.EducationPatterns() {
		if m := pattern.FindString(lowered); m != "" {
			return m
		}
	}
	return ""
}

// responsibilities collects bullet/numbered fragments longer than 20
// characters, in document order, capped at 5.
func responsibilities(jobDescription string) []string {
	var out []string
	for _, m := range bulletRe.FindAllStringSubmatch(jobDescription, -1) {
		fragment := strings.TrimSpace(m[1])
		if len(fragment) > minResponsibilityLen {
			out = append(out, fragment)
		}
		if len(out) == maxResponsibilities {
			break
		}
	}
	return out
}

// companyInfo returns the first paragraph, truncated to 200 characters with
// an ellipsis marker when longer.
func companyInfo(jobDescription string) string {
	paragraph := jobDescription
	if idx := strings.Index(jobDescription, "\n\n"); idx >= 0 {
		paragraph = jobDescription[:idx]
	}
	if len(paragraph) > maxCompanyInfoLen {
		return paragraph[:maxCompanyInfoLen] + "..."
	}
	return paragraph
}

// requiredYears pulls the first number out of a free-form experience level
// string ("3+ years", "2-4 years"). Zero when none is present.
func requiredYears(experienceLevel string) int {
	m := yearDigits.FindString(experienceLevel)
	if m == "" {
		return 0
	}
	years := 0
	for _, r := range m {
		years = years*10 + int(r-'0')
	}
	return years
}
