package jobanalysis

import (
	"testing"

	"matcher-backend/internal/profile"
)

func relevanceProfile(technical []string) profile.Profile {
	return profile.Profile{
		PersonalInfo: profile.PersonalInfo{Name: "Jane Smith", Email: "jane@example.com"},
		Summary:      "Backend engineer working with Python and SQL in production.",
		WorkExperience: []profile.Experience{
			{
				Company:     "Acme",
				Position:    "Senior Engineer",
				StartDate:   "2021-06",
				Description: "Built Python services backed by SQL databases on AWS.",
			},
			{
				Company:     "Globex",
				Position:    "Engineer",
				StartDate:   "2018-01",
				EndDate:     "2021-05",
				Description: "Maintained internal tooling.",
			},
		},
		Education: []profile.Education{
			{Institution: "State University", Degree: "bachelor", Field: "Computer Science"},
		},
		Skills: map[string][]string{profile.SkillsTechnical: technical},
	}
}

func TestRelevanceScoreEmptyArguments(t *testing.T) {
	if got := RelevanceScore(profile.Profile{}, RequirementSet{}); got != 0 {
		t.Errorf("empty/empty = %f, want 0", got)
	}
	if got := RelevanceScore(profile.Profile{}, RequirementSet{RequiredSkills: []string{"python"}}); got != 0 {
		t.Errorf("empty profile = %f, want 0", got)
	}
	if got := RelevanceScore(relevanceProfile([]string{"Python"}), RequirementSet{}); got != 0 {
		t.Errorf("empty requirements = %f, want 0", got)
	}
}

func TestRelevanceScoreMatchingProfile(t *testing.T) {
	p := relevanceProfile([]string{"Python", "Django", "SQL", "Git", "AWS"})
	req := RequirementSet{
		RequiredSkills:  []string{"python", "sql"},
		PreferredSkills: []string{"aws"},
		ExperienceLevel: "2+ years",
	}
	got := RelevanceScore(p, req)
	if got <= 0.5 {
		t.Errorf("matching profile scored %f, want > 0.5", got)
	}
	if got > 1 {
		t.Errorf("score %f above 1", got)
	}
}

func TestRelevanceScoreUnrelatedProfile(t *testing.T) {
	p := profile.Profile{
		PersonalInfo: profile.PersonalInfo{Name: "Test", Email: "test@example.com"},
		Summary:      "Mainframe programmer.",
		Skills:       map[string][]string{profile.SkillsTechnical: {"COBOL", "Fortran"}},
	}
	req := RequirementSet{
		RequiredSkills:  []string{"python", "sql"},
		PreferredSkills: []string{"aws"},
		ExperienceLevel: "2+ years",
	}
	got := RelevanceScore(p, req)
	if got >= 0.3 {
		t.Errorf("unrelated profile scored %f, want < 0.3", got)
	}
}

func TestExperienceComponent(t *testing.T) {
	p := relevanceProfile([]string{"Python"})

	// Two entries against a 2-year requirement: full credit.
	if got := experienceComponent(p, RequirementSet{ExperienceLevel: "2 years"}); got != experienceCap {
		t.Errorf("full coverage = %f, want %f", got, experienceCap)
	}
	// Two entries against a 4-year requirement: proportional.
	if got := experienceComponent(p, RequirementSet{ExperienceLevel: "4 years"}); got != experienceCap/2 {
		t.Errorf("half coverage = %f, want %f", got, experienceCap/2)
	}
	// No extractable number: half credit.
	if got := experienceComponent(p, RequirementSet{ExperienceLevel: "senior"}); got != experienceCap*experienceDefaultCredit {
		t.Errorf("default credit = %f", got)
	}
	// No work history at all: zero.
	p.WorkExperience = nil
	if got := experienceComponent(p, RequirementSet{ExperienceLevel: "2 years"}); got != 0 {
		t.Errorf("no history = %f, want 0", got)
	}
}

func TestEducationComponent(t *testing.T) {
	p := relevanceProfile([]string{"Python"})

	if got := educationComponent(p, RequirementSet{EducationRequirements: "bachelor"}); got != educationCap {
		t.Errorf("degree match = %f, want %f", got, educationCap)
	}
	if got := educationComponent(p, RequirementSet{EducationRequirements: "phd"}); got != educationCap*educationPartialCredit {
		t.Errorf("partial credit = %f", got)
	}
	if got := educationComponent(p, RequirementSet{}); got != educationCap*educationDefaultCredit {
		t.Errorf("no requirement = %f", got)
	}
	p.Education = nil
	if got := educationComponent(p, RequirementSet{EducationRequirements: "bachelor"}); got != 0 {
		t.Errorf("no education = %f, want 0", got)
	}
}

func TestSummaryComponent(t *testing.T) {
	p := relevanceProfile([]string{"Python"})
	req := RequirementSet{RequiredSkills: []string{"python", "sql", "terraform"}}
	got := summaryComponent(p, req)
	// python and sql appear in summary/descriptions, terraform does not.
	want := 2.0 / 3.0 * summaryCap
	if got != want {
		t.Errorf("summary component = %f, want %f", got, want)
	}
	if got := summaryComponent(p, RequirementSet{}); got != 0 {
		t.Errorf("no required skills = %f, want 0", got)
	}
}
