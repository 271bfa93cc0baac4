package tailor

import (
	"errors"
	"strings"
	"testing"

	"matcher-backend/internal/jobanalysis"
	"matcher-backend/internal/profile"
)

func sampleProfile() profile.Profile {
	return profile.Profile{
		PersonalInfo: profile.PersonalInfo{
			Name:  "Jane Smith",
			Email: "jane.smith@example.com",
			Phone: "555-0100",
		},
		Summary: "Software engineer focused on backend systems.",
		WorkExperience: []profile.Experience{
			{
				Company:      "Globex",
				Position:     "Senior Engineer",
				StartDate:    "2021-02",
				Description:  "Designed APIs in Python.",
				Achievements: []string{"Cut latency by 40%", "Led a team of four"},
			},
			{
				Company:     "Acme Corp",
				Position:    "Engineer",
				StartDate:   "2017-06",
				EndDate:     "2021-01",
				Description: "Maintained billing services.",
			},
		},
		Education: []profile.Education{
			{Institution: "State University", Degree: "BS", Field: "Computer Science", GraduationDate: "2017", GPA: 3.8},
		},
		Skills: map[string][]string{
			profile.SkillsTechnical: {"Python", "Go", "PostgreSQL"},
			profile.SkillsSoft:      {"Communication"},
		},
		Projects: []profile.Project{
			{Name: "Scheduler", Description: "Cron replacement.", Technologies: []string{"Go"}},
		},
	}
}

func TestGenerateEmptyProfile(t *testing.T) {
	_, err := Generate(profile.Profile{}, jobanalysis.RequirementSet{RequiredSkills: []string{"python"}})
	if !errors.Is(err, ErrInvalidProfile) {
		t.Fatalf("err = %v, want ErrInvalidProfile", err)
	}
}

func TestGenerateEmptyRequirements(t *testing.T) {
	out, err := Generate(sampleProfile(), jobanalysis.RequirementSet{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out.Rendered == "" {
		t.Fatal("rendered resume is empty")
	}
	// With no job skills the summary is left untouched.
	if out.Content.Summary != "Software engineer focused on backend systems." {
		t.Errorf("summary = %q", out.Content.Summary)
	}
}

func TestGenerateAppendsMissingSkills(t *testing.T) {
	req := jobanalysis.RequirementSet{
		RequiredSkills:  []string{"python", "kubernetes"},
		PreferredSkills: []string{"terraform"},
	}

	out, err := Generate(sampleProfile(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// The summary gains the job skills it does not already mention.
	if !strings.Contains(out.Content.Summary, "Experienced with python, kubernetes, terraform.") {
		t.Errorf("summary = %q", out.Content.Summary)
	}
	// Every experience description here is missing at least one job skill.
	for _, exp := range out.Content.WorkExperience {
		if !strings.Contains(exp.Description, "Utilized") {
			t.Errorf("description not enhanced: %q", exp.Description)
		}
	}
}

func TestGenerateSkillOrdering(t *testing.T) {
	req := jobanalysis.RequirementSet{RequiredSkills: []string{"postgresql"}}

	out, err := Generate(sampleProfile(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	technical := out.Content.Skills[profile.SkillsTechnical]
	if len(technical) == 0 || technical[0] != "PostgreSQL" {
		t.Errorf("technical skills = %v, want PostgreSQL first", technical)
	}
}

func TestGenerateCapsSections(t *testing.T) {
	p := sampleProfile()
	for i := 0; i < 6; i++ {
		p.WorkExperience = append(p.WorkExperience, profile.Experience{
			Company:   "Filler",
			Position:  "Engineer",
			StartDate: "2010-01",
		})
		p.Projects = append(p.Projects, profile.Project{Name: "Filler"})
		p.Education = append(p.Education, profile.Education{Institution: "Filler", Degree: "BA"})
	}

	out, err := Generate(p, jobanalysis.RequirementSet{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(out.Content.WorkExperience) > maxExperiences {
		t.Errorf("work experience entries = %d, want <= %d", len(out.Content.WorkExperience), maxExperiences)
	}
	if len(out.Content.Projects) > maxProjects {
		t.Errorf("projects = %d, want <= %d", len(out.Content.Projects), maxProjects)
	}
	if len(out.Content.Education) > maxEducation {
		t.Errorf("education entries = %d, want <= %d", len(out.Content.Education), maxEducation)
	}
}

func TestOptimizeLengthTrims(t *testing.T) {
	p := sampleProfile()
	// Inflate the resume well past the length cap.
	long := strings.Repeat("did a thing and then another thing ", 3)
	for i := 0; i < 4; i++ {
		p.WorkExperience = append(p.WorkExperience, profile.Experience{
			Company:     "Filler",
			Position:    "Engineer",
			StartDate:   "2010-01",
			Description: long,
			Achievements: []string{
				"First achievement", "Second achievement", "Third achievement",
			},
		})
	}
	p.Projects = append(p.Projects,
		profile.Project{Name: "One", Description: long},
		profile.Project{Name: "Two", Description: long},
		profile.Project{Name: "Three", Description: long},
	)

	if len(strings.Split(Format(p), "\n")) <= maxLines {
		t.Fatal("fixture does not exceed the length cap")
	}

	out := optimizeLength(p)

	if len(out.WorkExperience) != trimmedExperiences {
		t.Errorf("work experience entries = %d, want %d", len(out.WorkExperience), trimmedExperiences)
	}
	if len(out.Projects) != trimmedProjects {
		t.Errorf("projects = %d, want %d", len(out.Projects), trimmedProjects)
	}
	for i, exp := range out.WorkExperience {
		if len(exp.Achievements) > trimmedAchievements {
			t.Errorf("entry %d achievements = %d, want <= %d", i, len(exp.Achievements), trimmedAchievements)
		}
	}
}
