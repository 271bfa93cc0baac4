package profile

import (
	"strings"
	"testing"
)

func validProfile() Profile {
	return Profile{
		PersonalInfo: PersonalInfo{Name: "Jane Smith", Email: "jane@example.com"},
		Summary:      "Backend engineer.",
		WorkExperience: []Experience{
			{Company: "Acme", Position: "Engineer", StartDate: "2021-03"},
		},
		Education: []Education{
			{Institution: "State University", Degree: "Bachelor of Science"},
		},
		Skills: map[string][]string{SkillsTechnical: {"Python"}},
	}
}

func TestValidateOK(t *testing.T) {
	if problems := Validate(validProfile()); len(problems) != 0 {
		t.Errorf("unexpected problems: %v", problems)
	}
}

func TestValidateMissingFields(t *testing.T) {
	p := validProfile()
	p.PersonalInfo.Name = ""
	p.WorkExperience[0].StartDate = ""
	p.Education[0].Degree = " "

	problems := Validate(p)
	if len(problems) != 3 {
		t.Fatalf("expected 3 problems, got %v", problems)
	}
	joined := strings.Join(problems, "; ")
	for _, want := range []string{"personal_info.name", "work_experience[0].start_date", "education[0].degree"} {
		if !strings.Contains(joined, want) {
			t.Errorf("problems missing %q: %v", want, problems)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	p := validProfile()
	p.PersonalInfo.Email = "not-an-email"
	problems := Validate(p)
	if len(problems) != 1 || !strings.Contains(problems[0], "email") {
		t.Errorf("expected single email problem, got %v", problems)
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := validProfile()
	p.Projects = []Project{{Name: "Tool", Technologies: []string{"Go"}}}
	clone := p.Clone()

	clone.WorkExperience[0].Company = "Changed"
	clone.Skills[SkillsTechnical][0] = "Changed"
	clone.Projects[0].Technologies[0] = "Changed"

	if p.WorkExperience[0].Company != "Acme" {
		t.Error("clone shares work experience backing array")
	}
	if p.Skills[SkillsTechnical][0] != "Python" {
		t.Error("clone shares skills slices")
	}
	if p.Projects[0].Technologies[0] != "Go" {
		t.Error("clone shares project technologies")
	}
}

func TestIsZero(t *testing.T) {
	if !(Profile{}).IsZero() {
		t.Error("empty profile should be zero")
	}
	if validProfile().IsZero() {
		t.Error("populated profile should not be zero")
	}
}
