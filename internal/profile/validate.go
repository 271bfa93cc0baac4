package profile

import (
	"fmt"
	"strings"
)

// Validate checks the profile against the schema the boundary layer expects
// before storing or tailoring. It returns every problem found, empty when
// the profile is valid.
func Validate(p Profile) []string {
	var problems []string

	if strings.TrimSpace(p.PersonalInfo.Name) == "" {
		problems = append(problems, "personal_info.name is required")
	}
	email := strings.TrimSpace(p.PersonalInfo.Email)
	if email == "" {
		problems = append(problems, "personal_info.email is required")
	} else if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		problems = append(problems, "personal_info.email is not a valid email address")
	}

	for i, exp := range p.WorkExperience {
		if strings.TrimSpace(exp.Company) == "" {
			problems = append(problems, fmt.Sprintf("work_experience[%d].company is required", i))
		}
		if strings.TrimSpace(exp.Position) == "" {
			problems = append(problems, fmt.Sprintf("work_experience[%d].position is required", i))
		}
		if strings.TrimSpace(exp.StartDate) == "" {
			problems = append(problems, fmt.Sprintf("work_experience[%d].start_date is required", i))
		}
	}

	for i, edu := range p.Education {
		if strings.TrimSpace(edu.Institution) == "" {
			problems = append(problems, fmt.Sprintf("education[%d].institution is required", i))
		}
		if strings.TrimSpace(edu.Degree) == "" {
			problems = append(problems, fmt.Sprintf("education[%d].degree is required", i))
		}
	}

	return problems
}
