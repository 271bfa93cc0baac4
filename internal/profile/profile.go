// Package profile defines the candidate profile shape shared by the job
// analyzer and the resume tailor. The engines treat profiles as read-only
// input; tailoring returns a reordered copy.
package profile

// Canonical skill category keys. Profiles may carry additional categories.
const (
	SkillsTechnical      = "technical"
	SkillsSoft           = "soft"
	SkillsLanguages      = "languages"
	SkillsCertifications = "certifications"
)

// Profile is the full candidate profile.
type Profile struct {
	PersonalInfo   PersonalInfo        `json:"personal_info"`
	Summary        string              `json:"summary"`
	WorkExperience []Experience        `json:"work_experience"`
	Education      []Education         `json:"education"`
	Skills         map[string][]string `json:"skills"`
	Projects       []Project           `json:"projects"`
}

// PersonalInfo holds contact details.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// Experience is one work-history entry. StartDate/EndDate are free-form
// strings; an empty EndDate means the position is current.
type Experience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Education is one education entry.
type Education struct {
	Institution    string  `json:"institution"`
	Degree         string  `json:"degree"`
	Field          string  `json:"field,omitempty"`
	GraduationDate string  `json:"graduation_date,omitempty"`
	GPA            float64 `json:"gpa,omitempty"`
}

// Project is one portfolio project.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// IsZero reports whether the profile carries no content at all.
func (p Profile) IsZero() bool {
	return p.PersonalInfo == (PersonalInfo{}) &&
		p.Summary == "" &&
		len(p.WorkExperience) == 0 &&
		len(p.Education) == 0 &&
		len(p.Skills) == 0 &&
		len(p.Projects) == 0
}

// Clone returns a deep copy, so callers can reorder or trim without
// touching the original.
func (p Profile) Clone() Profile {
	out := p
	out.WorkExperience = make([]Experience, len(p.WorkExperience))
	for i, exp := range p.WorkExperience {
		out.WorkExperience[i] = exp
		out.WorkExperience[i].Achievements = append([]string(nil), exp.Achievements...)
	}
	out.Education = append([]Education(nil), p.Education...)
	out.Projects = make([]Project, len(p.Projects))
	for i, proj := range p.Projects {
		out.Projects[i] = proj
		out.Projects[i].Technologies = append([]string(nil), proj.Technologies...)
	}
	if p.Skills != nil {
		out.Skills = make(map[string][]string, len(p.Skills))
		for category, list := range p.Skills {
			out.Skills[category] = append([]string(nil), list...)
		}
	}
	return out
}
