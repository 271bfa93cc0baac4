package tailor

import (
	"errors"
	"strings"

	"matcher-backend/internal/jobanalysis"
	"matcher-backend/internal/profile"
)

// ErrInvalidProfile is returned when resume generation is asked to run
// without any profile content. This is the one loud failure in the engines;
// extraction misses and empty job text all fail soft instead.
var ErrInvalidProfile = errors.New("profile data is required")

// Section and length limits for the generated resume.
const (
	maxLines             = 50 // roughly one to two pages
	maxExperiences       = 4
	maxSkillsPerCategory = 10
	maxEducation         = 3
	maxProjects          = 3
	maxSummarySkills     = 3
	maxDescriptionSkills = 2
	trimmedExperiences   = 3
	trimmedProjects      = 2
	trimmedAchievements  = 2
)

// TailoredResume is a reordered, trimmed copy of the source profile plus
// its rendered plain-text form. Ownership passes to the caller.
type TailoredResume struct {
	Content  profile.Profile `json:"content"`
	Rendered string          `json:"rendered"`
}

// Generate builds a tailored resume from a profile and one job's extracted
// requirements. The profile must carry content; the requirement set may be
// empty, in which case the original ordering is preserved.
func Generate(p profile.Profile, req jobanalysis.RequirementSet) (TailoredResume, error) {
	if p.IsZero() {
		return TailoredResume{}, ErrInvalidProfile
	}

	jobSkills := append(append([]string(nil), req.RequiredSkills...), req.PreferredSkills...)

	content := PrioritizeContent(p, req.RequiredSkills)
	content.Summary = tailoredSummary(p.Summary, jobSkills)
	content.WorkExperience = tailoredExperience(content.WorkExperience, jobSkills)
	content.Skills = tailoredSkills(content.Skills, jobSkills)
	content.Education = truncateEducation(content.Education)
	if len(content.Projects) > maxProjects {
		content.Projects = content.Projects[:maxProjects]
	}

	content = optimizeLength(content)

	return TailoredResume{Content: content, Rendered: Format(content)}, nil
}

// tailoredSummary appends a sentence naming up to three job skills not
// already mentioned in the summary.
func tailoredSummary(summary string, jobSkills []string) string {
	if summary == "" {
		return ""
	}
	lowered := strings.ToLower(summary)
	var missing []string
	for _, skill := range jobSkills {
		if len(missing) == maxSummarySkills {
			break
		}
		if !strings.Contains(lowered, strings.ToLower(skill)) {
			missing = append(missing, skill)
		}
	}
	if len(missing) == 0 {
		return summary
	}
	return summary + " Experienced with " + strings.Join(missing, ", ") + "."
}

// tailoredExperience keeps the top entries and augments each description
// with up to two job keywords it does not already mention.
func tailoredExperience(entries []profile.Experience, jobSkills []string) []profile.Experience {
	if len(entries) > maxExperiences {
		entries = entries[:maxExperiences]
	}
	for i := range entries {
		entries[i].Description = enhanceDescription(entries[i].Description, jobSkills)
	}
	return entries
}

func enhanceDescription(description string, jobSkills []string) string {
	if description == "" || len(jobSkills) == 0 {
		return description
	}
	lowered := strings.ToLower(description)
	var missing []string
	for _, skill := range jobSkills {
		if len(missing) == maxDescriptionSkills {
			break
		}
		if !strings.Contains(lowered, strings.ToLower(skill)) {
			missing = append(missing, skill)
		}
	}
	if len(missing) == 0 {
		return description
	}
	return description + " Utilized " + strings.Join(missing, ", ") + " to achieve results."
}

// tailoredSkills floats job-matching skills to the front of each category
// and caps each category.
func tailoredSkills(skills map[string][]string, jobSkills []string) map[string][]string {
	if len(skills) == 0 {
		return skills
	}
	loweredJob := lowerAll(jobSkills)
	out := make(map[string][]string, len(skills))
	for category, list := range skills {
		if len(list) == 0 {
			continue
		}
		var matched, rest []string
		for _, skill := range list {
			if skillMatchesAny(skill, loweredJob) {
				matched = append(matched, skill)
			} else {
				rest = append(rest, skill)
			}
		}
		combined := append(matched, rest...)
		if len(combined) > maxSkillsPerCategory {
			combined = combined[:maxSkillsPerCategory]
		}
		out[category] = combined
	}
	return out
}

func skillMatchesAny(skill string, loweredJob []string) bool {
	lowered := strings.ToLower(skill)
	for _, job := range loweredJob {
		if strings.Contains(lowered, job) {
			return true
		}
	}
	return false
}

func truncateEducation(entries []profile.Education) []profile.Education {
	if len(entries) > maxEducation {
		return entries[:maxEducation]
	}
	return entries
}

// optimizeLength renders the resume once and, if it exceeds the length
// cap, trims work experience, projects and per-entry achievements. The
// trim is applied a single time, not re-checked.
func optimizeLength(content profile.Profile) profile.Profile {
	rendered := Format(content)
	if len(strings.Split(rendered, "\n")) <= maxLines {
		return content
	}

	if len(content.WorkExperience) > trimmedExperiences {
		content.WorkExperience = content.WorkExperience[:trimmedExperiences]
	}
	if len(content.Projects) > trimmedProjects {
		content.Projects = content.Projects[:trimmedProjects]
	}
	for i := range content.WorkExperience {
		if len(content.WorkExperience[i].Achievements) > trimmedAchievements {
			content.WorkExperience[i].Achievements = content.WorkExperience[i].Achievements[:trimmedAchievements]
		}
	}
	return content
}
