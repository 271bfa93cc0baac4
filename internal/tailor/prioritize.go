// Package tailor reorders, trims and renders a candidate profile into a
// resume targeted at one job's requirements.
package tailor

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"matcher-backend/internal/profile"
)

// Relevance weights for content prioritization.
const (
	descriptionHitWeight = 1.0
	achievementHitWeight = 0.5
	technologyHitWeight  = 0.5
	recencyBonus         = 1.0
	recencyWindowYears   = 3
)

var yearRe = regexp.MustCompile(`\d{4}`)

// nowYear is swappable in tests.
var nowYear = func() int { return time.Now().Year() }

// PrioritizeContent returns a copy of the profile with work experience,
// skills and projects reordered by relevance to the job keywords. All sorts
// are stable; the caller's profile is never mutated.
func PrioritizeContent(p profile.Profile, jobKeywords []string) profile.Profile {
	keywords := lowerAll(jobKeywords)
	out := p.Clone()

	// Work experience: relevance descending, then start date descending so
	// ties prefer the more recent entry.
	scores := make([]float64, len(out.WorkExperience))
	for i, exp := range out.WorkExperience {
		scores[i] = experienceRelevance(exp, keywords)
	}
	order := make([]int, len(out.WorkExperience))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if scores[order[a]] != scores[order[b]] {
			return scores[order[a]] > scores[order[b]]
		}
		return out.WorkExperience[order[a]].StartDate > out.WorkExperience[order[b]].StartDate
	})
	sorted := make([]profile.Experience, len(order))
	for i, idx := range order {
		sorted[i] = out.WorkExperience[idx]
	}
	out.WorkExperience = sorted

	// Skills: job-relevant skills first within each category, stable
	// otherwise.
	for category, list := range out.Skills {
		sort.SliceStable(list, func(a, b int) bool {
			return skillRelevance(list[a], keywords) > skillRelevance(list[b], keywords)
		})
		out.Skills[category] = list
	}

	// Projects: relevance descending, stable.
	sort.SliceStable(out.Projects, func(a, b int) bool {
		return projectRelevance(out.Projects[a], keywords) > projectRelevance(out.Projects[b], keywords)
	})

	return out
}

// experienceRelevance counts keyword hits in the description, half-weighted
// hits in achievements, and adds a bonus for entries started within the
// last three calendar years.
func experienceRelevance(exp profile.Experience, keywords []string) float64 {
	score := 0.0
	description := strings.ToLower(exp.Description)
	for _, kw := range keywords {
		if strings.Contains(description, kw) {
			score += descriptionHitWeight
		}
	}
	for _, achievement := range exp.Achievements {
		lowered := strings.ToLower(achievement)
		for _, kw := range keywords {
			if strings.Contains(lowered, kw) {
				score += achievementHitWeight
			}
		}
	}
	if year := startYear(exp.StartDate); year > 0 && nowYear()-year <= recencyWindowYears {
		score += recencyBonus
	}
	return score
}

// skillRelevance is a binary flag: 1 when any job keyword contains, or is
// contained in, the skill string.
func skillRelevance(skill string, keywords []string) float64 {
	lowered := strings.ToLower(skill)
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) || strings.Contains(kw, lowered) {
			return 1
		}
	}
	return 0
}

// projectRelevance counts keyword hits in the description plus
// half-weighted hits in the technology list.
func projectRelevance(proj profile.Project, keywords []string) float64 {
	score := 0.0
	description := strings.ToLower(proj.Description)
	for _, kw := range keywords {
		if strings.Contains(description, kw) {
			score += descriptionHitWeight
		}
	}
	for _, tech := range proj.Technologies {
		lowered := strings.ToLower(tech)
		for _, kw := range keywords {
			if strings.Contains(lowered, kw) {
				score += technologyHitWeight
			}
		}
	}
	return score
}

func startYear(startDate string) int {
	m := yearRe.FindString(startDate)
	if m == "" {
		return 0
	}
	year := 0
	for _, r := range m {
		year = year*10 + int(r-'0')
	}
	return year
}

func lowerAll(list []string) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = strings.ToLower(s)
	}
	return out
}
