package tailor

import (
	"sort"
	"strconv"
	"strings"

	"matcher-backend/internal/profile"
)

const (
	maxAchievementLines = 3
	maxSkillsShown      = 8
	maxTechnologies     = 5
	notableGPA          = 3.5
)

// canonicalCategoryOrder fixes the section order for the well-known skill
// categories; any others follow alphabetically.
var canonicalCategoryOrder = []string{
	profile.SkillsTechnical,
	profile.SkillsSoft,
	profile.SkillsLanguages,
	profile.SkillsCertifications,
}

// Format renders the resume into plain text, sections separated by blank
// lines. An empty resume renders to "".
func Format(content profile.Profile) string {
	if content.IsZero() {
		return ""
	}

	var sections []string

	if header := formatHeader(content.PersonalInfo); header != "" {
		sections = append(sections, header, strings.Repeat("=", 60))
	}

	if content.Summary != "" {
		sections = append(sections, "PROFESSIONAL SUMMARY", strings.Repeat("-", 20), content.Summary)
	}

	if len(content.WorkExperience) > 0 {
		sections = append(sections, "WORK EXPERIENCE", strings.Repeat("-", 15))
		for _, exp := range content.WorkExperience {
			sections = append(sections, formatExperience(exp))
		}
	}

	if skillLines := formatSkills(content.Skills); len(skillLines) > 0 {
		sections = append(sections, "SKILLS", strings.Repeat("-", 6))
		sections = append(sections, skillLines...)
	}

	if len(content.Education) > 0 {
		sections = append(sections, "EDUCATION", strings.Repeat("-", 9))
		for _, edu := range content.Education {
			sections = append(sections, formatEducation(edu))
		}
	}

	if len(content.Projects) > 0 {
		sections = append(sections, "PROJECTS", strings.Repeat("-", 8))
		limit := len(content.Projects)
		if limit > maxProjects {
			limit = maxProjects
		}
		for _, proj := range content.Projects[:limit] {
			sections = append(sections, formatProject(proj))
		}
	}

	return strings.Join(sections, "\n\n")
}

func formatHeader(info profile.PersonalInfo) string {
	var lines []string
	if info.Name != "" {
		lines = append(lines, strings.ToUpper(info.Name))
	}
	var contact []string
	for _, field := range []string{info.Email, info.Phone, info.Address, info.LinkedIn} {
		if field != "" {
			contact = append(contact, field)
		}
	}
	if len(contact) > 0 {
		lines = append(lines, strings.Join(contact, " | "))
	}
	return strings.Join(lines, "\n")
}

func formatExperience(exp profile.Experience) string {
	var lines []string

	position := exp.Position
	if exp.Company != "" {
		if position != "" {
			position += " | " + exp.Company
		} else {
			position = exp.Company
		}
	}
	if position != "" {
		lines = append(lines, position)
	}

	if exp.StartDate != "" {
		dates := exp.StartDate + " - "
		if exp.EndDate != "" {
			dates += exp.EndDate
		} else {
			dates += "Present"
		}
		lines = append(lines, dates)
	}

	if exp.Description != "" {
		lines = append(lines, "• "+exp.Description)
	}
	limit := len(exp.Achievements)
	if limit > maxAchievementLines {
		limit = maxAchievementLines
	}
	for _, achievement := range exp.Achievements[:limit] {
		lines = append(lines, "• "+achievement)
	}

	return strings.Join(lines, "\n")
}

func formatSkills(skills map[string][]string) []string {
	var lines []string
	for _, category := range orderedCategories(skills) {
		list := skills[category]
		if len(list) == 0 {
			continue
		}
		if len(list) > maxSkillsShown {
			list = list[:maxSkillsShown]
		}
		lines = append(lines, categoryTitle(category)+": "+strings.Join(list, ", "))
	}
	return lines
}

// orderedCategories yields the canonical categories first, then any extra
// ones alphabetically, so rendering is deterministic.
func orderedCategories(skills map[string][]string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, category := range canonicalCategoryOrder {
		if _, ok := skills[category]; ok {
			out = append(out, category)
			seen[category] = true
		}
	}
	var extra []string
	for category := range skills {
		if !seen[category] {
			extra = append(extra, category)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

func categoryTitle(category string) string {
	words := strings.Split(strings.ReplaceAll(category, "_", " "), " ")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

func formatEducation(edu profile.Education) string {
	var lines []string

	degree := edu.Degree
	if edu.Field != "" {
		if degree != "" {
			degree += " in " + edu.Field
		} else {
			degree = edu.Field
		}
	}
	if degree != "" {
		lines = append(lines, degree)
	}

	institution := edu.Institution
	if edu.GraduationDate != "" {
		if institution != "" {
			institution += " | " + edu.GraduationDate
		} else {
			institution = edu.GraduationDate
		}
	}
	if institution != "" {
		lines = append(lines, institution)
	}

	if edu.GPA >= notableGPA {
		lines = append(lines, "GPA: "+strconv.FormatFloat(edu.GPA, 'g', -1, 64))
	}

	return strings.Join(lines, "\n")
}

func formatProject(proj profile.Project) string {
	var lines []string
	if proj.Name != "" {
		lines = append(lines, proj.Name)
	}
	if proj.Description != "" {
		lines = append(lines, "• "+proj.Description)
	}
	if len(proj.Technologies) > 0 {
		techs := proj.Technologies
		if len(techs) > maxTechnologies {
			techs = techs[:maxTechnologies]
		}
		lines = append(lines, "Technologies: "+strings.Join(techs, ", "))
	}
	if proj.URL != "" {
		lines = append(lines, "URL: "+proj.URL)
	}
	return strings.Join(lines, "\n")
}
