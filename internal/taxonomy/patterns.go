package taxonomy

import (
	"regexp"
	"strings"
	"sync"
)

// Pattern families used by the job analyzer. All are compiled once and
// read-only afterwards.

// skillPatternGroups mirrors the four families of skill terms the analyzer
// scans for. Each group becomes one word-bounded alternation built from the
// vocabulary categories.
var skillPatternGroups = [][]Category{
	{CategoryLanguage, CategoryFramework, CategoryDatabase},
	{CategoryCloud, CategoryTool},
	{CategoryConcept},
	{CategoryMethodology},
}

var skillPatterns = sync.OnceValue(func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(skillPatternGroups))
	for _, group := range skillPatternGroups {
		names := TermNames(group...)
		quoted := make([]string, len(names))
		for i, name := range names {
			quoted[i] = regexp.QuoteMeta(name)
		}
		patterns = append(patterns, regexp.MustCompile(`(?i)\b(?:`+strings.Join(quoted, "|")+`)\b`))
	}
	return patterns
})

// SkillPatterns returns the compiled skill alternations, one per family.
func SkillPatterns() []*regexp.Regexp {
	return skillPatterns()
}

var (
	// Ordered experience-duration patterns; first match wins.
	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`),
		regexp.MustCompile(`(?i)(?:minimum|min|at least)\s*(\d+)\s*(?:years?|yrs?)`),
		regexp.MustCompile(`(?i)(\d+)-(\d+)\s*(?:years?|yrs?)`),
	}

	// Fallback for a bare "3+ years" with no trailing qualifier.
	experiencePlusPattern = regexp.MustCompile(`(?i)(\d+)\+\s*(?:years?|yrs?)`)

	// Ordered education patterns; first match wins.
	educationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:bachelor|bs|ba|master|ms|ma|phd|doctorate)\b`),
		regexp.MustCompile(`(?i)\b(?:degree|diploma|certification)\b`),
		regexp.MustCompile(`(?i)\b(?:computer science|engineering|mathematics|statistics)\b`),
	}
)

// ExperiencePatterns returns the ordered experience-duration patterns.
func ExperiencePatterns() []*regexp.Regexp {
	return experiencePatterns
}

// ExperiencePlusPattern returns the dedicated "N+ years" fallback pattern.
func ExperiencePlusPattern() *regexp.Regexp {
	return experiencePlusPattern
}

// EducationPatterns returns the ordered degree/field patterns.
func EducationPatterns() []*regexp.Regexp {
	return educationPatterns
}
