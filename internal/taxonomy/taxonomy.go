// Package taxonomy is the shared skill-taxonomy and pattern registry.
// The match engine consumes the tagged vocabulary for substring extraction;
// the job analyzer consumes the compiled pattern families built from the
// same vocabulary, so the two engines cannot drift apart.
package taxonomy

import "strings"

// Category tags a vocabulary term.
type Category string

const (
	CategoryLanguage    Category = "language"
	CategoryFramework   Category = "framework"
	CategoryDatabase    Category = "database"
	CategoryCloud       Category = "cloud"
	CategoryTool        Category = "tool"
	CategoryConcept     Category = "concept"
	CategoryMethodology Category = "methodology"
)

// Term is a canonical skill name with its category tag.
type Term struct {
	Name     string
	Category Category
}

// vocabulary is the fixed list of known technical terms. Order matters: it
// is the deterministic output order for extraction and the build order for
// the pattern families.
var vocabulary = []Term{
	{"python", CategoryLanguage},
	{"java", CategoryLanguage},
	{"javascript", CategoryLanguage},
	{"c++", CategoryLanguage},
	{"c#", CategoryLanguage},
	{"sql", CategoryLanguage},
	{"html", CategoryLanguage},
	{"css", CategoryLanguage},

	{"react", CategoryFramework},
	{"angular", CategoryFramework},
	{"vue", CategoryFramework},
	{"node.js", CategoryFramework},
	{"django", CategoryFramework},
	{"flask", CategoryFramework},
	{"tensorflow", CategoryFramework},
	{"pytorch", CategoryFramework},
	{"pandas", CategoryFramework},
	{"numpy", CategoryFramework},
	{"scikit-learn", CategoryFramework},

	{"mongodb", CategoryDatabase},
	{"mysql", CategoryDatabase},
	{"postgresql", CategoryDatabase},

	{"aws", CategoryCloud},
	{"azure", CategoryCloud},
	{"gcp", CategoryCloud},
	{"docker", CategoryCloud},
	{"kubernetes", CategoryCloud},
	{"terraform", CategoryCloud},

	{"git", CategoryTool},
	{"jenkins", CategoryTool},
	{"linux", CategoryTool},
	{"excel", CategoryTool},
	{"power bi", CategoryTool},
	{"tableau", CategoryTool},

	{"machine learning", CategoryConcept},
	{"data analysis", CategoryConcept},
	{"data science", CategoryConcept},
	{"artificial intelligence", CategoryConcept},

	{"agile", CategoryMethodology},
	{"scrum", CategoryMethodology},
	{"devops", CategoryMethodology},
	{"ci/cd", CategoryMethodology},
	{"microservices", CategoryMethodology},
	{"rest api", CategoryMethodology},
	{"project management", CategoryMethodology},
}

// Vocabulary returns a copy of the full tagged term list.
func Vocabulary() []Term {
	out := make([]Term, len(vocabulary))
	copy(out, vocabulary)
	return out
}

// TermNames returns the names of all terms in the given categories, in
// vocabulary order. With no categories it returns every term name.
func TermNames(categories ...Category) []string {
	want := make(map[Category]bool, len(categories))
	for _, c := range categories {
		want[c] = true
	}
	var names []string
	for _, term := range vocabulary {
		if len(categories) == 0 || want[term.Category] {
			names = append(names, term.Name)
		}
	}
	return names
}

// ExtractSkills returns every vocabulary term contained in the text,
// matched case-insensitively against the raw (non-normalized) text so that
// multi-word terms like "machine learning" survive. The result is
// duplicate-free and in vocabulary order, so extraction is deterministic.
func ExtractSkills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lowered := strings.ToLower(text)
	var found []string
	for _, term := range vocabulary {
		if strings.Contains(lowered, term.Name) {
			found = append(found, term.Name)
		}
	}
	return found
}
