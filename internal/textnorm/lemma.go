package textnorm

import "strings"

// Irregular noun forms that the suffix rules below would mangle.
var irregularLemmas = map[string]string{
	"men":      "man",
	"women":    "woman",
	"children": "child",
	"people":   "person",
	"feet":     "foot",
	"teeth":    "tooth",
	"geese":    "goose",
	"mice":     "mouse",
	"lives":    "life",
	"leaves":   "leaf",
	"analyses": "analysis",
	"criteria": "criterion",
	"data":     "datum",
	"indices":  "index",
	"matrices": "matrix",
}

// Lemma reduces a lowercased token to its dictionary form. It covers noun
// plurals only: an irregular-form table first, then ordered suffix
// detachment rules. Tokens that match no rule pass through unchanged.
func Lemma(word string) string {
	if lemma, ok := irregularLemmas[word]; ok {
		return lemma
	}
	switch {
	case len(word) > 4 && strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "y"
	case hasAnySuffix(word, "ches", "shes", "sses", "xes", "zes"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ss") || strings.HasSuffix(word, "us") || strings.HasSuffix(word, "is"):
		return word
	case len(word) > 3 && strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "'s"):
		return word[:len(word)-1]
	}
	return word
}

func hasAnySuffix(word string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if len(word) > len(suffix) && strings.HasSuffix(word, suffix) {
			return true
		}
	}
	return false
}
