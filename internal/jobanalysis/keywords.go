// Package jobanalysis extracts keywords and structured requirements from
// job descriptions and scores candidate profiles against them.
package jobanalysis

import (
	"regexp"
	"sort"
	"strings"

	"matcher-backend/internal/taxonomy"
)

const maxKeywords = 20

var nonWordChars = regexp.MustCompile(`[^\w\s]`)

// Analyzer stopwords. This filter pass is deliberately lighter than the one
// used by the similarity scorer: no lemmatization, smaller stopword list.
var keywordStopwords = buildStopwordSet(`
	the a an and or but in on at to for of with by from up about into through
	during before after above below between among is are was were be been
	being have has had do does did will would could should may might must can
	this that these those
`)

func buildStopwordSet(words string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(words) {
		set[w] = true
	}
	return set
}

// ExtractKeywords returns up to 20 keywords from the job description,
// most frequent first, ties broken by first appearance. The candidate pool
// merges taxonomy skill matches, filtered single words, and contiguous
// 2- and 3-word phrases. Empty input yields an empty slice.
func ExtractKeywords(jobDescription string) []string {
	if strings.TrimSpace(jobDescription) == "" {
		return nil
	}

	text := strings.ToLower(jobDescription)

	var candidates []string
	for _, pattern := range taxonomy.SkillPatterns() {
		candidates = append(candidates, pattern.FindAllString(text, -1)...)
	}

	words := filterWords(text)
	candidates = append(candidates, words...)
	candidates = append(candidates, phrases(words)...)

	return topByFrequency(candidates, maxKeywords)
}

// filterWords strips punctuation and drops stopwords and short words.
func filterWords(lowered string) []string {
	cleaned := nonWordChars.ReplaceAllString(lowered, " ")
	var out []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 2 || keywordStopwords[word] {
			continue
		}
		out = append(out, word)
	}
	return out
}

// phrases emits every contiguous 2-word and 3-word phrase.
func phrases(words []string) []string {
	var out []string
	for i := 0; i+1 < len(words); i++ {
		out = append(out, words[i]+" "+words[i+1])
		if i+2 < len(words) {
			out = append(out, words[i]+" "+words[i+1]+" "+words[i+2])
		}
	}
	return out
}

// topByFrequency counts the multiset and returns the limit most frequent
// entries; equal counts keep first-encountered order.
func topByFrequency(candidates []string, limit int) []string {
	counts := make(map[string]int, len(candidates))
	firstSeen := make(map[string]int, len(candidates))
	var order []string
	for i, c := range candidates {
		if _, seen := counts[c]; !seen {
			firstSeen[c] = i
			order = append(order, c)
		}
		counts[c]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}
