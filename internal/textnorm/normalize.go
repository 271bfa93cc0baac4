// Package textnorm turns raw resume and job-description text into the
// normalized token stream consumed by the similarity scorer.
package textnorm

import (
	"regexp"
	"strings"
)

var nonLetter = regexp.MustCompile(`[^a-z\s]`)

const minTokenLen = 3

// Normalize lowercases the text, strips everything except letters and
// whitespace (digits included, so numeric experience figures are handled
// elsewhere on the raw text), tokenizes, drops stopwords and tokens shorter
// than three characters, and lemmatizes each surviving token.
// Empty input yields an empty token slice, never an error.
func Normalize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	cleaned := nonLetter.ReplaceAllString(strings.ToLower(text), " ")

	stop := stopwordSet()
	var tokens []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) < minTokenLen {
			continue
		}
		if _, skip := stop[word]; skip {
			continue
		}
		tokens = append(tokens, Lemma(word))
	}
	return tokens
}
