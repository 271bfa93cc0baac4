package match

import (
	"math"
	"sort"
)

// maxFeatures caps the vocabulary at the most frequent unigrams+bigrams,
// matching the scorer's fixed feature cap.
const maxFeatures = 1000

// tfidfCosine computes cosine similarity between two tokenized documents
// using a TF-IDF weighting built from exactly this document pair. The
// vocabulary is rebuilt per call, so scoring is stateless, order-independent
// and reproducible. Both inputs must be non-empty.
func tfidfCosine(docA, docB []string) float64 {
	termsA := withBigrams(docA)
	termsB := withBigrams(docB)

	countsA := countTerms(termsA)
	countsB := countTerms(termsB)

	vocab := topTerms(countsA, countsB, maxFeatures)
	if len(vocab) == 0 {
		return 0
	}

	vecA := make([]float64, len(vocab))
	vecB := make([]float64, len(vocab))
	for i, term := range vocab {
		idf := inverseDocFreq(countsA[term] > 0, countsB[term] > 0)
		vecA[i] = float64(countsA[term]) * idf
		vecB[i] = float64(countsB[term]) * idf
	}

	return cosine(vecA, vecB)
}

// withBigrams appends every contiguous two-token phrase to the unigrams.
func withBigrams(tokens []string) []string {
	out := make([]string, 0, 2*len(tokens))
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}

func countTerms(terms []string) map[string]int {
	counts := make(map[string]int, len(terms))
	for _, term := range terms {
		counts[term]++
	}
	return counts
}

// topTerms selects up to limit terms by total pair frequency, ties broken
// lexicographically so the selection is deterministic.
func topTerms(countsA, countsB map[string]int, limit int) []string {
	totals := make(map[string]int, len(countsA)+len(countsB))
	for term, n := range countsA {
		totals[term] += n
	}
	for term, n := range countsB {
		totals[term] += n
	}

	terms := make([]string, 0, len(totals))
	for term := range totals {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if totals[terms[i]] != totals[terms[j]] {
			return totals[terms[i]] > totals[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}

// inverseDocFreq uses the smoothed formulation ln((1+n)/(1+df))+1 over the
// two-document corpus, so terms shared by both documents still carry weight.
func inverseDocFreq(inA, inB bool) float64 {
	df := 0
	if inA {
		df++
	}
	if inB {
		df++
	}
	const n = 2
	return math.Log(float64(1+n)/float64(1+df)) + 1
}

func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
