package match

import (
	"math"
	"reflect"
	"testing"
)

func TestTfidfCosineIdentical(t *testing.T) {
	doc := []string{"python", "backend", "service", "python"}
	if got := tfidfCosine(doc, doc); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("cosine of identical docs = %f, want 1.0", got)
	}
}

func TestTfidfCosineDisjoint(t *testing.T) {
	a := []string{"python", "django"}
	b := []string{"cobol", "fortran"}
	if got := tfidfCosine(a, b); got != 0 {
		t.Errorf("cosine of disjoint docs = %f, want 0", got)
	}
}

func TestTfidfCosineOrderOfArguments(t *testing.T) {
	a := []string{"python", "django", "sql"}
	b := []string{"python", "aws", "sql", "docker"}
	ab := tfidfCosine(a, b)
	ba := tfidfCosine(b, a)
	if math.Abs(ab-ba) > 1e-12 {
		t.Errorf("cosine not symmetric: %f vs %f", ab, ba)
	}
	if ab <= 0 || ab >= 1 {
		t.Errorf("partial overlap cosine = %f, want within (0,1)", ab)
	}
}

func TestWithBigrams(t *testing.T) {
	got := withBigrams([]string{"data", "analysis", "pipeline"})
	want := []string{"data", "analysis", "pipeline", "data analysis", "analysis pipeline"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("withBigrams = %v, want %v", got, want)
	}
}

func TestTopTermsLimitAndDeterminism(t *testing.T) {
	countsA := map[string]int{"a": 3, "b": 2, "c": 1}
	countsB := map[string]int{"b": 2, "d": 1}
	got := topTerms(countsA, countsB, 3)
	// b has total 4, a has 3, then c and d tie at 1: lexicographic keeps c.
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("topTerms = %v, want %v", got, want)
	}
}
