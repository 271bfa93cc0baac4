package textnorm

import (
	"reflect"
	"testing"
)

func TestNormalizeEmptyInput(t *testing.T) {
	cases := []string{"", "   ", "\n\t"}
	for _, input := range cases {
		if got := Normalize(input); len(got) != 0 {
			t.Errorf("Normalize(%q) = %v, want empty", input, got)
		}
	}
}

func TestNormalizeStripsDigitsAndPunctuation(t *testing.T) {
	got := Normalize("5+ years of C++ experience, $120k salary!")
	for _, token := range got {
		for _, r := range token {
			if r < 'a' || r > 'z' {
				t.Fatalf("token %q contains non-letter rune %q", token, r)
			}
		}
	}
	want := []string{"year", "experience", "salary"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalizeDropsStopwordsAndShortTokens(t *testing.T) {
	got := Normalize("The cat is on a big mat")
	// "the", "is", "on", "a" are stopwords; "cat", "big", "mat" survive.
	want := []string{"cat", "big", "mat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalizeLemmatizes(t *testing.T) {
	got := Normalize("engineers built libraries and services for companies")
	want := []string{"engineer", "built", "library", "service", "company"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestLemma(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"services", "service"},
		{"libraries", "library"},
		{"matches", "match"},
		{"wishes", "wish"},
		{"classes", "class"},
		{"boxes", "box"},
		{"quizzes", "quizz"},
		{"children", "child"},
		{"people", "person"},
		{"analyses", "analysis"},
		{"business", "business"},
		{"status", "status"},
		{"python", "python"},
		{"aws", "aws"},
		{"gas", "gas"},
		{"skills", "skill"},
	}
	for _, tc := range cases {
		if got := Lemma(tc.in); got != tc.want {
			t.Errorf("Lemma(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsStopword(t *testing.T) {
	if !IsStopword("the") || !IsStopword("The") {
		t.Error("expected 'the' to be a stopword")
	}
	if IsStopword("python") {
		t.Error("did not expect 'python' to be a stopword")
	}
}
