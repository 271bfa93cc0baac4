package match

import (
	"math"
	"reflect"
	"testing"
)

const sampleResume = `Experienced software engineer with 6 years building web services in
Python and Django. Designed PostgreSQL schemas, automated deployments with
Docker and AWS, and led agile delivery for three product teams.`

const sampleJob = `We are hiring a backend engineer. Required skills: Python, Django,
PostgreSQL and AWS. Experience with Docker is a plus. You will design web
services and work in an agile team.`

func TestScoreRange(t *testing.T) {
	score, resumeSkills, jdSkills := Score(sampleResume, sampleJob)
	if score < 0 || score > 100 {
		t.Fatalf("score %f out of [0,100]", score)
	}
	if len(resumeSkills) == 0 || len(jdSkills) == 0 {
		t.Fatalf("expected skills on both sides, got %v / %v", resumeSkills, jdSkills)
	}
	if score == 0 {
		t.Fatal("expected nonzero score for overlapping documents")
	}
}

func TestScoreEmptyInputFailsSoft(t *testing.T) {
	cases := []struct{ resume, job string }{
		{"", sampleJob},
		{sampleResume, ""},
		{"", ""},
		{"!!! 123 ...", sampleJob}, // normalizes to nothing
	}
	for _, tc := range cases {
		score, resumeSkills, jdSkills := Score(tc.resume, tc.job)
		if score != 0 || resumeSkills != nil || jdSkills != nil {
			t.Errorf("Score(%q, %q) = (%f, %v, %v), want zero values",
				tc.resume, tc.job, score, resumeSkills, jdSkills)
		}
	}
}

func TestScoreIdenticalDocuments(t *testing.T) {
	score, _, _ := Score(sampleResume, sampleResume)
	// Identical docs: cosine 1.0 and full skill overlap.
	if math.Abs(score-100) > 0.01 {
		t.Errorf("identical documents scored %f, want 100", score)
	}
}

func TestScoreSymmetricContent(t *testing.T) {
	a, _, _ := Score(sampleResume, sampleJob)
	b, _, _ := Score(sampleResume, sampleJob)
	if a != b {
		t.Errorf("repeated scoring drifted: %f vs %f", a, b)
	}
}

func TestAnalyzeReport(t *testing.T) {
	report := Analyze(sampleResume, sampleJob)

	if report.MatchScore < 0 || report.MatchScore > 100 {
		t.Errorf("match score %f out of range", report.MatchScore)
	}
	if report.SkillMatchPercentage < 0 || report.SkillMatchPercentage > 100 {
		t.Errorf("skill match percentage %f out of range", report.SkillMatchPercentage)
	}
	if report.MatchScore != round2(report.MatchScore) {
		t.Errorf("match score %f not rounded to 2 decimals", report.MatchScore)
	}

	jd := make(map[string]bool)
	for _, s := range report.JDSkills {
		jd[s] = true
	}
	for _, s := range report.MatchingSkills {
		if !jd[s] {
			t.Errorf("matching skill %q not in jd skills", s)
		}
	}
	resume := make(map[string]bool)
	for _, s := range report.ResumeSkills {
		resume[s] = true
	}
	for _, s := range report.MissingSkills {
		if resume[s] {
			t.Errorf("missing skill %q present in resume skills", s)
		}
		if !jd[s] {
			t.Errorf("missing skill %q not in jd skills", s)
		}
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	report := Analyze("", "anything")
	if report.MatchScore != 0 || report.SkillMatchPercentage != 0 {
		t.Errorf("expected zero report, got %+v", report)
	}
	if len(report.ResumeSkills) != 0 || len(report.MatchingSkills) != 0 {
		t.Errorf("expected empty skill sets, got %+v", report)
	}
}

func TestSetOps(t *testing.T) {
	a := []string{"python", "sql", "aws"}
	b := []string{"sql", "aws", "docker"}
	if got := intersect(a, b); !reflect.DeepEqual(got, []string{"sql", "aws"}) {
		t.Errorf("intersect = %v", got)
	}
	if got := subtract(b, a); !reflect.DeepEqual(got, []string{"docker"}) {
		t.Errorf("subtract = %v", got)
	}
}
