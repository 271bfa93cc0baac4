package main

// Offline demo of the matching and tailoring engines:
//   go run ./cmd/matchdemo -resume resume.txt -job job.txt

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"matcher-backend/internal/jobanalysis"
	"matcher-backend/internal/match"
	"matcher-backend/internal/profile"
	"matcher-backend/internal/tailor"
)

func main() {
	resumePath := flag.String("resume", "", "path to a plain-text resume (optional, sample used when empty)")
	jobPath := flag.String("job", "", "path to a plain-text job description (optional, sample used when empty)")
	flag.Parse()

	resumeText := sampleResume
	if *resumePath != "" {
		resumeText = mustRead(*resumePath)
	}
	jobText := sampleJob
	if *jobPath != "" {
		jobText = mustRead(*jobPath)
	}

	report := match.Analyze(resumeText, jobText)
	printJSON("match report", report)

	requirements := jobanalysis.IdentifyRequirements(jobText)
	printJSON("job requirements", requirements)
	printJSON("job keywords", jobanalysis.ExtractKeywords(jobText))

	p := sampleProfile()
	fmt.Printf("profile relevance: %.1f\n\n", jobanalysis.RelevanceScore(p, requirements))

	tailored, err := tailor.Generate(p, requirements)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tailoring failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("--- tailored resume ---")
	fmt.Println(tailored.Rendered)
}

func mustRead(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", path, err)
		os.Exit(1)
	}
	return string(data)
}

func printJSON(label string, v any) {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal %s: %v\n", label, err)
		os.Exit(1)
	}
	fmt.Printf("--- %s ---\n%s\n\n", label, payload)
}

const sampleResume = `Jane Smith
Senior Backend Engineer with 6 years of experience building data-heavy
services in Python and Go. Designed PostgreSQL schemas, built Docker-based
deployment pipelines and led a team of four engineers.`

const sampleJob = `Senior Backend Engineer

Required: 5+ years of experience with Python, Go and PostgreSQL.

Preferred: Docker and Kubernetes would be a plus.

Responsibilities:
- Design and build backend services for the matching platform
- Own the reliability of the analysis pipeline end to end

About us: we build tooling that helps candidates find the right role.`

func sampleProfile() profile.Profile {
	return profile.Profile{
		PersonalInfo: profile.PersonalInfo{
			Name:  "Jane Smith",
			Email: "jane@example.com",
			Phone: "555-0100",
		},
		Summary: "Backend engineer focused on data-heavy services.",
		WorkExperience: []profile.Experience{
			{
				Company:     "Globex",
				Position:    "Senior Engineer",
				StartDate:   "2021-02",
				Description: "Built matching services in Go and Python.",
				Achievements: []string{
					"Cut p99 latency of the scoring pipeline by 40%",
				},
			},
			{
				Company:     "Acme",
				Position:    "Engineer",
				StartDate:   "2017-06",
				EndDate:     "2021-01",
				Description: "Maintained billing services.",
			},
		},
		Education: []profile.Education{
			{
				Institution: "State University",
				Degree:      "BS",
				Field:       "Computer Science",
				GPA:         3.8,
			},
		},
		Skills: map[string][]string{
			profile.SkillsTechnical: {"Python", "Go", "PostgreSQL", "Docker"},
			profile.SkillsSoft:      {"Mentoring", "Communication"},
		},
		Projects: []profile.Project{
			{
				Name:         "Scheduler",
				Description:  "Distributed cron replacement.",
				Technologies: []string{"Go", "PostgreSQL"},
			},
		},
	}
}
