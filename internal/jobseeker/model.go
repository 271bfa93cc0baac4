package jobseeker

import (
	"time"

	"matcher-backend/internal/jobanalysis"
	"matcher-backend/internal/profile"
)

// ProfileRecord is a stored candidate profile.
type ProfileRecord struct {
	ID        string
	Profile   profile.Profile
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Analysis is one stored job description analysis.
type Analysis struct {
	ID             string
	ProfileID      string
	JobText        string
	Keywords       []string
	Requirements   jobanalysis.RequirementSet
	RelevanceScore float64
	CreatedAt      time.Time
}

// GeneratedResume is one stored tailored resume.
type GeneratedResume struct {
	ID         string
	ProfileID  string
	AnalysisID string
	Content    profile.Profile
	Rendered   string
	ExportKey  string
	CreatedAt  time.Time
}
