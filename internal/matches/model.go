package matches

import (
	"time"

	"matcher-backend/internal/match"
)

// Resume is a stored resume text. StorageKey points at the original
// uploaded file in the object store and is empty for raw-text submissions.
type Resume struct {
	ID            string
	CandidateName string
	Content       string
	StorageKey    string
	CreatedAt     time.Time
}

// JobDescription is a stored job description text.
type JobDescription struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
}

// Match is one scored resume/job pairing with its report.
type Match struct {
	ID               string
	ResumeID         string
	JobDescriptionID string
	Report           match.Report
	CreatedAt        time.Time
}
