package matches

import (
	"time"

	"matcher-backend/internal/match"
)

// matchResponse is the outward-facing representation of a match.
type matchResponse struct {
	MatchID          string       `json:"matchId"`
	ResumeID         string       `json:"resumeId"`
	JobDescriptionID string       `json:"jobDescriptionId"`
	Report           match.Report `json:"report"`
	CreatedAt        time.Time    `json:"createdAt"`
}

func toResponse(m Match) matchResponse {
	return matchResponse{
		MatchID:          m.ID,
		ResumeID:         m.ResumeID,
		JobDescriptionID: m.JobDescriptionID,
		Report:           m.Report,
		CreatedAt:        m.CreatedAt,
	}
}
