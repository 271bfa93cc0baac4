package jobseeker

import (
	"time"

	"matcher-backend/internal/jobanalysis"
	"matcher-backend/internal/profile"
)

type profileResponse struct {
	ProfileID string          `json:"profileId"`
	Profile   profile.Profile `json:"profile"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func toProfileResponse(rec ProfileRecord) profileResponse {
	return profileResponse{
		ProfileID: rec.ID,
		Profile:   rec.Profile,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

type analysisResponse struct {
	AnalysisID     string                     `json:"analysisId"`
	ProfileID      string                     `json:"profileId,omitempty"`
	Keywords       []string                   `json:"keywords"`
	Requirements   jobanalysis.RequirementSet `json:"requirements"`
	RelevanceScore float64                    `json:"relevanceScore"`
	CreatedAt      time.Time                  `json:"createdAt"`
}

func toAnalysisResponse(a Analysis) analysisResponse {
	keywords := a.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return analysisResponse{
		AnalysisID:     a.ID,
		ProfileID:      a.ProfileID,
		Keywords:       keywords,
		Requirements:   a.Requirements,
		RelevanceScore: a.RelevanceScore,
		CreatedAt:      a.CreatedAt,
	}
}

type generatedResponse struct {
	GeneratedResumeID string          `json:"generatedResumeId"`
	ProfileID         string          `json:"profileId"`
	AnalysisID        string          `json:"analysisId,omitempty"`
	Content           profile.Profile `json:"content"`
	Rendered          string          `json:"rendered"`
	ExportKey         string          `json:"exportKey,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

func toGeneratedResponse(gen GeneratedResume) generatedResponse {
	return generatedResponse{
		GeneratedResumeID: gen.ID,
		ProfileID:         gen.ProfileID,
		AnalysisID:        gen.AnalysisID,
		Content:           gen.Content,
		Rendered:          gen.Rendered,
		ExportKey:         gen.ExportKey,
		CreatedAt:         gen.CreatedAt,
	}
}
