package jobseeker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"matcher-backend/internal/jobanalysis"
	"matcher-backend/internal/profile"
	"matcher-backend/internal/shared/metrics"
	"matcher-backend/internal/shared/storage/object"
	"matcher-backend/internal/shared/telemetry"
	"matcher-backend/internal/tailor"
)

// Service contains business logic for the job-seeker pipeline.
type Service struct {
	Repo  Repo
	Store object.ObjectStore
}

// SaveProfile validates and stores a new profile.
func (s *Service) SaveProfile(ctx context.Context, p profile.Profile) (ProfileRecord, error) {
	if issues := profile.Validate(p); len(issues) > 0 {
		return ProfileRecord{}, &ValidationError{Issues: issues}
	}

	now := time.Now().UTC()
	rec := ProfileRecord{
		ID:        uuid.NewString(),
		Profile:   p,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.CreateProfile(ctx, rec); err != nil {
		return ProfileRecord{}, err
	}
	return rec, nil
}

// UpdateProfile validates and replaces an existing profile.
func (s *Service) UpdateProfile(ctx context.Context, profileID string, p profile.Profile) (ProfileRecord, error) {
	if strings.TrimSpace(profileID) == "" {
		return ProfileRecord{}, ErrNotFound
	}
	if issues := profile.Validate(p); len(issues) > 0 {
		return ProfileRecord{}, &ValidationError{Issues: issues}
	}

	rec := ProfileRecord{
		ID:        profileID,
		Profile:   p,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.Repo.UpdateProfile(ctx, rec); err != nil {
		return ProfileRecord{}, err
	}
	return rec, nil
}

// Profile returns a stored profile by ID, or the latest profile when the ID
// is empty.
func (s *Service) Profile(ctx context.Context, profileID string) (ProfileRecord, error) {
	if strings.TrimSpace(profileID) == "" {
		return s.Repo.LatestProfile(ctx)
	}
	return s.Repo.GetProfile(ctx, profileID)
}

// Analyze extracts keywords and requirements from a job description and,
// when a profile is available, scores the profile's relevance against it.
func (s *Service) Analyze(ctx context.Context, profileID, jobText string) (Analysis, error) {
	jobText = strings.TrimSpace(jobText)
	if jobText == "" {
		return Analysis{}, ErrMissingJobText
	}

	analysis := Analysis{
		ID:           uuid.NewString(),
		JobText:      jobText,
		Keywords:     jobanalysis.ExtractKeywords(jobText),
		Requirements: jobanalysis.IdentifyRequirements(jobText),
		CreatedAt:    time.Now().UTC(),
	}

	if strings.TrimSpace(profileID) != "" {
		rec, err := s.Repo.GetProfile(ctx, profileID)
		if err != nil {
			return Analysis{}, err
		}
		analysis.ProfileID = rec.ID
		analysis.RelevanceScore = jobanalysis.RelevanceScore(rec.Profile, analysis.Requirements)
	}

	if err := s.Repo.CreateAnalysis(ctx, analysis); err != nil {
		return Analysis{}, err
	}

	metrics.IncJobAnalyzed()
	telemetry.Info("jobseeker.analyzed", map[string]any{
		"analysis_id":     analysis.ID,
		"profile_id":      analysis.ProfileID,
		"keywords":        len(analysis.Keywords),
		"relevance_score": analysis.RelevanceScore,
	})
	return analysis, nil
}

// Generate builds a tailored resume for a profile against a job. The job
// side comes from a stored analysis when analysisID is set, otherwise from
// jobText analyzed on the fly.
func (s *Service) Generate(ctx context.Context, profileID, analysisID, jobText string) (GeneratedResume, error) {
	rec, err := s.Repo.GetProfile(ctx, profileID)
	if err != nil {
		return GeneratedResume{}, err
	}

	var req jobanalysis.RequirementSet
	switch {
	case strings.TrimSpace(analysisID) != "":
		analysis, getErr := s.Repo.GetAnalysis(ctx, analysisID)
		if getErr != nil {
			return GeneratedResume{}, getErr
		}
		req = analysis.Requirements
	case strings.TrimSpace(jobText) != "":
		req = jobanalysis.IdentifyRequirements(jobText)
	}

	tailored, err := tailor.Generate(rec.Profile, req)
	if err != nil {
		return GeneratedResume{}, err
	}

	gen := GeneratedResume{
		ID:         uuid.NewString(),
		ProfileID:  rec.ID,
		AnalysisID: strings.TrimSpace(analysisID),
		Content:    tailored.Content,
		Rendered:   tailored.Rendered,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.CreateGenerated(ctx, gen); err != nil {
		return GeneratedResume{}, err
	}

	metrics.IncResumeGenerated()
	telemetry.Info("jobseeker.generated", map[string]any{
		"generated_resume_id": gen.ID,
		"profile_id":          gen.ProfileID,
		"analysis_id":         gen.AnalysisID,
	})
	return gen, nil
}

// Export writes the rendered text of a generated resume to the object store
// and records the storage key.
func (s *Service) Export(ctx context.Context, generatedID string) (string, error) {
	gen, err := s.Repo.GetGenerated(ctx, generatedID)
	if err != nil {
		return "", err
	}
	if gen.ExportKey != "" {
		return gen.ExportKey, nil
	}

	key := fmt.Sprintf("exports/%s.txt", gen.ID)
	if _, err := s.Store.SaveWithKey(ctx, key, "text/plain; charset=utf-8", strings.NewReader(gen.Rendered)); err != nil {
		return "", fmt.Errorf("export resume: %w", err)
	}
	if err := s.Repo.SetExportKey(ctx, gen.ID, key); err != nil {
		return "", err
	}
	return key, nil
}

// Generated returns a stored generated resume by ID.
func (s *Service) Generated(ctx context.Context, generatedID string) (GeneratedResume, error) {
	if strings.TrimSpace(generatedID) == "" {
		return GeneratedResume{}, ErrNotFound
	}
	return s.Repo.GetGenerated(ctx, generatedID)
}

// History lists stored analyses newest-first.
func (s *Service) History(ctx context.Context, limit, offset int) ([]Analysis, error) {
	return s.Repo.ListAnalyses(ctx, limit, offset)
}

// IsValidationError reports whether err carries profile validation issues.
func IsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
