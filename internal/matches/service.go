package matches

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"matcher-backend/internal/extract"
	"matcher-backend/internal/match"
	"matcher-backend/internal/shared/metrics"
	"matcher-backend/internal/shared/storage/object"
	"matcher-backend/internal/shared/telemetry"
)

// Service contains business logic for the matching pipeline. Store is
// optional; when set, uploaded resume files are kept alongside their
// extracted text.
type Service struct {
	Repo  Repo
	Store object.ObjectStore
}

// Compute scores a resume against a job description, stores both texts and
// the resulting report, and returns the match. Empty input on either side
// is rejected before the engine runs.
func (s *Service) Compute(ctx context.Context, candidateName, resumeText, jobTitle, jobText string) (Match, error) {
	return s.compute(ctx, candidateName, resumeText, "", jobTitle, jobText)
}

// ComputeFromUpload extracts text from an uploaded resume file, stores the
// original in the object store when one is configured, and scores the
// extracted text like Compute.
func (s *Service) ComputeFromUpload(ctx context.Context, candidateName, fileName, mimeType string, data []byte, jobTitle, jobText string) (Match, error) {
	resumeText, err := extract.Text(ctx, data, mimeType, fileName)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			return Match{}, err
		}
		return Match{}, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	var storageKey string
	if s.Store != nil {
		key, size, detected, err := s.Store.Save(ctx, fileName, bytes.NewReader(data))
		if err != nil {
			return Match{}, fmt.Errorf("store resume file: %w", err)
		}
		storageKey = key
		telemetry.Info("match.upload_stored", map[string]any{
			"storage_key": key,
			"size_bytes":  size,
			"mime_type":   detected,
		})
	}

	return s.compute(ctx, candidateName, resumeText, storageKey, jobTitle, jobText)
}

func (s *Service) compute(ctx context.Context, candidateName, resumeText, storageKey, jobTitle, jobText string) (Match, error) {
	resumeText = strings.TrimSpace(resumeText)
	jobText = strings.TrimSpace(jobText)
	if resumeText == "" || jobText == "" {
		return Match{}, ErrMissingInput
	}

	started := time.Now()
	report := match.Analyze(resumeText, jobText)
	metrics.ObserveMatchDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)

	now := time.Now().UTC()
	resume := Resume{
		ID:            uuid.NewString(),
		CandidateName: strings.TrimSpace(candidateName),
		Content:       resumeText,
		StorageKey:    storageKey,
		CreatedAt:     now,
	}
	jd := JobDescription{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(jobTitle),
		Content:   jobText,
		CreatedAt: now,
	}
	m := Match{
		ID:               uuid.NewString(),
		ResumeID:         resume.ID,
		JobDescriptionID: jd.ID,
		Report:           report,
		CreatedAt:        now,
	}

	if err := s.Repo.CreateResume(ctx, resume); err != nil {
		metrics.IncMatchFailed()
		return Match{}, err
	}
	if err := s.Repo.CreateJobDescription(ctx, jd); err != nil {
		metrics.IncMatchFailed()
		return Match{}, err
	}
	if err := s.Repo.CreateMatch(ctx, m); err != nil {
		metrics.IncMatchFailed()
		return Match{}, err
	}

	metrics.IncMatchComputed()
	telemetry.Info("match.computed", map[string]any{
		"match_id":    m.ID,
		"match_score": report.MatchScore,
	})
	return m, nil
}

// Get returns a stored match by ID.
func (s *Service) Get(ctx context.Context, matchID string) (Match, error) {
	if strings.TrimSpace(matchID) == "" {
		return Match{}, ErrNotFound
	}
	return s.Repo.GetMatch(ctx, matchID)
}

// History lists stored matches newest-first.
func (s *Service) History(ctx context.Context, limit, offset int) ([]Match, error) {
	return s.Repo.ListMatches(ctx, limit, offset)
}
