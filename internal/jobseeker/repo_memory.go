package jobseeker

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu        sync.RWMutex
	profiles  map[string]ProfileRecord
	analyses  []Analysis
	generated map[string]GeneratedResume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		profiles:  make(map[string]ProfileRecord),
		generated: make(map[string]GeneratedResume),
	}
}

// CreateProfile stores a profile.
func (r *MemoryRepo) CreateProfile(ctx context.Context, rec ProfileRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[rec.ID] = rec
	return nil
}

// UpdateProfile replaces a stored profile.
func (r *MemoryRepo) UpdateProfile(ctx context.Context, rec ProfileRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.profiles[rec.ID]
	if !ok {
		return ErrNotFound
	}
	rec.CreatedAt = existing.CreatedAt
	r.profiles[rec.ID] = rec
	return nil
}

// GetProfile returns a profile by ID.
func (r *MemoryRepo) GetProfile(ctx context.Context, profileID string) (ProfileRecord, error) {
	if err := ctx.Err(); err != nil {
		return ProfileRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.profiles[profileID]
	if !ok {
		return ProfileRecord{}, ErrNotFound
	}
	return rec, nil
}

// LatestProfile returns the most recently updated profile.
func (r *MemoryRepo) LatestProfile(ctx context.Context) (ProfileRecord, error) {
	if err := ctx.Err(); err != nil {
		return ProfileRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest ProfileRecord
	found := false
	for _, rec := range r.profiles {
		if !found || rec.UpdatedAt.After(latest.UpdatedAt) {
			latest = rec
			found = true
		}
	}
	if !found {
		return ProfileRecord{}, ErrNotFound
	}
	return latest, nil
}

// CreateAnalysis stores an analysis.
func (r *MemoryRepo) CreateAnalysis(ctx context.Context, analysis Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.analyses = append(r.analyses, analysis)
	return nil
}

// GetAnalysis returns an analysis by ID.
func (r *MemoryRepo) GetAnalysis(ctx context.Context, analysisID string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.analyses {
		if a.ID == analysisID {
			return a, nil
		}
	}
	return Analysis{}, ErrNotFound
}

// ListAnalyses returns analyses newest-first, honoring limit/offset.
func (r *MemoryRepo) ListAnalyses(ctx context.Context, limit, offset int) ([]Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 20
	}

	r.mu.RLock()
	out := make([]Analysis, len(r.analyses))
	copy(out, r.analyses)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if offset >= len(out) {
		return []Analysis{}, nil
	}
	end := len(out)
	if offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}

// CreateGenerated stores a generated resume.
func (r *MemoryRepo) CreateGenerated(ctx context.Context, gen GeneratedResume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generated[gen.ID] = gen
	return nil
}

// GetGenerated returns a generated resume by ID.
func (r *MemoryRepo) GetGenerated(ctx context.Context, generatedID string) (GeneratedResume, error) {
	if err := ctx.Err(); err != nil {
		return GeneratedResume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	gen, ok := r.generated[generatedID]
	if !ok {
		return GeneratedResume{}, ErrNotFound
	}
	return gen, nil
}

// SetExportKey records the export location for a generated resume.
func (r *MemoryRepo) SetExportKey(ctx context.Context, generatedID, exportKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	gen, ok := r.generated[generatedID]
	if !ok {
		return ErrNotFound
	}
	gen.ExportKey = exportKey
	r.generated[generatedID] = gen
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
