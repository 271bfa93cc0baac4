package matches

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu      sync.RWMutex
	resumes map[string]Resume
	jobs    map[string]JobDescription
	matches []Match
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		resumes: make(map[string]Resume),
		jobs:    make(map[string]JobDescription),
	}
}

// CreateResume stores a resume.
func (r *MemoryRepo) CreateResume(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resumes[resume.ID] = resume
	return nil
}

// CreateJobDescription stores a job description.
func (r *MemoryRepo) CreateJobDescription(ctx context.Context, jd JobDescription) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[jd.ID] = jd
	return nil
}

// CreateMatch stores a match.
func (r *MemoryRepo) CreateMatch(ctx context.Context, m Match) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches = append(r.matches, m)
	return nil
}

// GetMatch returns a match by ID.
func (r *MemoryRepo) GetMatch(ctx context.Context, matchID string) (Match, error) {
	if err := ctx.Err(); err != nil {
		return Match{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.matches {
		if r.matches[i].ID == matchID {
			return r.matches[i], nil
		}
	}
	return Match{}, ErrNotFound
}

// ListMatches returns matches newest-first, honoring limit/offset.
func (r *MemoryRepo) ListMatches(ctx context.Context, limit, offset int) ([]Match, error) {
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
	out := make([]Match, len(r.matches))
	copy(out, r.matches)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if offset >= len(out) {
		return []Match{}, nil
	}
	end := len(out)
	if offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
