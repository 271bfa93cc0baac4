package matches

import "context"

// Repo defines persistence operations for the matching pipeline.
type Repo interface {
	CreateResume(ctx context.Context, resume Resume) error
	CreateJobDescription(ctx context.Context, jd JobDescription) error
	CreateMatch(ctx context.Context, m Match) error
	GetMatch(ctx context.Context, matchID string) (Match, error)
	ListMatches(ctx context.Context, limit, offset int) ([]Match, error)
}
