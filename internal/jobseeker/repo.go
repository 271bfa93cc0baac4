package jobseeker

import "context"

// Repo defines persistence operations for the job-seeker pipeline.
type Repo interface {
	CreateProfile(ctx context.Context, rec ProfileRecord) error
	UpdateProfile(ctx context.Context, rec ProfileRecord) error
	GetProfile(ctx context.Context, profileID string) (ProfileRecord, error)
	LatestProfile(ctx context.Context) (ProfileRecord, error)

	CreateAnalysis(ctx context.Context, analysis Analysis) error
	GetAnalysis(ctx context.Context, analysisID string) (Analysis, error)
	ListAnalyses(ctx context.Context, limit, offset int) ([]Analysis, error)

	CreateGenerated(ctx context.Context, gen GeneratedResume) error
	GetGenerated(ctx context.Context, generatedID string) (GeneratedResume, error)
	SetExportKey(ctx context.Context, generatedID, exportKey string) error
}
