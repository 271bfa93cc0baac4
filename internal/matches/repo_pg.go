package matches

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// CreateResume inserts a resume row.
func (r *PGRepo) CreateResume(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, candidate_name, content, storage_key, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query, resume.ID, resume.CandidateName, resume.Content, resume.StorageKey, resume.CreatedAt)
	return err
}

// CreateJobDescription inserts a job description row.
func (r *PGRepo) CreateJobDescription(ctx context.Context, jd JobDescription) error {
	const query = `
INSERT INTO job_descriptions (id, title, content, created_at)
VALUES ($1, $2, $3, $4)`
	_, err := r.DB.ExecContext(ctx, query, jd.ID, jd.Title, jd.Content, jd.CreatedAt)
	return err
}

// CreateMatch inserts a match row with its report.
func (r *PGRepo) CreateMatch(ctx context.Context, m Match) error {
	const query = `
INSERT INTO resume_matches (
    id,
    resume_id,
    job_description_id,
    match_score,
    skill_match_percentage,
    matching_skills,
    missing_skills,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	matching, err := json.Marshal(emptyIfNil(m.Report.MatchingSkills))
	if err != nil {
		return fmt.Errorf("marshal matching skills: %w", err)
	}
	missing, err := json.Marshal(emptyIfNil(m.Report.MissingSkills))
	if err != nil {
		return fmt.Errorf("marshal missing skills: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		m.ID,
		m.ResumeID,
		m.JobDescriptionID,
		m.Report.MatchScore,
		m.Report.SkillMatchPercentage,
		matching,
		missing,
		m.CreatedAt,
	)
	return err
}

// GetMatch fetches one match row by ID.
func (r *PGRepo) GetMatch(ctx context.Context, matchID string) (Match, error) {
	const query = `
SELECT id, resume_id, job_description_id, match_score, skill_match_percentage, matching_skills, missing_skills, created_at
FROM resume_matches
WHERE id = $1`
	row := r.DB.QueryRowContext(ctx, query, matchID)
	m, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Match{}, ErrNotFound
		}
		return Match{}, err
	}
	return m, nil
}

// ListMatches lists match rows newest-first.
func (r *PGRepo) ListMatches(ctx context.Context, limit, offset int) ([]Match, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, resume_id, job_description_id, match_score, skill_match_percentage, matching_skills, missing_skills, created_at
FROM resume_matches
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (Match, error) {
	var m Match
	var matching, missing []byte
	if err := row.Scan(
		&m.ID,
		&m.ResumeID,
		&m.JobDescriptionID,
		&m.Report.MatchScore,
		&m.Report.SkillMatchPercentage,
		&matching,
		&missing,
		&m.CreatedAt,
	); err != nil {
		return Match{}, err
	}
	if len(matching) > 0 {
		if err := json.Unmarshal(matching, &m.Report.MatchingSkills); err != nil {
			return Match{}, fmt.Errorf("unmarshal matching skills: %w", err)
		}
	}
	if len(missing) > 0 {
		if err := json.Unmarshal(missing, &m.Report.MissingSkills); err != nil {
			return Match{}, fmt.Errorf("unmarshal missing skills: %w", err)
		}
	}
	return m, nil
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

var _ Repo = (*PGRepo)(nil)
