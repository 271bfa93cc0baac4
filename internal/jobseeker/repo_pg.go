package jobseeker

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

// CreateProfile inserts a profile row with the full profile as JSONB.
func (r *PGRepo) CreateProfile(ctx context.Context, rec ProfileRecord) error {
	const query = `
INSERT INTO profiles (id, name, email, data, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	data, err := json.Marshal(rec.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	_, err = r.DB.ExecContext(
		ctx,
		query,
		rec.ID,
		rec.Profile.PersonalInfo.Name,
		rec.Profile.PersonalInfo.Email,
		data,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

// UpdateProfile replaces the stored profile document.
func (r *PGRepo) UpdateProfile(ctx context.Context, rec ProfileRecord) error {
	const query = `
UPDATE profiles
SET name = $1, email = $2, data = $3, updated_at = $4
WHERE id = $5`

	data, err := json.Marshal(rec.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	res, err := r.DB.ExecContext(
		ctx,
		query,
		rec.Profile.PersonalInfo.Name,
		rec.Profile.PersonalInfo.Email,
		data,
		rec.UpdatedAt,
		rec.ID,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetProfile fetches a profile row by ID.
func (r *PGRepo) GetProfile(ctx context.Context, profileID string) (ProfileRecord, error) {
	const query = `
SELECT id, data, created_at, updated_at
FROM profiles
WHERE id = $1`
	return r.scanProfile(r.DB.QueryRowContext(ctx, query, profileID))
}

// LatestProfile fetches the most recently updated profile.
func (r *PGRepo) LatestProfile(ctx context.Context) (ProfileRecord, error) {
	const query = `
SELECT id, data, created_at, updated_at
FROM profiles
ORDER BY updated_at DESC
LIMIT 1`
	return r.scanProfile(r.DB.QueryRowContext(ctx, query))
}

func (r *PGRepo) scanProfile(row *sql.Row) (ProfileRecord, error) {
	var rec ProfileRecord
	var data []byte
	if err := row.Scan(&rec.ID, &data, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProfileRecord{}, ErrNotFound
		}
		return ProfileRecord{}, err
	}
	if err := json.Unmarshal(data, &rec.Profile); err != nil {
		return ProfileRecord{}, fmt.Errorf("unmarshal profile: %w", err)
	}
	return rec, nil
}

// CreateAnalysis inserts a job analysis row.
func (r *PGRepo) CreateAnalysis(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO job_analyses (id, profile_id, job_text, keywords, requirements, relevance_score, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	keywords, err := json.Marshal(emptyIfNil(analysis.Keywords))
	if err != nil {
		return fmt.Errorf("marshal keywords: %w", err)
	}
	requirements, err := json.Marshal(analysis.Requirements)
	if err != nil {
		return fmt.Errorf("marshal requirements: %w", err)
	}

	var profileID sql.NullString
	if analysis.ProfileID != "" {
		profileID = sql.NullString{String: analysis.ProfileID, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		analysis.ID,
		profileID,
		analysis.JobText,
		keywords,
		requirements,
		analysis.RelevanceScore,
		analysis.CreatedAt,
	)
	return err
}

// GetAnalysis fetches a job analysis row by ID.
func (r *PGRepo) GetAnalysis(ctx context.Context, analysisID string) (Analysis, error) {
	const query = `
SELECT id, profile_id, job_text, keywords, requirements, relevance_score, created_at
FROM job_analyses
WHERE id = $1`

	var a Analysis
	var profileID sql.NullString
	var keywords, requirements []byte
	err := r.DB.QueryRowContext(ctx, query, analysisID).Scan(
		&a.ID,
		&profileID,
		&a.JobText,
		&keywords,
		&requirements,
		&a.RelevanceScore,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	if profileID.Valid {
		a.ProfileID = profileID.String
	}
	if len(keywords) > 0 {
		if err := json.Unmarshal(keywords, &a.Keywords); err != nil {
			return Analysis{}, fmt.Errorf("unmarshal keywords: %w", err)
		}
	}
	if len(requirements) > 0 {
		if err := json.Unmarshal(requirements, &a.Requirements); err != nil {
			return Analysis{}, fmt.Errorf("unmarshal requirements: %w", err)
		}
	}
	return a, nil
}

// ListAnalyses lists analyses newest-first.
func (r *PGRepo) ListAnalyses(ctx context.Context, limit, offset int) ([]Analysis, error) {
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
SELECT id, profile_id, job_text, keywords, requirements, relevance_score, created_at
FROM job_analyses
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		var a Analysis
		var profileID sql.NullString
		var keywords, requirements []byte
		if err := rows.Scan(
			&a.ID,
			&profileID,
			&a.JobText,
			&keywords,
			&requirements,
			&a.RelevanceScore,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		if profileID.Valid {
			a.ProfileID = profileID.String
		}
		if len(keywords) > 0 {
			if err := json.Unmarshal(keywords, &a.Keywords); err != nil {
				return nil, fmt.Errorf("unmarshal keywords: %w", err)
			}
		}
		if len(requirements) > 0 {
			if err := json.Unmarshal(requirements, &a.Requirements); err != nil {
				return nil, fmt.Errorf("unmarshal requirements: %w", err)
			}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// CreateGenerated inserts a generated resume row.
func (r *PGRepo) CreateGenerated(ctx context.Context, gen GeneratedResume) error {
	const query = `
INSERT INTO generated_resumes (id, profile_id, job_analysis_id, content, rendered, export_key, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	content, err := json.Marshal(gen.Content)
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}
	var analysisID sql.NullString
	if gen.AnalysisID != "" {
		analysisID = sql.NullString{String: gen.AnalysisID, Valid: true}
	}
	var exportKey sql.NullString
	if gen.ExportKey != "" {
		exportKey = sql.NullString{String: gen.ExportKey, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		gen.ID,
		gen.ProfileID,
		analysisID,
		content,
		gen.Rendered,
		exportKey,
		gen.CreatedAt,
	)
	return err
}

// GetGenerated fetches a generated resume row by ID.
func (r *PGRepo) GetGenerated(ctx context.Context, generatedID string) (GeneratedResume, error) {
	const query = `
SELECT id, profile_id, job_analysis_id, content, rendered, export_key, created_at
FROM generated_resumes
WHERE id = $1`

	var gen GeneratedResume
	var analysisID, exportKey sql.NullString
	var content []byte
	err := r.DB.QueryRowContext(ctx, query, generatedID).Scan(
		&gen.ID,
		&gen.ProfileID,
		&analysisID,
		&content,
		&gen.Rendered,
		&exportKey,
		&gen.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GeneratedResume{}, ErrNotFound
		}
		return GeneratedResume{}, err
	}
	if analysisID.Valid {
		gen.AnalysisID = analysisID.String
	}
	if exportKey.Valid {
		gen.ExportKey = exportKey.String
	}
	if err := json.Unmarshal(content, &gen.Content); err != nil {
		return GeneratedResume{}, fmt.Errorf("unmarshal content: %w", err)
	}
	return gen, nil
}

// SetExportKey records where a generated resume was exported.
func (r *PGRepo) SetExportKey(ctx context.Context, generatedID, exportKey string) error {
	const query = `
UPDATE generated_resumes
SET export_key = $1
WHERE id = $2`
	res, err := r.DB.ExecContext(ctx, query, exportKey, generatedID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

var _ Repo = (*PGRepo)(nil)
