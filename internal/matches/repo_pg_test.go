package matches

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"matcher-backend/internal/match"
)

func TestPGRepoCreateMatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	m := Match{
		ID:               "match-1",
		ResumeID:         "resume-1",
		JobDescriptionID: "jd-1",
		Report: match.Report{
			MatchScore:           72.5,
			MatchingSkills:       []string{"python", "sql"},
			MissingSkills:        []string{"kubernetes"},
			SkillMatchPercentage: 66.67,
		},
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO resume_matches").
		WithArgs(
			m.ID,
			m.ResumeID,
			m.JobDescriptionID,
			m.Report.MatchScore,
			m.Report.SkillMatchPercentage,
			[]byte(`["python","sql"]`),
			[]byte(`["kubernetes"]`),
			m.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.CreateMatch(context.Background(), m); err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateMatchMarshalsNilSkillsAsEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	m := Match{
		ID:               "match-2",
		ResumeID:         "resume-2",
		JobDescriptionID: "jd-2",
		CreatedAt:        time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO resume_matches").
		WithArgs(
			m.ID,
			m.ResumeID,
			m.JobDescriptionID,
			0.0,
			0.0,
			[]byte(`[]`),
			[]byte(`[]`),
			m.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.CreateMatch(context.Background(), m); err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetMatchScansReport(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	created := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "resume_id", "job_description_id", "match_score",
		"skill_match_percentage", "matching_skills", "missing_skills", "created_at",
	}).AddRow("match-1", "resume-1", "jd-1", 72.5, 66.67, []byte(`["python"]`), []byte(`["aws"]`), created)

	mock.ExpectQuery("SELECT (.+) FROM resume_matches").
		WithArgs("match-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	m, err := repo.GetMatch(context.Background(), "match-1")
	if err != nil {
		t.Fatalf("GetMatch: %v", err)
	}
	if m.Report.MatchScore != 72.5 {
		t.Errorf("MatchScore = %v", m.Report.MatchScore)
	}
	if len(m.Report.MatchingSkills) != 1 || m.Report.MatchingSkills[0] != "python" {
		t.Errorf("MatchingSkills = %v", m.Report.MatchingSkills)
	}
	if len(m.Report.MissingSkills) != 1 || m.Report.MissingSkills[0] != "aws" {
		t.Errorf("MissingSkills = %v", m.Report.MissingSkills)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetMatchNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT (.+) FROM resume_matches").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "resume_id", "job_description_id", "match_score",
			"skill_match_percentage", "matching_skills", "missing_skills", "created_at",
		}))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetMatch(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
