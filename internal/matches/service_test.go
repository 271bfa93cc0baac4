package matches

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"matcher-backend/internal/extract"
	"matcher-backend/internal/shared/storage/object/local"
)

const (
	sampleResume = `Experienced software engineer with Python and Django.
Built REST APIs backed by PostgreSQL and deployed to AWS with Docker.`
	sampleJob = `We are hiring a backend engineer.
Required skills: Python, Django, PostgreSQL.
Preferred: Kubernetes experience.`
)

func TestServiceComputePersistsEverything(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo}

	m, err := svc.Compute(context.Background(), "Jane Smith", sampleResume, "Backend Engineer", sampleJob)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if m.ID == "" || m.ResumeID == "" || m.JobDescriptionID == "" {
		t.Fatalf("missing ids: %+v", m)
	}
	if m.Report.MatchScore <= 0 {
		t.Errorf("MatchScore = %v, want > 0", m.Report.MatchScore)
	}

	stored, err := repo.GetMatch(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("GetMatch: %v", err)
	}
	if stored.Report.MatchScore != m.Report.MatchScore {
		t.Errorf("stored score = %v, want %v", stored.Report.MatchScore, m.Report.MatchScore)
	}
	if resume, ok := repo.resumes[m.ResumeID]; !ok || resume.CandidateName != "Jane Smith" {
		t.Errorf("resume not stored: %+v", resume)
	}
	if jd, ok := repo.jobs[m.JobDescriptionID]; !ok || jd.Title != "Backend Engineer" {
		t.Errorf("job description not stored: %+v", jd)
	}
}

func TestServiceComputeRejectsEmptyInput(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	cases := []struct {
		name   string
		resume string
		job    string
	}{
		{"empty resume", "", sampleJob},
		{"empty job", sampleResume, ""},
		{"whitespace only", "   \n\t", sampleJob},
		{"both empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Compute(context.Background(), "", tc.resume, "", tc.job); err != ErrMissingInput {
				t.Fatalf("err = %v, want ErrMissingInput", err)
			}
		})
	}
}

func TestServiceComputeFromUploadStoresOriginal(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo, Store: local.New(t.TempDir())}

	m, err := svc.ComputeFromUpload(
		context.Background(),
		"Jane Smith",
		"resume.txt",
		"text/plain",
		[]byte(sampleResume),
		"Backend Engineer",
		sampleJob,
	)
	if err != nil {
		t.Fatalf("ComputeFromUpload: %v", err)
	}

	resume, ok := repo.resumes[m.ResumeID]
	if !ok {
		t.Fatal("resume not stored")
	}
	if resume.StorageKey == "" {
		t.Fatal("expected storage key for uploaded file")
	}

	rc, err := svc.Store.Open(context.Background(), resume.StorageKey)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	body, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(body) != sampleResume {
		t.Fatal("stored file does not match upload")
	}
}

func TestServiceComputeFromUploadUnsupportedType(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	zipMagic := []byte{'P', 'K', 0x03, 0x04, 0, 0, 0, 0}
	_, err := svc.ComputeFromUpload(
		context.Background(),
		"",
		"archive.zip",
		"application/zip",
		zipMagic,
		"",
		sampleJob,
	)
	if !errors.Is(err, extract.ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
}

func TestServiceHistoryNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo}

	old := Match{ID: "old", CreatedAt: time.Now().Add(-time.Hour)}
	recent := Match{ID: "recent", CreatedAt: time.Now()}
	if err := repo.CreateMatch(context.Background(), old); err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}
	if err := repo.CreateMatch(context.Background(), recent); err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}

	list, err := svc.History(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].ID != "recent" || list[1].ID != "old" {
		t.Fatalf("order = %s, %s", list[0].ID, list[1].ID)
	}
}
