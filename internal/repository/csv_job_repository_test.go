package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/robinlwong/tech-talent-radar/internal/domain/job"
)

func writeCorpusCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestCSVLoadJobs(t *testing.T) {
	path := writeCorpusCSV(t, `id,title,company,category,position_level,employment_type,min_years_experience,salary_min,salary_max,salary_avg,date,skills
11111111-1111-1111-1111-111111111111,Cloud Engineer,Acme,Information Technology,Senior Executive,Full Time,3.0,5000,8000,6500,2024-06-15,Cloud/AWS|DevOps
22222222-2222-2222-2222-222222222222,Site Engineer,Gamma,Engineering,Executive,Contract,0,,,,,
`)

	repo := NewCSVJobRepository(path, nil)
	jobs, err := repo.LoadJobs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}

	first := jobs[0]
	if first.Title != "Cloud Engineer" || first.Category != job.CategoryIT {
		t.Fatalf("first job: %+v", first)
	}
	if first.MinYearsExperience != 3 || first.SalaryAvg != 6500 {
		t.Fatalf("numeric fields: years=%d avg=%v", first.MinYearsExperience, first.SalaryAvg)
	}
	if first.PostedAt == nil || first.PostedAt.Format("2006-01-02") != "2024-06-15" {
		t.Fatalf("date: %v", first.PostedAt)
	}

	if jobs[1].SalaryMin != 0 || jobs[1].PostedAt != nil {
		t.Fatalf("blank fields should stay zero: %+v", jobs[1])
	}
}

func TestCSVLoadJobsSkipsBadRows(t *testing.T) {
	path := writeCorpusCSV(t, `id,title,company,category
not-a-uuid,Broken Row,Acme,Information Technology
33333333-3333-3333-3333-333333333333,,Acme,Information Technology
44444444-4444-4444-4444-444444444444,Data Analyst,Acme,Information Technology
`)

	repo := NewCSVJobRepository(path, nil)
	jobs, err := repo.LoadJobs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Title != "Data Analyst" {
		t.Fatalf("expected only the valid row, got %v", jobs)
	}
}

func TestCSVLoadJobsUnknownCategoryCollapsesToOther(t *testing.T) {
	path := writeCorpusCSV(t, `id,title,category
55555555-5555-5555-5555-555555555555,Warehouse Lead,Logistics
`)

	repo := NewCSVJobRepository(path, nil)
	jobs, err := repo.LoadJobs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Category != job.CategoryOther {
		t.Fatalf("got %v", jobs)
	}
}

func TestCSVLoadJobsMissingColumns(t *testing.T) {
	path := writeCorpusCSV(t, "title,category\nCloud Engineer,Information Technology\n")

	repo := NewCSVJobRepository(path, nil)
	if _, err := repo.LoadJobs(context.Background()); err == nil {
		t.Fatalf("missing id column must fail")
	}
}
