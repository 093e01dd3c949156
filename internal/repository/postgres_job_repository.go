package repository

import (
	"context"
	"time"

	"github.com/robinlwong/tech-talent-radar/internal/database"
	"github.com/robinlwong/tech-talent-radar/internal/domain/job"

	"github.com/google/uuid"
)

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) LoadJobs(ctx context.Context) ([]job.Record, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(title, ''), COALESCE(company, ''), COALESCE(category, ''),
		        COALESCE(position_level, ''), COALESCE(employment_type, ''),
		        COALESCE(min_years_experience, 0),
		        COALESCE(salary_min, 0), COALESCE(salary_max, 0), COALESCE(salary_avg, 0),
		        COALESCE(description, ''), posted_at
		 FROM jobs
		 ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Record, 0)
	for rows.Next() {
		var (
			rec      job.Record
			id       uuid.UUID
			category string
			postedAt *time.Time
		)
		if err := rows.Scan(
			&id, &rec.Title, &rec.Company, &category,
			&rec.PositionLevel, &rec.EmploymentType,
			&rec.MinYearsExperience,
			&rec.SalaryMin, &rec.SalaryMax, &rec.SalaryAvg,
			&rec.Description, &postedAt,
		); err != nil {
			return nil, err
		}
		rec.ID = id
		rec.PostedAt = postedAt
		if c, ok := job.ParseCategory(category); ok {
			rec.Category = c
		} else {
			rec.Category = job.CategoryOther
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) UpsertJobs(ctx context.Context, jobs []job.Record) error {
	for _, j := range jobs {
		if j.ID == uuid.Nil {
			continue
		}
		_, err := r.db.Exec(ctx,
			`INSERT INTO jobs (id, title, company, category, position_level, employment_type,
			                   min_years_experience, salary_min, salary_max, salary_avg,
			                   description, posted_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			 ON CONFLICT (id) DO UPDATE SET
			   title = EXCLUDED.title,
			   company = EXCLUDED.company,
			   category = EXCLUDED.category,
			   position_level = EXCLUDED.position_level,
			   employment_type = EXCLUDED.employment_type,
			   min_years_experience = EXCLUDED.min_years_experience,
			   salary_min = EXCLUDED.salary_min,
			   salary_max = EXCLUDED.salary_max,
			   salary_avg = EXCLUDED.salary_avg,
			   description = EXCLUDED.description,
			   posted_at = EXCLUDED.posted_at`,
			j.ID, j.Title, j.Company, string(j.Category), j.PositionLevel, j.EmploymentType,
			j.MinYearsExperience, j.SalaryMin, j.SalaryMax, j.SalaryAvg,
			j.Description, j.PostedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
