package schema

import (
	"context"

	"github.com/robinlwong/tech-talent-radar/internal/database"
)

const jobsTable = `
CREATE TABLE IF NOT EXISTS jobs (
    id                   UUID PRIMARY KEY,
    title                TEXT NOT NULL,
    company              TEXT,
    category             TEXT,
    position_level       TEXT,
    employment_type      TEXT,
    min_years_experience INT,
    salary_min           DOUBLE PRECISION,
    salary_max           DOUBLE PRECISION,
    salary_avg           DOUBLE PRECISION,
    description          TEXT,
    posted_at            TIMESTAMPTZ,
    created_at           TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_jobs_category ON jobs (category);
`

// Ensure creates the corpus table if it does not exist yet. The ETL command
// runs this before its first upsert.
func Ensure(ctx context.Context, db database.DB) error {
	_, err := db.Exec(ctx, jobsTable)
	return err
}
