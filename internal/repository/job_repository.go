package repository

import (
	"context"
	"errors"

	"github.com/robinlwong/tech-talent-radar/internal/domain/job"
)

var ErrNoCorpusSource = errors.New("no corpus source configured")

// JobRepository abstracts where the processed job corpus lives. The engine
// itself never touches storage; it consumes whatever snapshot the corpus
// store loads through one of these.
type JobRepository interface {
	LoadJobs(ctx context.Context) ([]job.Record, error)
}

// JobWriter is the ETL-side counterpart.
type JobWriter interface {
	UpsertJobs(ctx context.Context, jobs []job.Record) error
}
