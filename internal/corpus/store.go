package corpus

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robinlwong/tech-talent-radar/internal/domain/job"
	"github.com/robinlwong/tech-talent-radar/internal/domain/lexicon"
)

// Loader supplies raw job records from wherever the corpus lives (Postgres,
// processed CSV). Records arrive without inferred skills; the store derives
// them here so the recommender always sees lexicon-consistent tags.
type Loader interface {
	LoadJobs(ctx context.Context) ([]job.Record, error)
}

// Store holds an immutable in-memory snapshot of the job corpus. Reload swaps
// the whole snapshot; readers take the current one without locking.
type Store struct {
	loader Loader
	lex    *lexicon.Lexicon
	log    *log.Logger

	snapshot atomic.Pointer[snapshot]
	mu       sync.Mutex
}

type snapshot struct {
	jobs     []job.Record
	loadedAt time.Time
}

func NewStore(loader Loader, lex *lexicon.Lexicon, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{loader: loader, lex: lex, log: logger}
}

// Reload fetches the corpus, derives inferred skills per record, and swaps
// the snapshot in. Concurrent reloads are serialized; readers never block.
func (s *Store) Reload(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	records, err := s.loader.LoadJobs(ctx)
	if err != nil {
		return 0, err
	}

	for i := range records {
		records[i].InferredSkills = s.inferSkills(records[i])
	}

	s.snapshot.Store(&snapshot{jobs: records, loadedAt: time.Now().UTC()})
	s.log.Printf("corpus=reload status=ok jobs=%d duration=%s", len(records), time.Since(start))
	return len(records), nil
}

// Jobs returns the current snapshot. The slice is shared and must be treated
// as read-only.
func (s *Store) Jobs() []job.Record {
	snap := s.snapshot.Load()
	if snap == nil {
		return nil
	}
	return snap.jobs
}

func (s *Store) LoadedAt() (time.Time, bool) {
	snap := s.snapshot.Load()
	if snap == nil {
		return time.Time{}, false
	}
	return snap.loadedAt, true
}

// inferSkills runs extraction scoped to the record's own sector; records
// outside the two target sectors are matched against the full lexicon.
func (s *Store) inferSkills(j job.Record) []job.SkillTag {
	var tags job.SkillSet
	switch j.Category {
	case job.CategoryIT, job.CategoryEngineering:
		tags = s.lex.Extract(j.Text(), j.Category)
	default:
		tags = s.lex.Extract(j.Text())
	}
	return tags.Tags()
}
