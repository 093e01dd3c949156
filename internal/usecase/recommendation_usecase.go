package usecase

import (
	"context"
	"log"
	"runtime"
	"sort"
	"time"

	"github.com/robinlwong/tech-talent-radar/internal/domain/job"
	"github.com/robinlwong/tech-talent-radar/internal/domain/lexicon"
	"github.com/robinlwong/tech-talent-radar/internal/domain/matching"
	"github.com/robinlwong/tech-talent-radar/internal/domain/profile"
	"github.com/robinlwong/tech-talent-radar/internal/pipeline"
)

// CorpusProvider hands out the current immutable job snapshot.
type CorpusProvider interface {
	Jobs() []job.Record
}

// RecommendationEntry is one ranked result. Constructed fresh per request,
// never mutated, owned by the response.
type RecommendationEntry struct {
	Job             job.Record        `json:"job"`
	SimilarityScore float64           `json:"similarity_score"`
	SkillGap        matching.SkillGap `json:"skill_gap"`
	Reason          string            `json:"reason"`
}

type RecommendationUsecase struct {
	corpus  CorpusProvider
	lex     *lexicon.Lexicon
	cache   Cache
	workers int
	log     *log.Logger
}

func NewRecommendationUsecase(corpus CorpusProvider, lex *lexicon.Lexicon, cache Cache, workers int, logger *log.Logger) *RecommendationUsecase {
	if logger == nil {
		logger = log.Default()
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &RecommendationUsecase{corpus: corpus, lex: lex, cache: cache, workers: workers, log: logger}
}

// Recommend scores every job in the corpus against the profile and returns
// the top matches, ranked and explained. Zero matches is a valid outcome and
// returns an empty slice, never an error; a malformed profile surfaces its
// ValidationError unchanged.
func (u *RecommendationUsecase) Recommend(ctx context.Context, p profile.UserProfile, topN int) ([]RecommendationEntry, error) {
	if topN < 1 {
		return nil, ErrInvalidInput
	}

	norm, err := profile.Normalize(p, u.lex)
	if err != nil {
		return nil, err
	}

	jobs := u.corpus.Jobs()
	if len(jobs) == 0 {
		return []RecommendationEntry{}, nil
	}

	key := recommendationCacheKey(norm, topN, jobs)
	if u.cache != nil {
		var cached []RecommendationEntry
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	start := time.Now()
	entries := u.scoreAll(ctx, norm, jobs)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.SimilarityScore == 0 && e.SkillGap.TotalRequired > 0 {
			continue
		}
		kept = append(kept, e)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].SimilarityScore != kept[j].SimilarityScore {
			return kept[i].SimilarityScore > kept[j].SimilarityScore
		}
		if kept[i].SkillGap.MatchPercentage != kept[j].SkillGap.MatchPercentage {
			return kept[i].SkillGap.MatchPercentage > kept[j].SkillGap.MatchPercentage
		}
		return kept[i].Job.ID.String() < kept[j].Job.ID.String()
	})

	if len(kept) > topN {
		kept = kept[:topN]
	}
	for i := range kept {
		kept[i].Reason = buildReason(norm, kept[i].Job, kept[i].SkillGap)
	}

	out := make([]RecommendationEntry, len(kept))
	copy(out, kept)

	u.log.Printf("usecase=recommend jobs=%d returned=%d duration=%s", len(jobs), len(out), time.Since(start))

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, out, 0)
	}
	return out, nil
}

// scoreAll runs the per-job pass over a worker pool. Jobs are independent, so
// workers write into their own slot and ordering is restored by index.
func (u *RecommendationUsecase) scoreAll(ctx context.Context, norm profile.Normalized, jobs []job.Record) []RecommendationEntry {
	entries := make([]RecommendationEntry, len(jobs))

	pool := pipeline.NewWorkerPool(u.workers, u.workers*2)
	results := pool.Run(ctx)

	go func() {
		defer pool.Close()
		for i := range jobs {
			i := i
			ok := pool.SubmitCtx(ctx, func(ctx context.Context) error {
				j := jobs[i]
				entries[i] = RecommendationEntry{
					Job:             j,
					SimilarityScore: matching.Score(norm, j),
					SkillGap:        matching.Gap(norm.Skills, j),
				}
				return nil
			})
			if !ok {
				return
			}
		}
	}()

	for range results {
	}
	return entries
}
