package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/robinlwong/tech-talent-radar/internal/domain/job"
	"github.com/robinlwong/tech-talent-radar/internal/domain/lexicon"
	"github.com/robinlwong/tech-talent-radar/internal/domain/profile"

	"github.com/google/uuid"
)

type fakeCorpus struct {
	jobs []job.Record
}

func (f *fakeCorpus) Jobs() []job.Record { return f.jobs }

type fakeCache struct {
	mu      sync.Mutex
	store   map[string][]byte
	gets    int
	hits    int
	sets    int
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	c.hits++
	return true, nil
}

func (c *fakeCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) DeleteByPattern(ctx context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletes = append(c.deletes, pattern)
	for k := range c.store {
		if strings.HasPrefix(k, strings.TrimSuffix(pattern, "*")) {
			delete(c.store, k)
		}
	}
	return nil
}

func mustUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

func testJobs() []job.Record {
	return []job.Record{
		{
			ID:             mustUUID("00000000-0000-0000-0000-00000000000a"),
			Title:          "Cloud Platform Engineer",
			Company:        "Acme",
			Category:       job.CategoryIT,
			PositionLevel:  "Senior Executive",
			InferredSkills: []job.SkillTag{"Cloud/AWS", "DevOps", "Python"},
		},
		{
			ID:             mustUUID("00000000-0000-0000-0000-00000000000b"),
			Title:          "Python Developer",
			Company:        "Beta",
			Category:       job.CategoryIT,
			PositionLevel:  "Executive",
			InferredSkills: []job.SkillTag{"Python"},
		},
		{
			ID:             mustUUID("00000000-0000-0000-0000-00000000000c"),
			Title:          "Structural Engineer",
			Company:        "Gamma",
			Category:       job.CategoryEngineering,
			PositionLevel:  "Senior",
			InferredSkills: []job.SkillTag{"Civil/Structural"},
		},
	}
}

func newTestRecommender(jobs []job.Record, cache Cache) *RecommendationUsecase {
	return NewRecommendationUsecase(&fakeCorpus{jobs: jobs}, lexicon.Default(), cache, 2, nil)
}

func TestRecommendRanksBySkillCoverage(t *testing.T) {
	uc := newTestRecommender(testJobs(), nil)

	p := profile.UserProfile{Skills: []job.SkillTag{"Python", "Cloud/AWS"}}
	got, err := uc.Recommend(context.Background(), p, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(got))
	}

	// Full coverage of the single-skill job outranks 2-of-3 coverage.
	if got[0].Job.Title != "Python Developer" {
		t.Fatalf("first: %q", got[0].Job.Title)
	}
	if got[0].SkillGap.MatchPercentage != 100 {
		t.Fatalf("first match%%: %d", got[0].SkillGap.MatchPercentage)
	}
	if got[1].Job.Title != "Cloud Platform Engineer" {
		t.Fatalf("second: %q", got[1].Job.Title)
	}
	if got[1].SkillGap.MatchPercentage != 67 {
		t.Fatalf("second match%%: %d", got[1].SkillGap.MatchPercentage)
	}
	if len(got[1].SkillGap.MissingSkills) != 1 || got[1].SkillGap.MissingSkills[0] != "DevOps" {
		t.Fatalf("second missing: %v", got[1].SkillGap.MissingSkills)
	}
}

func TestRecommendDiscardsZeroScoreJobs(t *testing.T) {
	uc := newTestRecommender(testJobs(), nil)

	p := profile.UserProfile{Skills: []job.SkillTag{"Ruby"}}
	got, err := uc.Recommend(context.Background(), p, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("no overlap and no other signal should yield nothing, got %d", len(got))
	}
}

func TestRecommendEmptyCorpus(t *testing.T) {
	uc := newTestRecommender(nil, nil)

	got, err := uc.Recommend(context.Background(), profile.UserProfile{}, 5)
	if err != nil {
		t.Fatalf("empty corpus must not error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestRecommendRejectsBadTopN(t *testing.T) {
	uc := newTestRecommender(testJobs(), nil)

	if _, err := uc.Recommend(context.Background(), profile.UserProfile{}, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.Recommend(context.Background(), profile.UserProfile{}, -3); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRecommendSurfacesValidationError(t *testing.T) {
	uc := newTestRecommender(testJobs(), nil)

	_, err := uc.Recommend(context.Background(), profile.UserProfile{YearsOfExperience: -2}, 5)

	var vErr *profile.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Field != "years_of_experience" {
		t.Fatalf("field: %q", vErr.Field)
	}
}

func TestRecommendTruncatesToTopN(t *testing.T) {
	uc := newTestRecommender(testJobs(), nil)

	p := profile.UserProfile{Skills: []job.SkillTag{"Python", "Cloud/AWS", "Civil/Structural"}}
	got, err := uc.Recommend(context.Background(), p, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1, got %d", len(got))
	}
}

func TestRecommendTieBreaksByJobID(t *testing.T) {
	jobs := []job.Record{
		{
			ID:             mustUUID("00000000-0000-0000-0000-000000000002"),
			Title:          "Backend Engineer B",
			Category:       job.CategoryIT,
			InferredSkills: []job.SkillTag{"Python"},
		},
		{
			ID:             mustUUID("00000000-0000-0000-0000-000000000001"),
			Title:          "Backend Engineer B",
			Category:       job.CategoryIT,
			InferredSkills: []job.SkillTag{"Python"},
		},
	}
	uc := newTestRecommender(jobs, nil)

	p := profile.UserProfile{Skills: []job.SkillTag{"Python"}}
	got, err := uc.Recommend(context.Background(), p, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2, got %d", len(got))
	}
	if got[0].Job.ID.String() > got[1].Job.ID.String() {
		t.Fatalf("ties must order by ascending ID: %s before %s", got[0].Job.ID, got[1].Job.ID)
	}
}

func TestRecommendDeterministicAcrossRuns(t *testing.T) {
	uc := newTestRecommender(testJobs(), nil)
	p := profile.UserProfile{
		Skills:     []job.SkillTag{"Python"},
		Experience: "cloud infrastructure work on aws",
	}

	first, err := uc.Recommend(context.Background(), p, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := uc.Recommend(context.Background(), p, 10)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if len(again) != len(first) {
			t.Fatalf("run %d: length drifted", i)
		}
		for k := range first {
			if first[k].Job.ID != again[k].Job.ID || first[k].SimilarityScore != again[k].SimilarityScore {
				t.Fatalf("run %d entry %d: order or score drifted", i, k)
			}
		}
	}
}

func TestRecommendReasons(t *testing.T) {
	uc := newTestRecommender(testJobs(), nil)

	p := profile.UserProfile{
		Skills:                 []job.SkillTag{"Python", "Cloud/AWS"},
		PreferredCategories:    []job.Category{job.CategoryIT},
		PreferredPositionLevel: "Senior Executive",
	}
	got, err := uc.Recommend(context.Background(), p, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("expected recommendations")
	}

	for _, e := range got {
		if e.Reason == "" {
			t.Fatalf("entry %s has empty reason", e.Job.Title)
		}
	}

	var cloud *RecommendationEntry
	for i := range got {
		if got[i].Job.Title == "Cloud Platform Engineer" {
			cloud = &got[i]
		}
	}
	if cloud == nil {
		t.Fatalf("cloud job missing from results")
	}
	if !strings.Contains(cloud.Reason, "Cloud/AWS") || !strings.Contains(cloud.Reason, "Python") {
		t.Fatalf("reason should name the overlapping skills: %q", cloud.Reason)
	}
	if !strings.Contains(cloud.Reason, "Information Technology") {
		t.Fatalf("reason should mention the matched category: %q", cloud.Reason)
	}
	if !strings.Contains(cloud.Reason, "Senior Executive") {
		t.Fatalf("reason should mention the matched position level: %q", cloud.Reason)
	}
}

func TestRecommendUsesCache(t *testing.T) {
	cache := newFakeCache()
	uc := newTestRecommender(testJobs(), cache)

	p := profile.UserProfile{Skills: []job.SkillTag{"Python"}}

	first, err := uc.Recommend(context.Background(), p, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Recommend(context.Background(), p, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}
	if cache.hits != 1 {
		t.Fatalf("expected the second call to hit the cache, got %d hits", cache.hits)
	}
	if len(first) != len(second) {
		t.Fatalf("cached result differs in length")
	}
	for i := range first {
		if first[i].Job.ID != second[i].Job.ID {
			t.Fatalf("cached result differs at %d", i)
		}
	}
}

func TestRecommendCancelledCallDoesNotLeakGoroutines(t *testing.T) {
	jobs := make([]job.Record, 5000)
	for i := range jobs {
		jobs[i] = job.Record{
			ID:             uuid.New(),
			Title:          "Python Developer",
			Category:       job.CategoryIT,
			InferredSkills: []job.SkillTag{"Python"},
		}
	}
	uc := newTestRecommender(jobs, nil)
	p := profile.UserProfile{Skills: []job.SkillTag{"Python"}}

	before := runtime.NumGoroutine()

	for i := 0; i < 8; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Microsecond)
		_, _ = uc.Recommend(ctx, p, 5)
		cancel()
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if runtime.NumGoroutine() <= before+2 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("goroutines leaked after cancelled calls: before=%d after=%d", before, runtime.NumGoroutine())
}

func TestRecommendCacheKeyChangesWithCorpus(t *testing.T) {
	cache := newFakeCache()
	corpus := &fakeCorpus{jobs: testJobs()}
	uc := NewRecommendationUsecase(corpus, lexicon.Default(), cache, 2, nil)

	p := profile.UserProfile{Skills: []job.SkillTag{"Python"}}
	if _, err := uc.Recommend(context.Background(), p, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	corpus.jobs = corpus.jobs[:1]
	if _, err := uc.Recommend(context.Background(), p, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cache.sets != 2 {
		t.Fatalf("a changed corpus must miss the cache, got %d writes", cache.sets)
	}
}
