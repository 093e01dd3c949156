package pipeline

import (
	"context"
	"encoding/json"
	"log"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/robinlwong/tech-talent-radar/internal/domain/job"
	"github.com/robinlwong/tech-talent-radar/internal/domain/lexicon"

	"github.com/google/uuid"
)

// GeneralTag is the dashboard sentinel for postings that match no pattern.
// It exists only in the ETL output: the recommender layer never produces it.
const GeneralTag job.SkillTag = "General/Management"

// RawJob is one row of the raw MyCareersFuture export, untyped.
type RawJob struct {
	ID                 string
	Title              string
	Company            string
	CategoriesJSON     string
	PositionLevel      string
	EmploymentType     string
	SalaryMin          string
	SalaryMax          string
	SalaryAvg          string
	MinYearsExperience string
	Date               string
}

// TaggedJob pairs the typed record with its dashboard skill tags
// (sentinel included, unlike Record.InferredSkills).
type TaggedJob struct {
	Record job.Record
	Skills []job.SkillTag
}

type Stats struct {
	Input     int
	Kept      int
	Tagged    int
	Untagged  int
	Duration  time.Duration
	SkillFreq map[job.SkillTag]int
}

// TaggingPipeline transforms raw export rows into the processed corpus:
// filter to the target sectors, resolve a primary category, clean salaries,
// and tag skills against the sector's dictionary.
type TaggingPipeline struct {
	lex     *lexicon.Lexicon
	log     *log.Logger
	workers int
}

func NewTaggingPipeline(lex *lexicon.Lexicon, workers int, logger *log.Logger) *TaggingPipeline {
	if logger == nil {
		logger = log.Default()
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &TaggingPipeline{lex: lex, log: logger, workers: workers}
}

func (p *TaggingPipeline) Run(ctx context.Context, raws []RawJob) ([]TaggedJob, Stats, error) {
	start := time.Now()
	stats := Stats{Input: len(raws), SkillFreq: make(map[job.SkillTag]int)}

	kept := make([]RawJob, 0, len(raws))
	for _, raw := range raws {
		if isTargetSector(raw.CategoriesJSON) {
			kept = append(kept, raw)
		}
	}
	stats.Kept = len(kept)

	out := make([]TaggedJob, len(kept))
	pool := NewWorkerPool(p.workers, p.workers*2)
	results := pool.Run(ctx)

	go func() {
		defer pool.Close()
		for i, raw := range kept {
			i, raw := i, raw
			ok := pool.SubmitCtx(ctx, func(ctx context.Context) error {
				out[i] = p.tagOne(raw)
				return nil
			})
			if !ok {
				return
			}
		}
	}()

	for r := range results {
		if r.Err != nil {
			return nil, stats, r.Err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	for _, t := range out {
		if len(t.Skills) == 1 && t.Skills[0] == GeneralTag {
			stats.Untagged++
		} else {
			stats.Tagged++
		}
		for _, s := range t.Skills {
			stats.SkillFreq[s]++
		}
	}
	stats.Duration = time.Since(start)

	p.log.Printf("pipeline=tagging status=ok input=%d kept=%d tagged=%d untagged=%d duration=%s",
		stats.Input, stats.Kept, stats.Tagged, stats.Untagged, stats.Duration)
	return out, stats, nil
}

func (p *TaggingPipeline) tagOne(raw RawJob) TaggedJob {
	rec := job.Record{
		Title:          strings.TrimSpace(raw.Title),
		Company:        strings.TrimSpace(raw.Company),
		Category:       PrimaryCategory(ParseCategories(raw.CategoriesJSON)),
		PositionLevel:  strings.TrimSpace(raw.PositionLevel),
		EmploymentType: strings.TrimSpace(raw.EmploymentType),
	}

	if id, err := uuid.Parse(strings.TrimSpace(raw.ID)); err == nil {
		rec.ID = id
	} else {
		rec.ID = uuid.New()
	}

	rec.SalaryMin = cleanSalary(raw.SalaryMin)
	rec.SalaryMax = cleanSalary(raw.SalaryMax)
	rec.SalaryAvg = cleanSalary(raw.SalaryAvg)
	if rec.SalaryAvg == 0 && rec.SalaryMin > 0 && rec.SalaryMax > 0 {
		rec.SalaryAvg = (rec.SalaryMin + rec.SalaryMax) / 2
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(raw.MinYearsExperience), 64); err == nil && f > 0 {
		rec.MinYearsExperience = int(f)
	}
	if t, err := time.Parse("2006-01-02", strings.TrimSpace(raw.Date)); err == nil {
		rec.PostedAt = &t
	}

	skills := p.lex.Extract(rec.Title, rec.Category).Tags()
	if len(skills) == 0 {
		skills = []job.SkillTag{GeneralTag}
	}

	return TaggedJob{Record: rec, Skills: skills}
}

// ParseCategories decodes the raw `categories` column, a JSON array like
// [{"id":21,"category":"Information Technology"}], sometimes single-quoted.
func ParseCategories(val string) []string {
	val = strings.TrimSpace(val)
	if !strings.HasPrefix(val, "[") {
		return nil
	}

	var items []struct {
		Category string `json:"category"`
	}
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		if err2 := json.Unmarshal([]byte(strings.ReplaceAll(val, "'", `"`)), &items); err2 != nil {
			return nil
		}
	}

	out := make([]string, 0, len(items))
	for _, it := range items {
		if it.Category != "" {
			out = append(out, it.Category)
		}
	}
	return out
}

// PrimaryCategory picks the dashboard filter category: IT wins over
// Engineering, anything else is Other. ETL policy, not recommender policy.
func PrimaryCategory(cats []string) job.Category {
	for _, c := range cats {
		if c == string(job.CategoryIT) {
			return job.CategoryIT
		}
	}
	for _, c := range cats {
		if c == string(job.CategoryEngineering) {
			return job.CategoryEngineering
		}
	}
	return job.CategoryOther
}

func isTargetSector(categoriesJSON string) bool {
	lower := strings.ToLower(categoriesJSON)
	if !strings.Contains(lower, "information technology") && !strings.Contains(lower, "engineering") {
		return false
	}
	for _, c := range ParseCategories(categoriesJSON) {
		if c == string(job.CategoryIT) || c == string(job.CategoryEngineering) {
			return true
		}
	}
	return false
}

func cleanSalary(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}
