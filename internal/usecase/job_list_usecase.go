package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/robinlwong/tech-talent-radar/internal/domain/job"
)

type JobListParams struct {
	Search         string
	Category       string
	PositionLevel  string
	EmploymentType string
	MinSalary      float64
	MaxSalary      float64
	Limit          int
	Offset         int
}

type Facets struct {
	Categories      []string
	PositionLevels  []string
	EmploymentTypes []string
	SalaryMin       float64
	SalaryMax       float64
	SalaryAvg       float64
}

// JobListUsecase is the browse surface over the corpus snapshot: the same
// filters the dashboards apply, applied in memory.
type JobListUsecase struct {
	corpus CorpusProvider
}

func NewJobListUsecase(corpus CorpusProvider) *JobListUsecase {
	return &JobListUsecase{corpus: corpus}
}

// ListJobs returns the filtered page and the total number of matches.
func (u *JobListUsecase) ListJobs(ctx context.Context, params JobListParams) ([]job.Record, int, error) {
	if params.Limit < 0 || params.Offset < 0 {
		return nil, 0, ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	limit := params.Limit
	if limit == 0 {
		limit = 20
	}
	if limit > 200 {
		limit = 200
	}

	search := strings.ToLower(strings.TrimSpace(params.Search))

	matched := make([]job.Record, 0)
	for _, j := range u.corpus.Jobs() {
		if search != "" &&
			!strings.Contains(strings.ToLower(j.Title), search) &&
			!strings.Contains(strings.ToLower(j.Company), search) {
			continue
		}
		if params.Category != "" && !strings.EqualFold(params.Category, string(j.Category)) {
			continue
		}
		if params.PositionLevel != "" && !strings.EqualFold(params.PositionLevel, j.PositionLevel) {
			continue
		}
		if params.EmploymentType != "" && !strings.EqualFold(params.EmploymentType, j.EmploymentType) {
			continue
		}
		if params.MinSalary > 0 && j.SalaryMin < params.MinSalary {
			continue
		}
		if params.MaxSalary > 0 && (j.SalaryMax == 0 || j.SalaryMax > params.MaxSalary) {
			continue
		}
		matched = append(matched, j)
	}

	total := len(matched)
	if params.Offset >= total {
		return []job.Record{}, total, nil
	}
	end := params.Offset + limit
	if end > total {
		end = total
	}
	return matched[params.Offset:end], total, nil
}

// Facets computes the distinct filter options and salary stats the UI needs.
func (u *JobListUsecase) Facets(ctx context.Context) (Facets, error) {
	if err := ctx.Err(); err != nil {
		return Facets{}, err
	}

	jobs := u.corpus.Jobs()

	catSet := map[string]struct{}{}
	posSet := map[string]struct{}{}
	empSet := map[string]struct{}{}

	var f Facets
	var avgSum float64
	avgCount := 0

	for _, j := range jobs {
		if j.Category != "" {
			catSet[string(j.Category)] = struct{}{}
		}
		if j.PositionLevel != "" {
			posSet[j.PositionLevel] = struct{}{}
		}
		if j.EmploymentType != "" {
			empSet[j.EmploymentType] = struct{}{}
		}
		if j.SalaryMin > 0 && (f.SalaryMin == 0 || j.SalaryMin < f.SalaryMin) {
			f.SalaryMin = j.SalaryMin
		}
		if j.SalaryMax > f.SalaryMax {
			f.SalaryMax = j.SalaryMax
		}
		if j.SalaryAvg > 0 {
			avgSum += j.SalaryAvg
			avgCount++
		}
	}
	if avgCount > 0 {
		f.SalaryAvg = avgSum / float64(avgCount)
	}

	f.Categories = sortedKeys(catSet)
	f.PositionLevels = sortedKeys(posSet)
	f.EmploymentTypes = sortedKeys(empSet)
	return f, nil
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
