package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robinlwong/tech-talent-radar/internal/domain/job"

	"github.com/google/uuid"
)

// CSVJobRepository reads the processed corpus CSV produced by the ETL
// command. Rows that cannot be parsed are skipped and counted, not fatal:
// corpus hygiene is the ETL's job, the loader just refuses to crash on it.
type CSVJobRepository struct {
	path string
	log  *log.Logger
}

func NewCSVJobRepository(path string, logger *log.Logger) *CSVJobRepository {
	if logger == nil {
		logger = log.Default()
	}
	return &CSVJobRepository{path: path, log: logger}
}

func (r *CSVJobRepository) LoadJobs(ctx context.Context) ([]job.Record, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", r.path, err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"id", "title", "category"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("corpus csv %s: missing column %q", r.path, required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	out := make([]job.Record, 0)
	skipped := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		id, err := uuid.Parse(field(row, "id"))
		if err != nil {
			skipped++
			continue
		}
		title := field(row, "title")
		if title == "" {
			skipped++
			continue
		}

		rec := job.Record{
			ID:             id,
			Title:          title,
			Company:        field(row, "company"),
			PositionLevel:  field(row, "position_level"),
			EmploymentType: field(row, "employment_type"),
			Description:    field(row, "description"),
		}
		if c, ok := job.ParseCategory(field(row, "category")); ok {
			rec.Category = c
		} else {
			rec.Category = job.CategoryOther
		}
		rec.MinYearsExperience = parseIntField(field(row, "min_years_experience"))
		rec.SalaryMin = parseFloatField(field(row, "salary_min"))
		rec.SalaryMax = parseFloatField(field(row, "salary_max"))
		rec.SalaryAvg = parseFloatField(field(row, "salary_avg"))
		if t, err := time.Parse("2006-01-02", field(row, "date")); err == nil {
			rec.PostedAt = &t
		}

		out = append(out, rec)
	}

	if skipped > 0 {
		r.log.Printf("corpus=csv_load path=%s loaded=%d skipped=%d", r.path, len(out), skipped)
	}
	return out, nil
}

func parseIntField(s string) int {
	if s == "" {
		return 0
	}
	// the raw dataset stores years as floats ("3.0")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0
	}
	return int(f)
}

func parseFloatField(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
