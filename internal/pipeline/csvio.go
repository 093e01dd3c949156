package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadRawCSV loads the raw export. Column names follow the upstream dataset
// (title, postedCompany_name, categories, ...); only title and categories are
// hard requirements.
func ReadRawCSV(path string) ([]RawJob, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"title", "categories"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("raw csv %s: missing column %q", path, required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	out := make([]RawJob, 0)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		out = append(out, RawJob{
			ID:                 field(row, "uuid"),
			Title:              field(row, "title"),
			Company:            field(row, "postedcompany_name"),
			CategoriesJSON:     field(row, "categories"),
			PositionLevel:      field(row, "positionlevels"),
			EmploymentType:     field(row, "employmenttypes"),
			SalaryMin:          field(row, "salary_minimum"),
			SalaryMax:          field(row, "salary_maximum"),
			SalaryAvg:          field(row, "average_salary"),
			MinYearsExperience: field(row, "minimumyearsexperience"),
			Date:               field(row, "metadata_newpostingdate"),
		})
	}
	return out, nil
}

// WriteProcessedCSV writes the processed corpus, one row per job with the
// dashboard skill tags pipe-joined.
func WriteProcessedCSV(path string, tagged []TaggedJob) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		"id", "title", "company", "category", "position_level", "employment_type",
		"min_years_experience", "salary_min", "salary_max", "salary_avg", "date", "skills",
	}); err != nil {
		return err
	}

	for _, t := range tagged {
		rec := t.Record
		date := ""
		if rec.PostedAt != nil {
			date = rec.PostedAt.Format("2006-01-02")
		}
		skills := make([]string, 0, len(t.Skills))
		for _, s := range t.Skills {
			skills = append(skills, string(s))
		}
		if err := w.Write([]string{
			rec.ID.String(),
			rec.Title,
			rec.Company,
			string(rec.Category),
			rec.PositionLevel,
			rec.EmploymentType,
			strconv.Itoa(rec.MinYearsExperience),
			formatSalary(rec.SalaryMin),
			formatSalary(rec.SalaryMax),
			formatSalary(rec.SalaryAvg),
			date,
			strings.Join(skills, "|"),
		}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func formatSalary(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
