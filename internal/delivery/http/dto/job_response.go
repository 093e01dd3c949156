package dto

import "github.com/google/uuid"

type JobResponse struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Company            string    `json:"company"`
	Category           string    `json:"category"`
	PositionLevel      string    `json:"position_level"`
	EmploymentType     string    `json:"employment_type"`
	MinYearsExperience int       `json:"min_years_experience"`
	SalaryMin          float64   `json:"salary_min"`
	SalaryMax          float64   `json:"salary_max"`
	SalaryAvg          float64   `json:"salary_avg"`
	PostedDate         string    `json:"posted_date"`
	Skills             []string  `json:"skills"`
}

type JobListPageResponse struct {
	Jobs   []JobResponse `json:"jobs"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

type JobFacetsResponse struct {
	Categories      []string `json:"categories"`
	PositionLevels  []string `json:"position_levels"`
	EmploymentTypes []string `json:"employment_types"`
	SalaryMin       float64  `json:"salary_min"`
	SalaryMax       float64  `json:"salary_max"`
	SalaryAvg       float64  `json:"salary_avg"`
}
