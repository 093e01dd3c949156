package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/robinlwong/tech-talent-radar/internal/delivery/http/dto"
	"github.com/robinlwong/tech-talent-radar/internal/delivery/http/middleware"
	"github.com/robinlwong/tech-talent-radar/internal/domain/job"
	"github.com/robinlwong/tech-talent-radar/internal/pkg/response"
	"github.com/robinlwong/tech-talent-radar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc *usecase.JobListUsecase
}

func NewJobHandler(uc *usecase.JobListUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/", h.List)
	grp.Get("/filters", h.Filters)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	params := usecase.JobListParams{
		Search:         c.Query("search"),
		Category:       c.Query("category"),
		PositionLevel:  c.Query("position_level"),
		EmploymentType: c.Query("employment_type"),
	}

	var err error
	if params.MinSalary, err = queryFloat(c, "min_salary"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid min_salary", nil, err)
	}
	if params.MaxSalary, err = queryFloat(c, "max_salary"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid max_salary", nil, err)
	}
	if params.Limit, err = queryInt(c, "limit"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}
	if params.Offset, err = queryInt(c, "offset"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid offset", nil, err)
	}

	jobs, total, err := h.uc.ListJobs(c.Context(), params)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid pagination", nil, err)
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}

	items := make([]dto.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, toJobResponse(j))
	}

	limit := params.Limit
	if limit == 0 {
		limit = 20
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.JobListPageResponse{
		Jobs:   items,
		Total:  total,
		Limit:  limit,
		Offset: params.Offset,
	})
}

func (h *JobHandler) Filters(c fiber.Ctx) error {
	f, err := h.uc.Facets(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.JobFacetsResponse{
		Categories:      f.Categories,
		PositionLevels:  f.PositionLevels,
		EmploymentTypes: f.EmploymentTypes,
		SalaryMin:       f.SalaryMin,
		SalaryMax:       f.SalaryMax,
		SalaryAvg:       f.SalaryAvg,
	})
}

func toJobResponse(j job.Record) dto.JobResponse {
	skills := make([]string, 0, len(j.InferredSkills))
	for _, t := range j.InferredSkills {
		skills = append(skills, string(t))
	}

	posted := ""
	if j.PostedAt != nil {
		posted = j.PostedAt.Format(time.DateOnly)
	}

	return dto.JobResponse{
		ID:                 j.ID,
		Title:              j.Title,
		Company:            j.Company,
		Category:           string(j.Category),
		PositionLevel:      j.PositionLevel,
		EmploymentType:     j.EmploymentType,
		MinYearsExperience: j.MinYearsExperience,
		SalaryMin:          j.SalaryMin,
		SalaryMax:          j.SalaryMax,
		SalaryAvg:          j.SalaryAvg,
		PostedDate:         posted,
		Skills:             skills,
	}
}

func queryFloat(c fiber.Ctx, key string) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func queryInt(c fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
