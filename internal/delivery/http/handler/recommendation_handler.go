package handler

import (
	"errors"

	"github.com/robinlwong/tech-talent-radar/internal/delivery/http/dto"
	"github.com/robinlwong/tech-talent-radar/internal/delivery/http/middleware"
	"github.com/robinlwong/tech-talent-radar/internal/domain/job"
	"github.com/robinlwong/tech-talent-radar/internal/domain/matching"
	"github.com/robinlwong/tech-talent-radar/internal/domain/profile"
	"github.com/robinlwong/tech-talent-radar/internal/pkg/response"
	"github.com/robinlwong/tech-talent-radar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const defaultTopN = 5

type RecommendationHandler struct {
	uc *usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc *usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/jobs/recommendations", h.Recommend)
}

func (h *RecommendationHandler) Recommend(c fiber.Ctx) error {
	var req dto.RecommendationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, appErr := profileFromRequest(req.Profile)
	if appErr != nil {
		return appErr
	}

	topN := req.TopN
	if topN == 0 {
		topN = defaultTopN
	}

	entries, err := h.uc.Recommend(c.Context(), p, topN)
	if err != nil {
		var vErr *profile.ValidationError
		if errors.As(err, &vErr) {
			return middleware.NewAppError(
				fiber.StatusUnprocessableEntity,
				"Invalid profile",
				dto.ValidationErrorData{Field: vErr.Field, Reason: vErr.Reason},
				err,
			)
		}
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid top_n", nil, err)
		}
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}

	items := make([]dto.RecommendationItemResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.RecommendationItemResponse{
			Job:             toJobResponse(e.Job),
			SimilarityScore: e.SimilarityScore,
			SkillGap:        toSkillGapResponse(e.SkillGap),
			Reason:          e.Reason,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RecommendationListResponse{
		Recommendations: items,
		TotalJobs:       len(items),
	})
}

func profileFromRequest(req dto.ProfileRequest) (profile.UserProfile, *middleware.AppError) {
	cats := make([]job.Category, 0, len(req.PreferredCategories))
	for _, raw := range req.PreferredCategories {
		cat, ok := job.ParseCategory(raw)
		if !ok {
			return profile.UserProfile{}, middleware.NewAppError(
				fiber.StatusUnprocessableEntity,
				"Invalid profile",
				dto.ValidationErrorData{Field: "preferred_categories", Reason: "unknown category: " + raw},
				nil,
			)
		}
		cats = append(cats, cat)
	}

	skills := make([]job.SkillTag, 0, len(req.Skills))
	for _, s := range req.Skills {
		skills = append(skills, job.SkillTag(s))
	}

	return profile.UserProfile{
		Name:                   req.Name,
		Education:              profile.EducationLevel(req.Education),
		Qualification:          req.Qualification,
		Skills:                 skills,
		Experience:             req.Experience,
		Coursework:             req.Coursework,
		PreferredCategories:    cats,
		PreferredPositionLevel: req.PreferredPositionLevel,
		YearsOfExperience:      req.YearsOfExperience,
	}, nil
}

func toSkillGapResponse(g matching.SkillGap) dto.SkillGapResponse {
	return dto.SkillGapResponse{
		MatchingSkills:  tagNames(g.MatchingSkills),
		MissingSkills:   tagNames(g.MissingSkills),
		UserHas:         g.UserHas,
		TotalRequired:   g.TotalRequired,
		MatchPercentage: g.MatchPercentage,
	}
}

func tagNames(tags []job.SkillTag) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, string(t))
	}
	return out
}
