package handler

import (
	"github.com/robinlwong/tech-talent-radar/internal/pkg/response"
	"github.com/robinlwong/tech-talent-radar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc *usecase.SkillUsecase
}

func NewSkillHandler(uc *usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/skills", h.List)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	tags, err := h.uc.GetAllInferableSkills(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}

	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, string(t))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"skills": names,
	})
}
