package handler

import (
	"github.com/robinlwong/tech-talent-radar/internal/pkg/response"
	"github.com/robinlwong/tech-talent-radar/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CorpusHandler struct {
	uc *usecase.CorpusUsecase
}

func NewCorpusHandler(uc *usecase.CorpusUsecase) *CorpusHandler {
	return &CorpusHandler{uc: uc}
}

func (h *CorpusHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/corpus/reload", h.Reload)
}

func (h *CorpusHandler) Reload(c fiber.Ctx) error {
	n, err := h.uc.Reload(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}

	return response.Success(c, fiber.StatusOK, "Corpus reloaded", map[string]any{
		"jobs": n,
	})
}
