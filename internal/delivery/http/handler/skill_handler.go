package handler

import (
	"strings"

	"skill-match/internal/delivery/http/dto"
	"skill-match/internal/delivery/http/middleware"
	"skill-match/internal/domain/matching"
	"skill-match/internal/pkg/response"
	"skill-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.ClassificationUsecase
}

func NewSkillHandler(uc usecase.ClassificationUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/grouped", h.Grouped)
}

// Grouped returns every known skill bucketed by category, feeding the filter
// chips of the search screen. ?category=Name narrows the result to one group.
func (h *SkillHandler) Grouped(c fiber.Ctx) error {
	g, err := h.uc.GroupSkills(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	if name := strings.TrimSpace(c.Query("category")); name != "" {
		grp, ok := g.Lookup(name)
		if !ok {
			return middleware.NewAppError(fiber.StatusNotFound, "Category has no skills", nil, nil)
		}
		g = matching.Grouping{grp}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillGroupsResponse(g))
}
