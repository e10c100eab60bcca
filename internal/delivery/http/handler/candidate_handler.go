package handler

import (
	"strings"

	"skill-match/internal/delivery/http/dto"
	"skill-match/internal/delivery/http/middleware"
	"skill-match/internal/domain/user"
	"skill-match/internal/pkg/response"
	"skill-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidateHandler struct {
	uc usecase.CandidateUsecase
}

func NewCandidateHandler(uc usecase.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	employer := middleware.RequireRole(string(user.RoleEmployer))
	r.Post("/search", employer, h.Search)
	r.Get("/:id/match", employer, h.Match)
}

func (h *CandidateHandler) Search(c fiber.Ctx) error {
	employerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.CandidateSearchRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	page, err := h.uc.Rank(c.Context(), employerID, req.ToParams())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateSearchResponse(page))
}

// Match scores one student against ?skills=a,b,c.
func (h *CandidateHandler) Match(c fiber.Ctx) error {
	studentID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var required []string
	if raw := c.Query("skills"); raw != "" {
		required = strings.Split(raw, ",")
	}

	m, err := h.uc.ScoreCandidate(c.Context(), studentID, required)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateResponse(m))
}
