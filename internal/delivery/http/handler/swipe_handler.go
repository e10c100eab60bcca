package handler

import (
	"skill-match/internal/delivery/http/dto"
	"skill-match/internal/domain/match"
	"skill-match/internal/pkg/response"
	"skill-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SwipeHandler struct {
	uc usecase.SwipeUsecase
}

func NewSwipeHandler(uc usecase.SwipeUsecase) *SwipeHandler {
	return &SwipeHandler{uc: uc}
}

func (h *SwipeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/swipes", h.Swipe)
	r.Get("/matches", h.ListMatches)
}

func (h *SwipeHandler) Swipe(c fiber.Ctx) error {
	actorID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.SwipeRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	res, err := h.uc.Swipe(c.Context(), actorID, uuid.MustParse(req.TargetID), match.Decision(req.Decision))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSwipeResponse(res))
}

func (h *SwipeHandler) ListMatches(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListMatches(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchListResponse(items))
}
