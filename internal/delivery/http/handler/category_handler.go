package handler

import (
	"net/url"

	"skill-match/internal/delivery/http/dto"
	"skill-match/internal/delivery/http/middleware"
	"skill-match/internal/domain/user"
	"skill-match/internal/pkg/response"
	"skill-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CategoryHandler struct {
	uc usecase.CatalogUsecase
}

func NewCategoryHandler(uc usecase.CatalogUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// RegisterRoutes mounts reads for every authenticated user and catalog edits for
// employers only.
func (h *CategoryHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)

	edit := middleware.RequireRole(string(user.RoleEmployer))
	r.Post("/", edit, h.Create)
	r.Post("/:id/keywords", edit, h.AddKeyword)
	r.Delete("/:id/keywords/:keyword", edit, h.RemoveKeyword)
	r.Delete("/:id", edit, h.Delete)
}

func (h *CategoryHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListCategories(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCategoryListResponse(items))
}

func (h *CategoryHandler) Create(c fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	created, err := h.uc.CreateCategory(c.Context(), usecase.CreateCategoryInput{
		Name:     req.Name,
		Keywords: req.Keywords,
		Icon:     req.Icon,
		Color:    req.Color,
		Order:    req.Order,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewCategoryResponse(created))
}

func (h *CategoryHandler) AddKeyword(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req dto.KeywordRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.AddKeyword(c.Context(), id, req.Keyword)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCategoryResponse(updated))
}

func (h *CategoryHandler) RemoveKeyword(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	kw, err := url.PathUnescape(c.Params("keyword"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid keyword", nil, err)
	}

	updated, err := h.uc.RemoveKeyword(c.Context(), id, kw)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCategoryResponse(updated))
}

func (h *CategoryHandler) Delete(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteCategory(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Deleted", nil)
}
