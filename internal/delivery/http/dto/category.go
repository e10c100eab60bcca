package dto

import (
	"skill-match/internal/domain/matching"
	"skill-match/internal/domain/skill"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name     string   `json:"name" validate:"required,max=64"`
	Keywords []string `json:"keywords" validate:"required,min=1,max=200,dive,required,max=64"`
	Icon     string   `json:"icon" validate:"max=32"`
	Color    string   `json:"color" validate:"omitempty,hexcolor"`
	Order    int      `json:"order" validate:"gte=0"`
}

type KeywordRequest struct {
	Keyword string `json:"keyword" validate:"required,max=64"`
}

type CategoryResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Keywords []string  `json:"keywords"`
	Icon     string    `json:"icon"`
	Color    string    `json:"color"`
	Order    int       `json:"order"`
}

type SkillGroupResponse struct {
	Category CategoryResponse `json:"category"`
	Skills   []string         `json:"skills"`
	Count    int              `json:"count"`
}

func NewCategoryResponse(c skill.Category) CategoryResponse {
	return CategoryResponse{
		ID:       c.ID,
		Name:     c.Name,
		Keywords: nonNil(c.Keywords),
		Icon:     c.Icon,
		Color:    c.Color,
		Order:    c.Order,
	}
}

func NewCategoryListResponse(items []skill.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(items))
	for _, c := range items {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}

func NewSkillGroupsResponse(g matching.Grouping) []SkillGroupResponse {
	out := make([]SkillGroupResponse, 0, len(g))
	for _, grp := range g {
		out = append(out, SkillGroupResponse{
			Category: NewCategoryResponse(grp.Category),
			Skills:   nonNil(grp.Skills),
			Count:    len(grp.Skills),
		})
	}
	return out
}
