package v1

import (
	"skill-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	Profile   *handler.ProfileHandler
	Category  *handler.CategoryHandler
	Skill     *handler.SkillHandler
	Candidate *handler.CandidateHandler
	Swipe     *handler.SwipeHandler
}

// Register mounts the v1 API. Everything except /auth sits behind auth.
func Register(r fiber.Router, h Handlers, auth fiber.Handler) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}

	protected := r.Group("", auth)

	if h.Profile != nil {
		h.Profile.RegisterRoutes(protected.Group("/me"))
	}
	if h.Category != nil {
		h.Category.RegisterRoutes(protected.Group("/categories"))
	}
	if h.Skill != nil {
		h.Skill.RegisterRoutes(protected.Group("/skills"))
	}
	if h.Candidate != nil {
		h.Candidate.RegisterRoutes(protected.Group("/candidates"))
	}
	if h.Swipe != nil {
		h.Swipe.RegisterRoutes(protected)
	}
}
