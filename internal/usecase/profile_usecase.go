package usecase

import (
	"context"
	"errors"

	"skill-match/internal/domain/user"
	"skill-match/internal/repository"
	ucuser "skill-match/internal/usecase/user"

	"github.com/google/uuid"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (ucuser.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ucuser.UpdateProfileInput) (ucuser.Profile, error)
}

// Profile drops the cached grouping after a student edit, since the skill
// universe may have changed.
type Profile struct {
	svc   *ucuser.Service
	cache Cache
}

func NewProfileUsecase(users user.Repository, profiles repository.ProfileRepository, cache Cache) *Profile {
	return &Profile{svc: ucuser.NewService(users, profiles), cache: cache}
}

func (u *Profile) GetProfile(ctx context.Context, userID uuid.UUID) (ucuser.Profile, error) {
	p, err := u.svc.GetProfile(ctx, userID)
	return p, mapProfileErr(err)
}

func (u *Profile) UpdateProfile(ctx context.Context, userID uuid.UUID, in ucuser.UpdateProfileInput) (ucuser.Profile, error) {
	p, err := u.svc.UpdateProfile(ctx, userID, in)
	if err != nil {
		return ucuser.Profile{}, mapProfileErr(err)
	}
	if p.Student != nil && u.cache != nil {
		_ = u.cache.Delete(ctx, CacheKeyGrouping)
	}
	return p, nil
}

func mapProfileErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ucuser.ErrNotFound):
		return ErrUnauthorized
	case errors.Is(err, ucuser.ErrInvalidInput):
		return ErrInvalidInput
	default:
		return ErrInternal
	}
}
