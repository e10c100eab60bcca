package usecase

import (
	"context"
	"errors"

	"skill-match/internal/domain/match"
	"skill-match/internal/domain/user"
	"skill-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SwipeResult struct {
	Swipe match.Swipe
	// Match is set when this swipe completed a mutual like.
	Match *match.Match
}

type SwipeUsecase interface {
	Swipe(ctx context.Context, actorID, targetID uuid.UUID, decision match.Decision) (SwipeResult, error)
	ListMatches(ctx context.Context, userID uuid.UUID) ([]match.Match, error)
}

type Swipes struct {
	users    user.Repository
	swipes   repository.SwipeRepository
	notifier Notifier
	logger   *zap.Logger
}

func NewSwipeUsecase(users user.Repository, swipes repository.SwipeRepository, notifier Notifier, logger *zap.Logger) *Swipes {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Swipes{users: users, swipes: swipes, notifier: notifier, logger: logger}
}

func (u *Swipes) Swipe(ctx context.Context, actorID, targetID uuid.UUID, decision match.Decision) (SwipeResult, error) {
	if actorID == uuid.Nil {
		return SwipeResult{}, ErrUnauthorized
	}
	if targetID == uuid.Nil || actorID == targetID || !decision.Valid() {
		return SwipeResult{}, ErrInvalidInput
	}

	actor, err := u.users.GetUserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return SwipeResult{}, ErrUnauthorized
		}
		u.logger.Error("get actor", zap.Error(err))
		return SwipeResult{}, ErrInternal
	}
	target, err := u.users.GetUserByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return SwipeResult{}, ErrNotFound
		}
		u.logger.Error("get target", zap.Error(err))
		return SwipeResult{}, ErrInternal
	}
	// Students swipe employers and employers swipe students.
	if actor.Role == target.Role {
		return SwipeResult{}, ErrInvalidInput
	}

	s := match.Swipe{ID: uuid.New(), ActorID: actorID, TargetID: targetID, Decision: decision}
	if err := u.swipes.RecordSwipe(ctx, s); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return SwipeResult{}, ErrNotFound
		}
		u.logger.Error("record swipe", zap.Error(err))
		return SwipeResult{}, ErrInternal
	}

	res := SwipeResult{Swipe: s}
	if decision != match.DecisionLike {
		return res, nil
	}

	mutual, err := u.swipes.HasLiked(ctx, targetID, actorID)
	if err != nil {
		u.logger.Error("check mutual like", zap.Error(err))
		return SwipeResult{}, ErrInternal
	}
	if !mutual {
		return res, nil
	}

	pair := match.Match{StudentID: actorID, EmployerID: targetID}
	if actor.Role == user.RoleEmployer {
		pair = match.Match{StudentID: targetID, EmployerID: actorID}
	}

	saved, created, err := u.swipes.CreateMatch(ctx, pair)
	if err != nil {
		u.logger.Error("create match", zap.Error(err))
		return SwipeResult{}, ErrInternal
	}
	res.Match = &saved

	if created && u.notifier != nil {
		u.notifier.NotifyMatch([]uuid.UUID{saved.StudentID, saved.EmployerID}, MatchEvent{
			Type:       EventMatchCreated,
			MatchID:    saved.ID,
			StudentID:  saved.StudentID,
			EmployerID: saved.EmployerID,
			MatchedAt:  saved.MatchedAt,
		})
	}
	return res, nil
}

func (u *Swipes) ListMatches(ctx context.Context, userID uuid.UUID) ([]match.Match, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	items, err := u.swipes.ListMatches(ctx, userID)
	if err != nil {
		u.logger.Error("list matches", zap.Error(err))
		return nil, ErrInternal
	}
	return items, nil
}
