package usecase

import (
	"context"

	"skill-match/internal/domain/matching"
	"skill-match/internal/domain/skill"
	"skill-match/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ClassificationUsecase interface {
	GroupSkills(ctx context.Context) (matching.Grouping, error)
}

type Classification struct {
	categories repository.CategoryRepository
	profiles   repository.ProfileRepository
	cache      Cache
	logger     *zap.Logger
}

func NewClassificationUsecase(categories repository.CategoryRepository, profiles repository.ProfileRepository, cache Cache, logger *zap.Logger) *Classification {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classification{categories: categories, profiles: profiles, cache: cache, logger: logger}
}

// GroupSkills classifies the current skill universe against the current
// catalog. Both are read as one snapshot per call.
func (u *Classification) GroupSkills(ctx context.Context) (matching.Grouping, error) {
	if u.cache != nil {
		var cached matching.Grouping
		if ok, err := u.cache.GetJSON(ctx, CacheKeyGrouping, &cached); err == nil && ok {
			return cached, nil
		}
	}

	var (
		cats   []skill.Category
		skills []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cats, err = u.categories.FetchCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		skills, err = u.profiles.FetchAllDistinctSkills(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		u.logger.Error("load classification inputs", zap.Error(err))
		return nil, ErrInternal
	}

	grouping := matching.Classify(cats, skills)
	if grouping == nil {
		grouping = matching.Grouping{}
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, CacheKeyGrouping, grouping, 0); err != nil {
			u.logger.Debug("cache grouping", zap.Error(err))
		}
	}
	return grouping, nil
}
