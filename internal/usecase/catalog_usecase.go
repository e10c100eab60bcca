package usecase

import (
	"context"
	"errors"
	"strings"

	"skill-match/internal/domain/skill"
	"skill-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SeedFunc installs the default catalog. It must be a no-op on a populated
// catalog.
type SeedFunc func(ctx context.Context) error

type CreateCategoryInput struct {
	Name     string
	Keywords []string
	Icon     string
	Color    string
	Order    int
}

type CatalogUsecase interface {
	EnsureDefaults(ctx context.Context) error
	ListCategories(ctx context.Context) ([]skill.Category, error)
	CreateCategory(ctx context.Context, in CreateCategoryInput) (skill.Category, error)
	AddKeyword(ctx context.Context, id uuid.UUID, keyword string) (skill.Category, error)
	RemoveKeyword(ctx context.Context, id uuid.UUID, keyword string) (skill.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type Catalog struct {
	categories repository.CategoryRepository
	seed       SeedFunc
	cache      Cache
	logger     *zap.Logger
}

func NewCatalogUsecase(categories repository.CategoryRepository, seed SeedFunc, cache Cache, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{categories: categories, seed: seed, cache: cache, logger: logger}
}

// EnsureDefaults seeds the default catalog when no category exists yet.
func (u *Catalog) EnsureDefaults(ctx context.Context) error {
	if u.seed == nil {
		return nil
	}
	n, err := u.categories.CountCategories(ctx)
	if err != nil {
		u.logger.Error("count categories", zap.Error(err))
		return ErrInternal
	}
	if n > 0 {
		return nil
	}
	if err := u.seed(ctx); err != nil {
		u.logger.Error("seed default categories", zap.Error(err))
		return ErrInternal
	}
	u.invalidate(ctx)
	return nil
}

func (u *Catalog) ListCategories(ctx context.Context) ([]skill.Category, error) {
	var cached []skill.Category
	if u.cache != nil {
		if ok, err := u.cache.GetJSON(ctx, CacheKeyCategories, &cached); err == nil && ok {
			return cached, nil
		}
	}

	items, err := u.categories.FetchCategories(ctx)
	if err != nil {
		u.logger.Error("fetch categories", zap.Error(err))
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, CacheKeyCategories, items, 0)
	}
	return items, nil
}

func (u *Catalog) CreateCategory(ctx context.Context, in CreateCategoryInput) (skill.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return skill.Category{}, ErrInvalidInput
	}
	keywords := normalizeKeywords(in.Keywords)
	if len(keywords) == 0 {
		return skill.Category{}, ErrInvalidInput
	}

	created, err := u.categories.CreateCategory(ctx, skill.Category{
		Name:     name,
		Keywords: keywords,
		Icon:     strings.TrimSpace(in.Icon),
		Color:    strings.TrimSpace(in.Color),
		Order:    in.Order,
	})
	if err != nil {
		return skill.Category{}, u.mapRepoErr("create category", err)
	}

	u.invalidate(ctx)
	return created, nil
}

func (u *Catalog) AddKeyword(ctx context.Context, id uuid.UUID, keyword string) (skill.Category, error) {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if id == uuid.Nil || kw == "" {
		return skill.Category{}, ErrInvalidInput
	}

	current, err := u.categories.GetCategory(ctx, id)
	if err != nil {
		return skill.Category{}, u.mapRepoErr("get category", err)
	}
	if current.HasKeyword(kw) {
		return current, nil
	}

	c, err := u.categories.AddKeyword(ctx, id, kw)
	if err != nil {
		return skill.Category{}, u.mapRepoErr("add keyword", err)
	}

	u.invalidate(ctx)
	return c, nil
}

func (u *Catalog) RemoveKeyword(ctx context.Context, id uuid.UUID, keyword string) (skill.Category, error) {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if id == uuid.Nil || kw == "" {
		return skill.Category{}, ErrInvalidInput
	}

	current, err := u.categories.GetCategory(ctx, id)
	if err != nil {
		return skill.Category{}, u.mapRepoErr("get category", err)
	}
	if !current.HasKeyword(kw) {
		return current, nil
	}

	c, err := u.categories.RemoveKeyword(ctx, id, kw)
	if err != nil {
		return skill.Category{}, u.mapRepoErr("remove keyword", err)
	}

	u.invalidate(ctx)
	return c, nil
}

func (u *Catalog) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.categories.DeleteCategory(ctx, id); err != nil {
		return u.mapRepoErr("delete category", err)
	}

	u.invalidate(ctx)
	return nil
}

func (u *Catalog) invalidate(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, CacheKeyPattern); err != nil {
		u.logger.Warn("invalidate catalog cache", zap.Error(err))
	}
}

func (u *Catalog) mapRepoErr(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrCategoryNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrCategoryExists):
		return ErrConflict
	default:
		u.logger.Error(op, zap.Error(err))
		return ErrInternal
	}
}

func normalizeKeywords(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, k := range in {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
