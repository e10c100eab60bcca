package usecase

import (
	"context"
	"testing"

	"skill-match/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_EnsureDefaultsRunsSeedAndInvalidates(t *testing.T) {
	ctx := context.Background()
	cats := &fakeCategories{}
	cache := newMemCache()
	require.NoError(t, cache.SetJSON(ctx, CacheKeyGrouping, []string{"stale"}, 0))

	seeded := 0
	uc := NewCatalogUsecase(cats, func(context.Context) error {
		seeded++
		if len(cats.items) == 0 {
			cats.items = skill.DefaultCategories()
		}
		return nil
	}, cache, nil)

	require.NoError(t, uc.EnsureDefaults(ctx))
	require.NoError(t, uc.EnsureDefaults(ctx))

	assert.Equal(t, 1, seeded, "populated catalog skips the seeder")
	assert.Len(t, cats.items, len(skill.DefaultCategories()))
	assert.False(t, cache.has(CacheKeyGrouping))
}

func TestCatalog_EnsureDefaultsCountFailure(t *testing.T) {
	seeded := false
	cats := &fakeCategories{countErr: errBoom}
	uc := NewCatalogUsecase(cats, func(context.Context) error {
		seeded = true
		return nil
	}, nil, nil)

	assert.ErrorIs(t, uc.EnsureDefaults(context.Background()), ErrInternal)
	assert.False(t, seeded)
}

func TestCatalog_EnsureDefaultsSeedFailure(t *testing.T) {
	uc := NewCatalogUsecase(&fakeCategories{}, func(context.Context) error { return errBoom }, nil, nil)
	assert.ErrorIs(t, uc.EnsureDefaults(context.Background()), ErrInternal)
}

func TestCatalog_ListCategoriesIsCached(t *testing.T) {
	ctx := context.Background()
	cats := &fakeCategories{items: skill.DefaultCategories()}
	uc := NewCatalogUsecase(cats, nil, newMemCache(), nil)

	first, err := uc.ListCategories(ctx)
	require.NoError(t, err)
	second, err := uc.ListCategories(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, cats.fetches)
	require.Len(t, second, len(first))
	assert.Equal(t, first[0].Name, second[0].Name)
}

func TestCatalog_ListCategoriesRepoError(t *testing.T) {
	uc := NewCatalogUsecase(&fakeCategories{fetchErr: errBoom}, nil, nil, nil)
	_, err := uc.ListCategories(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCatalog_CreateCategory(t *testing.T) {
	ctx := context.Background()
	cats := &fakeCategories{}
	cache := newMemCache()
	require.NoError(t, cache.SetJSON(ctx, CacheKeyCategories, []string{"stale"}, 0))
	require.NoError(t, cache.SetJSON(ctx, CacheKeyGrouping, []string{"stale"}, 0))
	require.NoError(t, cache.SetJSON(ctx, "sessions:1", "keep", 0))
	uc := NewCatalogUsecase(cats, nil, cache, nil)

	c, err := uc.CreateCategory(ctx, CreateCategoryInput{
		Name:     "  Security ",
		Keywords: []string{" Pentest", "pentest", "", "OWASP"},
		Order:    8,
	})
	require.NoError(t, err)
	assert.Equal(t, "Security", c.Name)
	assert.Equal(t, []string{"pentest", "owasp"}, c.Keywords)
	assert.Equal(t, []string{CacheKeyPattern}, cache.patterns)
	assert.False(t, cache.has(CacheKeyCategories))
	assert.False(t, cache.has(CacheKeyGrouping))
	assert.True(t, cache.has("sessions:1"))

	_, err = uc.CreateCategory(ctx, CreateCategoryInput{Name: "security", Keywords: []string{"x"}})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = uc.CreateCategory(ctx, CreateCategoryInput{Name: " ", Keywords: []string{"x"}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.CreateCategory(ctx, CreateCategoryInput{Name: "Empty", Keywords: []string{"  "}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCatalog_KeywordEdits(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	cats := &fakeCategories{items: []skill.Category{{ID: id, Name: "Backend", Keywords: []string{"golang"}, Order: 2}}}
	uc := NewCatalogUsecase(cats, nil, nil, nil)

	c, err := uc.AddKeyword(ctx, id, "  Rust ")
	require.NoError(t, err)
	assert.Equal(t, []string{"golang", "rust"}, c.Keywords)

	c, err = uc.RemoveKeyword(ctx, id, "GOLANG")
	require.NoError(t, err)
	assert.Equal(t, []string{"rust"}, c.Keywords)

	_, err = uc.AddKeyword(ctx, uuid.New(), "x")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = uc.RemoveKeyword(ctx, uuid.New(), "x")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = uc.AddKeyword(ctx, id, " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCatalog_KeywordEditsWithoutChangeSkipStore(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	cats := &fakeCategories{items: []skill.Category{{ID: id, Name: "Backend", Keywords: []string{"golang"}}}}
	cache := newMemCache()
	uc := NewCatalogUsecase(cats, nil, cache, nil)

	c, err := uc.AddKeyword(ctx, id, " GoLang ")
	require.NoError(t, err)
	assert.Equal(t, []string{"golang"}, c.Keywords)

	c, err = uc.RemoveKeyword(ctx, id, "rust")
	require.NoError(t, err)
	assert.Equal(t, []string{"golang"}, c.Keywords)

	assert.Zero(t, cats.writes)
	assert.Empty(t, cache.patterns)
}

func TestCatalog_DeleteCategory(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	cats := &fakeCategories{items: []skill.Category{{ID: id, Name: "Mobile", Keywords: []string{"swift"}}}}
	uc := NewCatalogUsecase(cats, nil, nil, nil)

	require.NoError(t, uc.DeleteCategory(ctx, id))
	assert.Empty(t, cats.items)
	assert.ErrorIs(t, uc.DeleteCategory(ctx, id), ErrNotFound)
	assert.ErrorIs(t, uc.DeleteCategory(ctx, uuid.Nil), ErrInvalidInput)
}
