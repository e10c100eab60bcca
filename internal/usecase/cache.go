package usecase

import (
	"context"
	"time"
)

const (
	CacheKeyPrefix     = "skills:"
	CacheKeyCategories = CacheKeyPrefix + "categories"
	CacheKeyGrouping   = CacheKeyPrefix + "grouping"
	// CacheKeyPattern matches every key derived from the catalog.
	CacheKeyPattern = CacheKeyPrefix + "*"
)

// Cache is the read-through JSON cache the catalog and grouping sit behind. A
// nil Cache disables caching.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
