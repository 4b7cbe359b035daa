package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyCategories = "cache:categories"
	cacheKeyProducts   = "cache:products"
	catalogCacheTTL    = 5 * time.Minute
)

// CatalogCache stores rendered catalog lists. Get reports whether dest was
// filled from the cache.
type CatalogCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type noopCache struct{}

func (noopCache) Get(context.Context, string, interface{}) (bool, error)        { return false, nil }
func (noopCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (noopCache) Delete(context.Context, ...string) error                       { return nil }

func cacheOrNoop(c CatalogCache) CatalogCache {
	if c == nil {
		return noopCache{}
	}
	return c
}

// cachedList serves key from the cache when possible and otherwise loads
// and stores it. Cache failures only cost a database round trip.
func cachedList[T any](ctx context.Context, cache CatalogCache, key string, load func() ([]T, error)) ([]T, error) {
	var out []T
	hit, err := cache.Get(ctx, key, &out)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("catalog cache read failed")
	}
	if hit {
		return out, nil
	}

	out, err = load()
	if err != nil {
		return nil, err
	}
	if err := cache.Set(ctx, key, out, catalogCacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
	}
	return out, nil
}

func invalidateCatalog(ctx context.Context, cache CatalogCache) {
	if err := cache.Delete(ctx, cacheKeyCategories, cacheKeyProducts); err != nil {
		log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
