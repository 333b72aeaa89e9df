package cache

import (
	"context"
	"errors"
	"strings"

	"classy-weather/internal/domain/entity"
	"classy-weather/internal/domain/model"
	"classy-weather/pkg/redis"
)

// LocationCacheName is the redis key namespace of resolved locations
const LocationCacheName = "geocoding"

// LocationCache stores the first geocoding candidate per query
type LocationCache interface {
	// Get returns the cached location for query; ok is false on a miss
	Get(ctx context.Context, query string) (location *entity.ResolvedLocation, ok bool, err error)

	// Set stores the location resolved for query
	Set(ctx context.Context, query string, location entity.ResolvedLocation) error

	// Health reports the cache component status
	Health(ctx context.Context) model.ComponentHealthStatus
}

// CacheKey normalises a query so "Berlin" and " berlin " share an entry
func CacheKey(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

type redisLocationCache struct {
	cache  *redis.Cache
	health *redis.HealthChecker
}

// NewRedisLocationCache creates a LocationCache backed by redis
func NewRedisLocationCache(client *redis.Client) LocationCache {
	return &redisLocationCache{
		cache:  redis.NewCache(client, redis.NewCacheOptions().WithCacheName(LocationCacheName).WithRefreshTTL(true)),
		health: redis.NewHealthChecker(client),
	}
}

func (c *redisLocationCache) Get(ctx context.Context, query string) (*entity.ResolvedLocation, bool, error) {
	var location entity.ResolvedLocation
	err := c.cache.Get(ctx, CacheKey(query), &location)
	if errors.Is(err, redis.ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &location, true, nil
}

func (c *redisLocationCache) Set(ctx context.Context, query string, location entity.ResolvedLocation) error {
	return c.cache.Set(ctx, CacheKey(query), location)
}

func (c *redisLocationCache) Health(ctx context.Context) model.ComponentHealthStatus {
	check := c.health.HealthCheck(ctx)
	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(check.Status),
		Details: check.Details,
	}
}

type noopLocationCache struct{}

// NewNoopLocationCache creates a LocationCache that never hits, used when caching is disabled
func NewNoopLocationCache() LocationCache {
	return noopLocationCache{}
}

func (noopLocationCache) Get(context.Context, string) (*entity.ResolvedLocation, bool, error) {
	return nil, false, nil
}

func (noopLocationCache) Set(context.Context, string, entity.ResolvedLocation) error {
	return nil
}

func (noopLocationCache) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUnknown,
		Details: map[string]string{"enabled": "false"},
	}
}
