// Package cache provides the camp-by-id lookup cache.
//
// The Redis implementation keeps camp detail pages cheap: camps are immutable
// once created (deactivation aside), so a short TTL is enough to keep stale
// reads bounded while absorbing repeat lookups. The no-op implementation is
// used when no Redis address is configured.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/bhandara-web/backend/internal/domain"
)

// campTTL bounds how long a deactivated camp can still be served from cache.
const campTTL = 5 * time.Minute

// RedisCampCache caches camps in Redis as JSON under "camp:<id>".
type RedisCampCache struct {
	client *redis.Client
}

// NewRedisCampCache constructs a cache backed by the given Redis client.
func NewRedisCampCache(client *redis.Client) *RedisCampCache {
	return &RedisCampCache{client: client}
}

// Get returns the cached camp and true, or false on a miss.
// Redis errors are logged and reported as misses — the store remains the
// source of truth.
func (c *RedisCampCache) Get(ctx context.Context, id uuid.UUID) (domain.Camp, bool) {
	data, err := c.client.Get(ctx, campKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.WarnContext(ctx, "camp cache read failed", "error", err)
		}
		return domain.Camp{}, false
	}

	var camp domain.Camp
	if err := json.Unmarshal(data, &camp); err != nil {
		slog.WarnContext(ctx, "camp cache entry corrupt", "error", err)
		return domain.Camp{}, false
	}
	return camp, true
}

// Set stores the camp with a short TTL. Failures are logged, not returned.
func (c *RedisCampCache) Set(ctx context.Context, camp domain.Camp) {
	data, err := json.Marshal(camp)
	if err != nil {
		slog.WarnContext(ctx, "camp cache marshal failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, campKey(camp.ID), data, campTTL).Err(); err != nil {
		slog.WarnContext(ctx, "camp cache write failed", "error", err)
	}
}

func campKey(id uuid.UUID) string {
	return "camp:" + id.String()
}

// Noop is a CampCache that caches nothing. Used when Redis is not configured.
type Noop struct{}

// Get always misses.
func (Noop) Get(context.Context, uuid.UUID) (domain.Camp, bool) { return domain.Camp{}, false }

// Set discards the camp.
func (Noop) Set(context.Context, domain.Camp) {}
