// Package cache provides Redis-backed read-through caches for slow-moving
// enrichment data.
package cache

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yap1co/coursefit/internal/domain"
)

const quartileKeyPrefix = "quartiles:"

// cachedQuartiles distinguishes a cached miss from a cached hit so a code
// without data does not hammer the store.
type cachedQuartiles struct {
	Found     bool                   `json:"found"`
	Quartiles domain.SalaryQuartiles `json:"quartiles"`
}

// QuartileCache wraps a QuartileLookup with a Redis read-through cache.
// Cache failures degrade to the underlying lookup; they are never surfaced.
type QuartileCache struct {
	base   domain.QuartileLookup
	client *redis.Client
	ttl    time.Duration
}

// NewQuartileCache wraps base. If client is nil, base is returned unwrapped.
func NewQuartileCache(base domain.QuartileLookup, client *redis.Client, ttl time.Duration) domain.QuartileLookup {
	if client == nil || base == nil {
		return base
	}
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	return &QuartileCache{base: base, client: client, ttl: ttl}
}

// GetSalaryQuartiles implements domain.QuartileLookup.
func (c *QuartileCache) GetSalaryQuartiles(ctx domain.Context, cahCode string) (domain.SalaryQuartiles, bool, error) {
	key := quartileKeyPrefix + cahCode
	if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var cached cachedQuartiles
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached.Quartiles, cached.Found, nil
		}
	} else if err != redis.Nil {
		slog.WarnContext(ctx, "quartile cache read failed", slog.Any("error", err))
	}

	q, ok, err := c.base.GetSalaryQuartiles(ctx, cahCode)
	if err != nil {
		return q, ok, err
	}
	if raw, err := json.Marshal(cachedQuartiles{Found: ok, Quartiles: q}); err == nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			slog.WarnContext(ctx, "quartile cache write failed", slog.Any("error", err))
		}
	}
	return q, ok, nil
}
