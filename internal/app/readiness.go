package app

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// BuildReadinessChecks returns probe functions for the external stores. The
// redis check is nil when no redis client is configured.
func BuildReadinessChecks(pool *pgxpool.Pool, rdb *redis.Client) (dbCheck, redisCheck func(ctx context.Context) error) {
	dbCheck = func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return pool.Ping(ctx)
	}
	if rdb != nil {
		redisCheck = func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			return rdb.Ping(ctx).Err()
		}
	}
	return dbCheck, redisCheck
}
