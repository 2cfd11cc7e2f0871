// Package cache dials the Redis instance backing the idempotency store.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Yughie/Phylab-System/internal/config"
)

const dialTimeout = 5 * time.Second

func OpenRedis(cfg *config.Config) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return r, nil
}
