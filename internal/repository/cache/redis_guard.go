package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	tickKeyPrefix = "tick:"
	tickKeyTTL    = 36 * time.Hour
)

// RedisGuard makes sure a calendar day is only applied once across replicas.
type RedisGuard struct {
	client *redis.Client
}

func NewRedisGuard(client *redis.Client) *RedisGuard {
	return &RedisGuard{client: client}
}

// Acquire claims key, returns false if it was already claimed.
func (g *RedisGuard) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, tickKeyPrefix+key, time.Now().Unix(), tickKeyTTL).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// Release drops a claim so the day can be retried after a failed tick.
func (g *RedisGuard) Release(ctx context.Context, key string) error {
	return g.client.Del(ctx, tickKeyPrefix+key).Err()
}
