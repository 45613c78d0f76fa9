package counter

import (
	"context"
	"time"

	"fortune-api/internal/platform/redis"
	"fortune-api/internal/ratelimit/models"
)

const redisKeyPrefix = "ratelimit:"

// RedisStore counts requests per key in Redis so the limit holds across
// replicas. The counter key expires one window after the first increment,
// which gives the same first-request-anchored window as MemoryStore. No
// sweep is needed because Redis evicts expired keys itself.
type RedisStore struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRedisStore(client *redis.Client, limit int, window time.Duration) *RedisStore {
	return &RedisStore{client: client, limit: limit, window: window}
}

func (s *RedisStore) Check(ctx context.Context, key string) (models.Decision, error) {
	redisKey := redisKeyPrefix + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return models.Decision{}, err
	}
	if count == 1 {
		if err := s.client.PExpire(ctx, redisKey, s.window).Err(); err != nil {
			return models.Decision{}, err
		}
	}

	if count > int64(s.limit) {
		ttl, err := s.client.PTTL(ctx, redisKey).Result()
		if err != nil {
			return models.Decision{}, err
		}
		retryAfter := ceilSeconds(ttl)
		if ttl < 0 {
			// Key lost its expiry (for example after a failed PExpire on a
			// previous request). Re-arm it so the window still closes.
			if err := s.client.PExpire(ctx, redisKey, s.window).Err(); err != nil {
				return models.Decision{}, err
			}
			retryAfter = ceilSeconds(s.window)
		}
		return models.Decision{Allowed: false, Limit: s.limit, RetryAfter: retryAfter}, nil
	}

	return models.Decision{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count),
	}, nil
}
