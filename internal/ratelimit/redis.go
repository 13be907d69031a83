package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisTimeout = 2 * time.Second

var addFailureScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// RedisLimiter shares failure counters across instances. The first failure
// opens a fixed window for the key; the counter expires with it.
type RedisLimiter struct {
	client *redis.Client
	prefix string
	limit  int
	window time.Duration
	// OnError receives Redis failures; the limiter fails closed.
	OnError func(error)
}

func NewRedisLimiter(addr string, password string, prefix string, limit int, window time.Duration) (*RedisLimiter, error) {
	if limit <= 0 || window <= 0 {
		return nil, errors.New("rate limiter requires positive limit and window")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errors.New("rate limiter redis addr is required")
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "fitplan:ratelimit"
	}
	return &RedisLimiter{
		client: redis.NewClient(&redis.Options{Addr: addr, Password: password}),
		prefix: prefix,
		limit:  limit,
		window: window,
	}, nil
}

// Ping checks connectivity at startup.
func (limiter *RedisLimiter) Ping(ctx context.Context) error {
	return limiter.client.Ping(ctx).Err()
}

func (limiter *RedisLimiter) Close() error {
	return limiter.client.Close()
}

func (limiter *RedisLimiter) TooManyRecent(key string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	count, err := limiter.client.Get(ctx, limiter.redisKey(key)).Int()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		limiter.report(fmt.Errorf("read attempts: %w", err))
		return true
	}
	return count >= limiter.limit
}

func (limiter *RedisLimiter) AddFailure(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	err := addFailureScript.Run(ctx, limiter.client, []string{limiter.redisKey(key)}, limiter.window.Milliseconds()).Err()
	if err != nil {
		limiter.report(fmt.Errorf("record attempt: %w", err))
	}
}

func (limiter *RedisLimiter) Reset(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	if err := limiter.client.Del(ctx, limiter.redisKey(key)).Err(); err != nil {
		limiter.report(fmt.Errorf("reset attempts: %w", err))
	}
}

func (limiter *RedisLimiter) redisKey(key string) string {
	return limiter.prefix + ":" + normalizeKey(key)
}

func (limiter *RedisLimiter) report(err error) {
	if limiter.OnError != nil {
		limiter.OnError(err)
	}
}
