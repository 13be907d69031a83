// Package ratelimit throttles repeated failed attempts per client key.
package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// AttemptLimiter blocks a key once it has limit failures inside the window.
// A successful attempt resets the key.
type AttemptLimiter interface {
	TooManyRecent(key string) bool
	AddFailure(key string)
	Reset(key string)
}

// MemoryLimiter keeps failure timestamps in process memory and prunes them
// as the window slides.
type MemoryLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	limit    int
	window   time.Duration
	now      func() time.Time
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		attempts: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

func (limiter *MemoryLimiter) TooManyRecent(key string) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	return len(limiter.pruneLocked(normalizeKey(key), limiter.now())) >= limiter.limit
}

func (limiter *MemoryLimiter) AddFailure(key string) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	key = normalizeKey(key)
	now := limiter.now()
	limiter.attempts[key] = append(limiter.pruneLocked(key, now), now)
}

func (limiter *MemoryLimiter) Reset(key string) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	delete(limiter.attempts, normalizeKey(key))
}

func (limiter *MemoryLimiter) pruneLocked(key string, now time.Time) []time.Time {
	values := limiter.attempts[key]
	if len(values) == 0 {
		return []time.Time{}
	}

	threshold := now.Add(-limiter.window)
	pruned := make([]time.Time, 0, len(values))
	for _, value := range values {
		if value.After(threshold) {
			pruned = append(pruned, value)
		}
	}
	if len(pruned) == 0 {
		delete(limiter.attempts, key)
		return []time.Time{}
	}

	limiter.attempts[key] = pruned
	return pruned
}

func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return "unknown"
	}
	return key
}
