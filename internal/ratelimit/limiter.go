package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Limiter interface {
	// Allow records one hit for key and reports whether it is within the limit.
	Allow(ctx context.Context, key string) (bool, error)
}

// hitScript counts one hit and gives the key a TTL whenever it has none, so a
// counter can never outlive its window.
var hitScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// redisLimiter is a fixed-window counter keyed per client and purpose.
type redisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) Limiter {
	return &redisLimiter{client: client, limit: int64(limit), window: window}
}

func windowKey(key string) string {
	return fmt.Sprintf("ratelimit:%s", key)
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := hitScript.Run(ctx, l.client, []string{windowKey(key)}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("record rate limit hit: %w", err)
	}
	return count <= l.limit, nil
}

type noopLimiter struct{}

// NewNoop returns a limiter that allows everything; used when Redis is not configured.
func NewNoop() Limiter {
	return noopLimiter{}
}

func (noopLimiter) Allow(context.Context, string) (bool, error) {
	return true, nil
}
