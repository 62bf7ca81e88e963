package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// slidingWindow purge les horodatages hors fenêtre puis enregistre la requête s'il reste
// de la place. Renvoie {1, 0} si acceptée, {0, attente_ms} sinon.
var slidingWindow = redis.NewScript(`
local key    = KEYS[1]
local now    = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit  = tonumber(ARGV[3])
redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
if redis.call('ZCARD', key) >= limit then
  local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
  return {0, tonumber(oldest[2]) + window - now}
end
redis.call('ZADD', key, now, ARGV[4])
redis.call('PEXPIRE', key, window)
return {1, 0}
`)

// RateLimiter fenêtre glissante sur un ZSET par clé.
type RateLimiter struct {
	client    redis.Scripter
	limit     int
	window    time.Duration
	keyPrefix string
	now       func() time.Time
}

// NewRateLimiter limiteur de limit requêtes par window.
func NewRateLimiter(client redis.Scripter, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, limit: limit, window: window, keyPrefix: "ratelimit:", now: time.Now}
}

func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	now := l.now().UnixMilli()
	res, err := slidingWindow.Run(ctx, l.client, []string{l.keyPrefix + key},
		now, l.window.Milliseconds(), l.limit, fmt.Sprintf("%d-%s", now, uuid.NewString()),
	).Int64Slice()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit: %w", err)
	}
	if res[0] == 1 {
		return true, 0, nil
	}
	return false, time.Duration(res[1]) * time.Millisecond, nil
}
