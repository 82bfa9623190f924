package slotlock

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix  = "slotlock:"
	minRetryBackoff = 5 * time.Millisecond
	maxRetryBackoff = 100 * time.Millisecond
)

// Deletes the key only while it still holds our token, so an expired lock taken over
// by another instance is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker shares partition locks between service instances through SET NX PX.
type RedisLocker struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisLocker creates a locker whose keys expire after ttl if the holder dies.
func NewRedisLocker(client redis.UniversalClient, ttl time.Duration) *RedisLocker {
	return &RedisLocker{client: client, ttl: ttl}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := redisKeyPrefix + key
	token := uuid.NewString()
	backoff := minRetryBackoff

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, timeoutError(ctx)
			}
			return nil, err
		}
		if ok {
			break
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, timeoutError(ctx)
		case <-timer.C:
		}
		backoff = min(backoff*2, maxRetryBackoff)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := releaseScript.Run(releaseCtx, l.client, []string{redisKey}, token).Err(); err != nil {
				log.Printf("slotlock: release %s: %v", key, err)
			}
		})
	}, nil
}
