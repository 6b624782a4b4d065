package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const keyPrefix = "fitquest-lock||"

var ErrNotAcquired = errors.New("lock held by another instance")

// only delete the key when it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisLocker hands out short-lived locks so scheduled jobs run on a single
// instance at a time.
type RedisLocker struct {
	rdb redis.Cmdable
}

func NewRedisLocker(rdb redis.Cmdable) *RedisLocker {
	return &RedisLocker{rdb: rdb}
}

// Acquire returns a release func on success, or ErrNotAcquired when somebody
// else holds the lock. ttl bounds how long a crashed holder blocks others.
func (l *RedisLocker) Acquire(ctx context.Context, name string, ttl time.Duration) (func(), error) {
	key := keyPrefix + name
	token := uuid.NewString()

	ok, err := l.rdb.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("setnx %s: %w", key, err)
	}
	if !ok {
		return nil, ErrNotAcquired
	}

	release := func() {
		// release must work even when the caller's ctx is already done
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, l.rdb, []string{key}, token).Err(); err != nil {
			log.Warnf("release lock %s: %s", key, err)
		}
	}
	return release, nil
}

// WithLock runs fn while holding the named lock. It is a no-op returning nil
// when the lock is held elsewhere.
func (l *RedisLocker) WithLock(ctx context.Context, name string, ttl time.Duration, fn func(ctx context.Context) error) error {
	release, err := l.Acquire(ctx, name, ttl)
	if errors.Is(err, ErrNotAcquired) {
		log.Debugf("lock %s busy, skipping", name)
		return nil
	}
	if err != nil {
		return err
	}
	defer release()
	return fn(ctx)
}
