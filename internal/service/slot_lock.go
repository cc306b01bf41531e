package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSlotLockNotAcquired is returned when another request currently holds
// the lock for the same slot.
var ErrSlotLockNotAcquired = errors.New("slot lock not acquired")

// unlockScript deletes the lock key only if this holder's token still owns
// it, so an expired lock re-acquired by someone else is never released by
// the original holder.
var unlockScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

// SlotLocker serializes booking attempts per concrete slot. The lock is an
// optimization that turns concurrent contenders into fast failures; the
// database unique index remains the correctness backstop.
type SlotLocker interface {
	WithSlotLock(ctx context.Context, providerID uuid.UUID, date time.Time, startTime string, fn func(ctx context.Context) error) error
}

type redisSlotLocker struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

func NewRedisSlotLocker(client *redis.Client, log *logrus.Logger, ttl time.Duration) SlotLocker {
	return &redisSlotLocker{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func (l *redisSlotLocker) WithSlotLock(ctx context.Context, providerID uuid.UUID, date time.Time, startTime string, fn func(ctx context.Context) error) error {
	key := fmt.Sprintf("lock:slot:%s:%s:%s", providerID, date.Format("2006-01-02"), startTime)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("acquire slot lock: %w", err)
	}
	if !ok {
		return ErrSlotLockNotAcquired
	}

	defer func() {
		if err := l.release(ctx, key, token); err != nil {
			l.log.Warnf("Failed to release slot lock %s: %+v", key, err)
		}
	}()

	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(ctxWithTimeout)
}

func (l *redisSlotLocker) release(ctx context.Context, key, token string) error {
	_, err := unlockScript.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("release slot lock: %w", err)
	}
	return nil
}
