package contracts

import (
	"context"
	"time"
)

// RedisRepository is the thin key-value surface the session store and
// the locker are built on. TrySetNX is the compare-and-set primitive
// behind LockerService.TryLock.
type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
}
