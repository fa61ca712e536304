package contracts

import (
	"context"
	"time"
)

// LockerService is a redis-backed mutual exclusion primitive. The
// booking path takes a per-slot lock and the payment worker a single
// process-wide lock, both with a bounded TTL.
type LockerService interface {
	// TryLock attempts to take the lock without blocking. The returned
	// lockValue identifies the holder and is required to Unlock.
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
	// Refresh extends the TTL of a lock still owned by lockValue.
	Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error
}
