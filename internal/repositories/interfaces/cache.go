package interfaces

import (
	"context"
	"time"
)

// CacheService is satisfied by pkg/cache. Repositories tolerate a nil cache;
// every miss falls through to the store.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
