package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redsync/redsync/v4"
)

// ErrCacheMiss is returned by Get when the key does not exist.
var ErrCacheMiss = errors.New("cache: key not found")

// CacheService defines the interface for cache operations. Payloads are
// opaque strings; callers own serialization.
type CacheService interface {
	// Set stores a value with an expiration time (atomic set-with-expiry)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Get retrieves a value; ErrCacheMiss when the key is absent
	Get(ctx context.Context, key string) (string, error)

	// Incr atomically increments an integer value, initializing absent keys to 1
	Incr(ctx context.Context, key string) (int64, error)

	// Delete removes a key from cache synchronously (blocking)
	Delete(ctx context.Context, key string) error

	// Unlink removes a key from cache asynchronously (non-blocking)
	Unlink(ctx context.Context, key string) error

	// DeletePattern removes all keys matching a pattern
	DeletePattern(ctx context.Context, pattern string) error

	// Exists checks if a key exists in cache
	Exists(ctx context.Context, key string) (bool, error)

	// Close closes the cache connection
	Close() error

	// HealthCheck verifies cache connectivity
	HealthCheck(ctx context.Context) error

	// NewMutex creates a redlock mutex for cross-replica coordination
	NewMutex(name string, options ...redsync.Option) *redsync.Mutex
}
