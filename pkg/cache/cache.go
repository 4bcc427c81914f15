// Package cache provides response-cache backends for the PyPI client.
//
// Three backends implement the [Cache] interface:
//
//   - [FileCache]: per-user on-disk cache, the CLI default
//   - [RedisCache]: shared cache for CI environments
//   - [NullCache]: no-op cache behind --no-cache
//
// Keys are hashed with SHA-256 before storage, so arbitrary strings
// (including full URLs) are safe keys.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The second return value distinguishes a miss
	// (false, nil) from an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live. A ttl of 0 means the entry
	// never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
