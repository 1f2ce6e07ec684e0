// Package cache stores encoded renders between runs.
//
// Rendering the 1024px base image dominates export time, so the CLI keeps the
// encoded PNG in a small file cache keyed by the render size and a hash of
// the style. Any change to the palette or geometry produces a new key.
//
// Two implementations are provided:
//   - [FileCache]: entries as JSON files under a directory (CLI default)
//   - [NullCache]: never stores anything (--no-cache, tests)
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored data and true, or false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// RenderKey returns the cache key for a render of the given size and style
// produced by renderer version version. The style is hashed through its JSON
// encoding.
func RenderKey(version string, size int, style any) string {
	return hashKey("render", version, size, style)
}
