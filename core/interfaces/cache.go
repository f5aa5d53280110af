// ABOUTME: Cache interface for the cache-aside layer shared by every aggregator
// ABOUTME: Implementations can be Redis, SQLite, in-memory, or any other TTL-aware store

package interfaces

import (
	"context"
	"time"
)

// Cache defines the contract for the cache-aside backing store.
// A read of an expired entry must behave as a miss even if the row
// still exists in the backing store; Set has upsert semantics, so
// concurrent writes for the same key resolve to last-write-wins.
//
// Callers own TTL policy. Aggregators treat any Get error as a cold
// cache and any Set error as a logged no-op, so implementations are
// free to fail without aborting aggregation.
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error on miss or expiry.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
