// Package backend defines the key-value store the cache orchestrator reads from and
// populates on a miss.
//
// Implementations MUST be byte-for-byte transparent: Get returns exactly the bytes
// previously passed to Set for a key. Expiry is the backend's job; the orchestrator
// never evicts anything itself.
package backend

import (
	"context"
	"time"
)

// Backend is a minimal byte store with TTLs. Must be safe for concurrent use.
type Backend interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value for ttl. ttl is always positive when called by the orchestrator.
	// Returns ok=false when the store refused the write under pressure; that is not
	// an error.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) (ok bool, err error)

	// Del removes a key. Deleting a missing key is not an error.
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
