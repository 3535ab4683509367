package cacheaside

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/unkn0wn-root/cacheaside/backend"
	c "github.com/unkn0wn-root/cacheaside/codec"
)

// Getter loads the authoritative value for key on a cache miss.
// Errors are returned to the caller unchanged and are never cached or retried.
type Getter[V any] func(ctx context.Context, key string) (V, error)

// Manager is the cache-aside orchestrator. V is the caller's value type;
// serialization is handled by a pluggable Codec[V].
type Manager[V any] interface {
	// GetWithCache returns the cached value for key or loads it through the getter,
	// stores it and returns it. o overrides the instance Options for this call only.
	GetWithCache(ctx context.Context, key string, o GetOptions[V]) (V, error)

	// Get is GetWithCache with no per-call overrides.
	Get(ctx context.Context, key string) (V, error)

	// Delete removes "<prefix>:<key>" from the backend. An empty prefix means the
	// instance prefix. In-flight fetches for the key are not affected.
	Delete(ctx context.Context, key, prefix string) error

	// Stats returns a snapshot of the counters.
	Stats() Stats

	// Close closes the backend.
	Close(context.Context) error
}

// Options are the instance-wide defaults. Only Backend is required here; Prefix,
// Getter and Expires may instead be supplied on every call through GetOptions.
type Options[V any] struct {
	// Required
	Backend backend.Backend

	Codec                 c.Codec[V]    // nil => codec.JSON[V]
	Prefix                string        // logical group, e.g. "user"; keys become "<prefix>:<key>"
	Getter                Getter[V]     // origin loader
	Expires               time.Duration // TTL for fetched values; must be > 0 once merged
	MissingOrEmptyExpires time.Duration // TTL for empty results; 0 => empty results are not cached
	SingleFlight          bool          // coalesce concurrent misses per key; default false
	Disabled              bool          // bypass the backend entirely, always call the getter

	Logger Logger       // if nil, NopLogger is used
	Hooks  Hooks        // if nil, NopHooks is used
	Tracer trace.Tracer // if nil, the global otel tracer provider is used
}

// GetOptions override Options for a single call. Zero values (and nil pointers)
// inherit the instance setting.
type GetOptions[V any] struct {
	Prefix                string
	Getter                Getter[V]
	Codec                 c.Codec[V]
	Expires               time.Duration
	MissingOrEmptyExpires *time.Duration
	SingleFlight          *bool
	Force                 bool // skip the cache read; still stores the fresh value
}

// New validates opts and applies defaults. It fails only when Backend is nil or
// Expires is negative; missing Prefix, Getter or Expires surface per call.
func New[V any](opts Options[V]) (Manager[V], error) {
	m, err := newManager[V](opts)
	if err != nil {
		return nil, err
	}
	return m, nil
}
