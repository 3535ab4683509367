// Package cacheaside implements a cache-aside orchestrator in front of a key-value
// backend and an origin loader, with optional per-key request coalescing
// ("single-flight") to keep a burst of misses from stampeding the origin.
//
// Components:
//   - Backend: byte store with TTL (Redis, Ristretto, BigCache, ...).
//   - Codec[V]: (de)serializes V <-> []byte. JSON by default.
//   - Getter[V]: loads the authoritative value on a miss.
//
// Keys:
//
//	<prefix>:<key>  - prefix names a logical group, key the item inside it
//
// Request path:
//
//	GetWithCache(ctx, k, o)
//	  -> backend.Get(prefix:k) -> decode -> hit
//	  -> miss (or Force, or undecodable entry)
//	       -> single-flight: first caller runs the getter, others wait for its result
//	       -> getter(ctx, k) -> backend.Set(prefix:k, encode(v), Expires) -> v
//
// Empty results ("" / nil / empty slice, map or struct{}) are only stored when
// MissingOrEmptyExpires > 0, under that TTL.
//
// Coalescing is per process. Independent instances sharing a backend may each call
// the origin once for the same key.
package cacheaside
