package cacheaside

import (
	"fmt"
)

// ConfigurationError reports a call that cannot run because a required setting
// resolved to nothing (no prefix, no getter, non-positive expiry, empty key).
// It is returned before the backend or the getter is touched.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("cacheaside: invalid configuration: %s: %s", e.Field, e.Reason)
}

// DecodeError describes a cached entry the codec could not decode. GetWithCache
// never returns it; the entry is treated as a miss and the error goes to the
// Logger and Hooks.DecodeFailed.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cacheaside: decode %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// BackendError wraps a failure of the backing store. Op is "get", "set" or "del".
type BackendError struct {
	Op  string
	Key string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("cacheaside: backend %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }
