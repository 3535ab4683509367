package cacheaside

import (
	"time"

	c "github.com/unkn0wn-root/cacheaside/codec"
	"github.com/unkn0wn-root/cacheaside/internal/util"
)

// request is the immutable per-call configuration produced by resolve.
type request[V any] struct {
	key          string
	storageKey   string
	getter       Getter[V]
	codec        c.Codec[V]
	expires      time.Duration
	emptyExpires time.Duration
	singleFlight bool
	force        bool
}

// resolve merges call overrides over instance defaults. A set call-level value
// always wins; otherwise the instance value is used. inst must already carry its
// defaults (see newManager).
func resolve[V any](key string, inst Options[V], call GetOptions[V]) (request[V], error) {
	r := request[V]{
		key:          key,
		getter:       inst.Getter,
		codec:        inst.Codec,
		expires:      coalesce(call.Expires, inst.Expires),
		emptyExpires: inst.MissingOrEmptyExpires,
		singleFlight: inst.SingleFlight,
		force:        call.Force,
	}
	prefix := coalesce(call.Prefix, inst.Prefix)
	if call.Getter != nil {
		r.getter = call.Getter
	}
	if call.Codec != nil {
		r.codec = call.Codec
	}
	if call.MissingOrEmptyExpires != nil {
		r.emptyExpires = *call.MissingOrEmptyExpires
	}
	if call.SingleFlight != nil {
		r.singleFlight = *call.SingleFlight
	}

	switch {
	case key == "":
		return r, &ConfigurationError{Field: "key", Reason: "must not be empty"}
	case prefix == "":
		return r, &ConfigurationError{Field: "prefix", Reason: "not set on the call or the instance"}
	case r.getter == nil:
		return r, &ConfigurationError{Field: "getter", Reason: "not set on the call or the instance"}
	case r.expires <= 0:
		return r, &ConfigurationError{Field: "expires", Reason: "must be positive on the call or the instance"}
	}

	r.storageKey = util.StorageKey(prefix, key)
	return r, nil
}
