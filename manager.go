package cacheaside

import (
	"context"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/unkn0wn-root/cacheaside/backend"
	c "github.com/unkn0wn-root/cacheaside/codec"
	"github.com/unkn0wn-root/cacheaside/internal/flight"
	"github.com/unkn0wn-root/cacheaside/internal/util"
)

const tracerName = "github.com/unkn0wn-root/cacheaside"

type outcome string

const (
	outcomeHit       outcome = "hit"
	outcomeMiss      outcome = "miss"
	outcomeCoalesced outcome = "coalesced"
	outcomeError     outcome = "error"
)

type manager[V any] struct {
	backend backend.Backend
	opts    Options[V]
	log     Logger
	hooks   Hooks
	tracer  trace.Tracer

	flights flight.Group[V]

	hits   atomic.Uint64
	misses atomic.Uint64
	errs   atomic.Uint64
}

func newManager[V any](opts Options[V]) (*manager[V], error) {
	if opts.Backend == nil {
		return nil, &ConfigurationError{Field: "backend", Reason: "is required"}
	}
	if opts.Expires < 0 {
		return nil, &ConfigurationError{Field: "expires", Reason: "must not be negative"}
	}

	// defaults
	opts.Codec = coalesce[c.Codec[V]](opts.Codec, c.JSON[V]{})
	opts.Logger = coalesce[Logger](opts.Logger, NopLogger{})
	opts.Hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	opts.Tracer = coalesce[trace.Tracer](opts.Tracer, otel.Tracer(tracerName))

	return &manager[V]{
		backend: opts.Backend,
		opts:    opts,
		log:     opts.Logger,
		hooks:   opts.Hooks,
		tracer:  opts.Tracer,
	}, nil
}

func (m *manager[V]) Get(ctx context.Context, key string) (V, error) {
	return m.GetWithCache(ctx, key, GetOptions[V]{})
}

func (m *manager[V]) GetWithCache(ctx context.Context, key string, o GetOptions[V]) (V, error) {
	var zero V
	req, err := resolve(key, m.opts, o)
	if err != nil {
		return zero, err
	}

	ctx, span := m.tracer.Start(ctx, "cacheaside.get",
		trace.WithAttributes(attribute.String("cache.key", req.storageKey)))
	defer span.End()

	v, out, err := m.get(ctx, req)
	span.SetAttributes(attribute.String("cache.outcome", string(out)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return zero, err
	}
	return v, nil
}

func (m *manager[V]) get(ctx context.Context, req request[V]) (V, outcome, error) {
	var zero V

	switch {
	case req.force:
		m.log.Debug("force get, ignoring cache", Fields{"key": req.key, "cacheKey": req.storageKey})
	case m.opts.Disabled:
	default:
		v, ok, err := m.lookup(ctx, req)
		if err != nil {
			m.errs.Add(1)
			return zero, outcomeError, err
		}
		if ok {
			m.hits.Add(1)
			return v, outcomeHit, nil
		}
	}

	if !req.singleFlight {
		v, err := m.fetch(ctx, req)
		if err != nil {
			return zero, outcomeError, err
		}
		return v, outcomeMiss, nil
	}

	// The leader fetches on behalf of every attached caller, so its own
	// cancellation must not decide their outcome.
	fetchCtx := context.WithoutCancel(ctx)
	v, err, leader := m.flights.Do(req.storageKey,
		func() { m.hooks.Coalesced(req.storageKey) },
		func() (V, error) { return m.fetch(fetchCtx, req) },
	)
	switch {
	case leader && err != nil:
		return zero, outcomeError, err
	case leader:
		return v, outcomeMiss, nil
	case err != nil:
		m.errs.Add(1)
		return zero, outcomeError, err
	default:
		m.hits.Add(1)
		m.log.Debug("coalesced onto in-flight fetch", Fields{"key": req.key, "cacheKey": req.storageKey})
		return v, outcomeCoalesced, nil
	}
}

// lookup reads and decodes the cached entry. Undecodable entries are reported and
// read as a miss; backend failures are returned.
func (m *manager[V]) lookup(ctx context.Context, req request[V]) (V, bool, error) {
	var zero V
	raw, ok, err := m.backend.Get(ctx, req.storageKey)
	if err != nil {
		m.hooks.BackendFailed("get", req.storageKey, err)
		m.log.Error("backend get failed", Fields{"cacheKey": req.storageKey, "err": err})
		return zero, false, &BackendError{Op: "get", Key: req.storageKey, Err: err}
	}
	if !ok {
		return zero, false, nil
	}

	v, err := req.codec.Decode(raw)
	if err != nil {
		derr := &DecodeError{Key: req.storageKey, Err: err}
		m.hooks.DecodeFailed(req.storageKey, derr)
		m.log.Warn("undecodable cache entry, treating as miss", Fields{"cacheKey": req.storageKey, "err": derr})
		return zero, false, nil
	}
	m.log.Debug("hit cache", Fields{"key": req.key, "cacheKey": req.storageKey})
	return v, true, nil
}

// fetch calls the getter and populates the backend. It owns the miss/error
// accounting for the caller that actually invoked the getter.
func (m *manager[V]) fetch(ctx context.Context, req request[V]) (V, error) {
	var zero V
	v, err := req.getter(ctx, req.key)
	if err != nil {
		m.errs.Add(1)
		m.hooks.OriginFailed(req.storageKey, err)
		m.log.Debug("getter failed", Fields{"key": req.key, "cacheKey": req.storageKey, "err": err})
		return zero, err
	}
	m.misses.Add(1)

	if m.opts.Disabled {
		return v, nil
	}

	ttl := req.expires
	if IsEmpty(v) {
		if req.emptyExpires <= 0 {
			m.hooks.EmptyResult(req.storageKey, false)
			m.log.Debug("empty data, cache ignored", Fields{"key": req.key, "cacheKey": req.storageKey})
			return v, nil
		}
		m.hooks.EmptyResult(req.storageKey, true)
		ttl = req.emptyExpires
	}

	if err := m.store(ctx, req, v, ttl); err != nil {
		return zero, err
	}
	return v, nil
}

func (m *manager[V]) store(ctx context.Context, req request[V], v V, ttl time.Duration) error {
	b, err := req.codec.Encode(v)
	if err != nil {
		m.log.Error("encode failed, value not cached", Fields{"cacheKey": req.storageKey, "err": err})
		return err
	}
	ok, err := m.backend.Set(ctx, req.storageKey, b, ttl)
	if err != nil {
		m.hooks.BackendFailed("set", req.storageKey, err)
		m.log.Error("backend set failed", Fields{"cacheKey": req.storageKey, "err": err})
		return &BackendError{Op: "set", Key: req.storageKey, Err: err}
	}
	if !ok {
		m.hooks.SetRejected(req.storageKey)
		m.log.Debug("set rejected by backend (pressure)", Fields{"cacheKey": req.storageKey})
	}
	return nil
}

func (m *manager[V]) Delete(ctx context.Context, key, prefix string) error {
	prefix = coalesce(prefix, m.opts.Prefix)
	switch {
	case key == "":
		return &ConfigurationError{Field: "key", Reason: "must not be empty"}
	case prefix == "":
		return &ConfigurationError{Field: "prefix", Reason: "not set on the call or the instance"}
	}
	if m.opts.Disabled {
		return nil
	}

	k := util.StorageKey(prefix, key)
	if err := m.backend.Del(ctx, k); err != nil {
		m.hooks.BackendFailed("del", k, err)
		m.log.Error("backend delete failed", Fields{"cacheKey": k, "err": err})
		return &BackendError{Op: "del", Key: k, Err: err}
	}
	m.log.Debug("deleted cache entry", Fields{"key": key, "cacheKey": k})
	return nil
}

func (m *manager[V]) Stats() Stats {
	return Stats{
		Hits:     m.hits.Load(),
		Misses:   m.misses.Load(),
		Errors:   m.errs.Load(),
		InFlight: m.flights.Len(),
	}
}

func (m *manager[V]) Close(ctx context.Context) error {
	return m.backend.Close(ctx)
}
