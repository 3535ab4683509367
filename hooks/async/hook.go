// Package asynchook moves cacheaside hook delivery off the request path.
//
// usage:
//
//	raw := sloghook.New(slog.Default(), sloghook.Options{
//	    CoalescedEvery: 10, // sample logs: ~every 10th coalesced caller
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	m, _ := cacheaside.New[User](cacheaside.Options[User]{
//	    Backend: backend,
//	    Prefix:  "user",
//	    Expires: time.Minute,
//	    Hooks:   hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/cacheaside"
)

type Hooks struct {
	inner cacheaside.Hooks
	q     chan func()
	wg    sync.WaitGroup

	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

var _ cacheaside.Hooks = (*Hooks)(nil)

func New(inner cacheaside.Hooks, workers, qlen int) *Hooks {
	if inner == nil {
		inner = cacheaside.NopHooks{}
	}
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for range workers {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close stops accepting events and waits for queued ones to be delivered.
// Events raised after Close are dropped.
func (h *Hooks) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	close(h.q)
	h.mu.Unlock()
	h.wg.Wait()
}

// Dropped is the number of events discarded because the queue was full or closed.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default:
		h.dropped.Add(1)
	}
}

func (h *Hooks) DecodeFailed(k string, err error) { h.try(func() { h.inner.DecodeFailed(k, err) }) }
func (h *Hooks) OriginFailed(k string, err error) { h.try(func() { h.inner.OriginFailed(k, err) }) }
func (h *Hooks) Coalesced(k string)               { h.try(func() { h.inner.Coalesced(k) }) }
func (h *Hooks) SetRejected(k string)             { h.try(func() { h.inner.SetRejected(k) }) }
func (h *Hooks) EmptyResult(k string, cached bool) {
	h.try(func() { h.inner.EmptyResult(k, cached) })
}
func (h *Hooks) BackendFailed(op, k string, err error) {
	h.try(func() { h.inner.BackendFailed(op, k, err) })
}
