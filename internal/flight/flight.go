// Package flight merges concurrent fetches for the same key into one call.
//
// The first caller for a key becomes the leader and runs fn. Callers arriving while
// the leader is running attach to the same call and block until it settles; all of
// them observe the leader's value and error. Create-or-attach happens under one lock,
// so two callers can never both become leader for the same in-flight key.
package flight

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// PanicError is handed to attached callers when the leader's fn panicked.
// The leader itself re-panics with the original value.
type PanicError struct {
	Value any
	Stack []byte
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("flight: fetch panicked: %v\n\n%s", p.Value, p.Stack)
}

type call[V any] struct {
	done    chan struct{}
	val     V
	err     error
	waiters int
}

// Group is a table of in-flight calls. The zero value is ready to use.
type Group[V any] struct {
	mu    sync.Mutex
	calls map[string]*call[V]
}

// Do runs fn for key unless a call for key is already in flight, in which case it
// waits for that call instead. leader reports whether this caller ran fn.
//
// onJoin, if non-nil, is invoked for attaching callers after they are registered on
// the call and before they block.
func (g *Group[V]) Do(key string, onJoin func(), fn func() (V, error)) (v V, err error, leader bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call[V])
	}
	if c, ok := g.calls[key]; ok {
		c.waiters++
		g.mu.Unlock()
		if onJoin != nil {
			onJoin()
		}
		<-c.done
		return c.val, c.err, false
	}
	c := &call[V]{done: make(chan struct{})}
	g.calls[key] = c
	g.mu.Unlock()

	g.run(key, c, fn)
	return c.val, c.err, true
}

func (g *Group[V]) run(key string, c *call[V], fn func() (V, error)) {
	normalReturn := false
	defer func() {
		var rec any
		if !normalReturn {
			rec = recover()
			c.err = &PanicError{Value: rec, Stack: debug.Stack()}
		}

		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()
		close(c.done)

		// rec is nil on runtime.Goexit; let it unwind.
		if rec != nil {
			panic(rec)
		}
	}()

	c.val, c.err = fn()
	normalReturn = true
}

// Len is the number of keys with a call in flight.
func (g *Group[V]) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

// Waiters is the number of callers attached to the in-flight call for key,
// not counting the leader. 0 when nothing is in flight.
func (g *Group[V]) Waiters(key string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if c, ok := g.calls[key]; ok {
		return c.waiters
	}
	return 0
}
