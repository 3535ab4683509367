// Package ristretto adapts an in-process dgraph-io/ristretto cache to backend.Backend.
package ristretto

import (
	"context"
	"errors"
	"time"

	rc "github.com/dgraph-io/ristretto"

	"github.com/unkn0wn-root/cacheaside/backend"
)

type Ristretto struct {
	c    *rc.Cache
	cost func(key string, value []byte) int64
	sync bool
}

var _ backend.Backend = (*Ristretto)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
	// Cost prices an entry against MaxCost. nil => len(value), i.e. MaxCost is bytes.
	Cost func(key string, value []byte) int64
	// SyncWrites waits for each Set to be applied before returning. Ristretto buffers
	// writes, so without it a Get right after Set may still miss.
	SyncWrites bool
}

func New(cfg Config) (*Ristretto, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	cost := cfg.Cost
	if cost == nil {
		cost = func(_ string, v []byte) int64 { return int64(len(v)) }
	}
	return &Ristretto{c: c, cost: cost, sync: cfg.SyncWrites}, nil
}

func (p *Ristretto) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// not written by us; drop it
		p.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

// Set reports ok=false when ristretto's admission policy drops the write.
func (p *Ristretto) Set(_ context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	ok := p.c.SetWithTTL(key, value, p.cost(key, value), max(ttl, 0))
	if ok && p.sync {
		p.c.Wait()
	}
	return ok, nil
}

func (p *Ristretto) Del(_ context.Context, key string) error {
	p.c.Del(key)
	return nil
}

func (p *Ristretto) Close(_ context.Context) error {
	p.c.Wait()
	p.c.Close()
	return nil
}

// Metrics exposes ristretto's own counters when Config.Metrics is set.
func (p *Ristretto) Metrics() *rc.Metrics { return p.c.Metrics }
