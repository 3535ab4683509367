// Package sloghook logs cacheaside hook events through log/slog.
package sloghook

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/cacheaside"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	CoalescedEvery uint64
	EmptyEvery     uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	coalescedCtr atomic.Uint64
	emptyCtr     atomic.Uint64
}

var _ cacheaside.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) DecodeFailed(storageKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("cacheaside.decode_failed",
		"key", h.redact(storageKey),
		"err", err)
}

func (h *Hooks) OriginFailed(storageKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Info("cacheaside.origin_failed",
		"key", h.redact(storageKey),
		"err", err)
}

func (h *Hooks) BackendFailed(op, storageKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("cacheaside.backend_failed",
		"op", op,
		"key", h.redact(storageKey),
		"err", err)
}

func (h *Hooks) Coalesced(storageKey string) {
	if h.l == nil || !sample(h.opts.CoalescedEvery, &h.coalescedCtr) {
		return
	}
	h.l.Debug("cacheaside.coalesced",
		"key", h.redact(storageKey))
}

func (h *Hooks) EmptyResult(storageKey string, cached bool) {
	if h.l == nil || !sample(h.opts.EmptyEvery, &h.emptyCtr) {
		return
	}
	h.l.Debug("cacheaside.empty_result",
		"key", h.redact(storageKey),
		"cached", cached)
}

func (h *Hooks) SetRejected(storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Warn("cacheaside.set_rejected",
		"key", h.redact(storageKey))
}
