package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/unkn0wn-root/cacheaside"
)

// Hooks counts hook events in <namespace>_cacheaside_events_total{event=...}.
// Keys are never used as label values.
type Hooks struct {
	events *prometheus.CounterVec
}

var _ cacheaside.Hooks = (*Hooks)(nil)

// NewHooks registers the event counter with reg (prometheus.DefaultRegisterer when nil).
func NewHooks(reg prometheus.Registerer, namespace string) (*Hooks, error) {
	if namespace == "" {
		namespace = "app"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	events := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cacheaside",
			Name:      "events_total",
			Help:      "Cache events by kind",
		},
		[]string{"event"},
	)
	if err := reg.Register(events); err != nil {
		return nil, err
	}
	return &Hooks{events: events}, nil
}

func (h *Hooks) inc(event string) { h.events.WithLabelValues(event).Inc() }

func (h *Hooks) DecodeFailed(string, error)          { h.inc("decode_failed") }
func (h *Hooks) OriginFailed(string, error)          { h.inc("origin_failed") }
func (h *Hooks) BackendFailed(op, _ string, _ error) { h.inc("backend_" + op + "_failed") }
func (h *Hooks) Coalesced(string)                    { h.inc("coalesced") }
func (h *Hooks) SetRejected(string)                  { h.inc("set_rejected") }
func (h *Hooks) EmptyResult(_ string, cached bool) {
	if cached {
		h.inc("empty_cached")
		return
	}
	h.inc("empty_skipped")
}
