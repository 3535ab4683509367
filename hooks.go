package cacheaside

// Hooks are lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking; they run on the request path.
type Hooks interface {
	// A cached entry could not be decoded and was treated as a miss.
	DecodeFailed(storageKey string, err error)

	// The getter failed. With single-flight on, every coalesced caller receives err.
	OriginFailed(storageKey string, err error)

	// A backend call failed. op ∈ {"get", "set", "del"}.
	BackendFailed(op, storageKey string, err error)

	// A caller attached to an in-flight fetch instead of calling the getter.
	Coalesced(storageKey string)

	// The getter returned an empty value. cached reports whether it was stored
	// under the missing-or-empty TTL.
	EmptyResult(storageKey string, cached bool)

	// Backend returned ok=false on Set (backpressure/admission).
	SetRejected(storageKey string)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) DecodeFailed(string, error)          {}
func (NopHooks) OriginFailed(string, error)          {}
func (NopHooks) BackendFailed(string, string, error) {}
func (NopHooks) Coalesced(string)                    {}
func (NopHooks) EmptyResult(string, bool)            {}
func (NopHooks) SetRejected(string)                  {}
