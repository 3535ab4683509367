package cacheaside

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// Ptr returns a pointer to v. Handy for the tri-state fields of GetOptions:
//
//	m.GetWithCache(ctx, id, cacheaside.GetOptions[User]{SingleFlight: cacheaside.Ptr(false)})
func Ptr[T any](v T) *T { return &v }
