package cacheaside

// Stats is a point-in-time view of a Manager's counters.
//
// Hits, Misses and Errors are cumulative since the Manager was created and together
// equal the number of completed GetWithCache calls that got past option validation.
// A coalesced caller that received the leader's value counts as a hit.
type Stats struct {
	Hits   uint64
	Misses uint64 // calls that invoked the getter successfully
	Errors uint64

	// InFlight is the number of keys with a coalesced fetch currently outstanding.
	InFlight int
}

// HitRatio is Hits / (Hits + Misses), or 0 before the first lookup.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
