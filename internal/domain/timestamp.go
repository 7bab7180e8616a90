package domain

// Timestamp is a frame timestamp in nanoseconds since an arbitrary epoch.
type Timestamp uint64

// Seconds converts the timestamp to floating-point seconds.
func (t Timestamp) Seconds() float64 {
	return float64(t) / 1e9
}

// Deltas returns the intervals in seconds between adjacent timestamps, in
// sequence order. Ordering is not checked, so out-of-order input yields
// negative deltas.
func Deltas(ts []Timestamp) []float64 {
	if len(ts) < 2 {
		return nil
	}
	deltas := make([]float64, len(ts)-1)
	for i := 0; i < len(ts)-1; i++ {
		deltas[i] = ts[i+1].Seconds() - ts[i].Seconds()
	}
	return deltas
}
