package domain

import (
	"math"
	"slices"
)

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Frequency converts an interval in seconds to a rate in Hz.
// Non-positive intervals yield 0 instead of dividing by zero.
func Frequency(interval float64) float64 {
	if interval <= 0 {
		return 0
	}
	return 1.0 / interval
}

// IntervalStats summarizes a series of frame deltas (seconds).
type IntervalStats struct {
	Count  int
	Mean   float64
	Min    float64
	Max    float64
	Median float64
	StdDev float64
}

// ComputeIntervalStats summarizes deltas. StdDev is the population standard
// deviation. An empty input yields the zero value.
func ComputeIntervalStats(deltas []float64) IntervalStats {
	if len(deltas) == 0 {
		return IntervalStats{}
	}

	sorted := slices.Clone(deltas)
	slices.Sort(sorted)

	mean := Mean(deltas)
	variance := 0.0
	for _, d := range deltas {
		variance += (d - mean) * (d - mean)
	}
	variance /= float64(len(deltas))

	n := len(sorted)
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return IntervalStats{
		Count:  n,
		Mean:   mean,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Median: median,
		StdDev: math.Sqrt(variance),
	}
}
