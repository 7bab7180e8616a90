package domain

// Verdict is the outcome of comparing the measured frame rate with the
// minimum required for VIO initialization.
type Verdict int

const (
	VerdictOK Verdict = iota
	VerdictTooSlow
)

func (v Verdict) String() string {
	switch v {
	case VerdictOK:
		return "ok"
	case VerdictTooSlow:
		return "too_slow"
	default:
		return "unknown"
	}
}

// Thresholds drive the verdict. MinFPS is the value actually compared
// against; RequiredFPS is only quoted in the warning text.
type Thresholds struct {
	MinFPS      float64
	RequiredFPS float64
}

// DefaultThresholds returns the 15 Hz comparison and the 30 FPS requirement.
func DefaultThresholds() Thresholds {
	return Thresholds{MinFPS: 15, RequiredFPS: 30}
}

// Judge applies the decision rule: below MinFPS is too slow.
func (t Thresholds) Judge(frequency float64) Verdict {
	if frequency < t.MinFPS {
		return VerdictTooSlow
	}
	return VerdictOK
}

// ScanStats counts what a scan over a log saw.
type ScanStats struct {
	LinesRead    int
	LinesMatched int
	// Overflowed counts lines whose digits matched but did not fit in a
	// Timestamp. They are skipped like any other non-matching line.
	Overflowed int
}

// Skipped returns the number of lines that produced no timestamp.
func (s ScanStats) Skipped() int {
	return s.LinesRead - s.LinesMatched
}

// Report is the result of analyzing one log.
type Report struct {
	Path       string
	Count      int
	AvgDelta   float64
	Frequency  float64
	Verdict    Verdict
	Thresholds Thresholds

	Intervals IntervalStats
	Scan      ScanStats
}

// MedianFrequency is the rate implied by the median interval. It is less
// sensitive than Frequency to a few dropped or duplicated frames.
func (r Report) MedianFrequency() float64 {
	return Frequency(r.Intervals.Median)
}

// NewReport derives a report from timestamps in file order. It returns
// ErrInsufficientData when fewer than two timestamps are given.
func NewReport(path string, ts []Timestamp, th Thresholds) (Report, error) {
	if len(ts) < 2 {
		return Report{}, ErrInsufficientData
	}
	deltas := Deltas(ts)
	avg := Mean(deltas)
	freq := Frequency(avg)
	return Report{
		Path:       path,
		Count:      len(ts),
		AvgDelta:   avg,
		Frequency:  freq,
		Verdict:    th.Judge(freq),
		Thresholds: th,
		Intervals:  ComputeIntervalStats(deltas),
	}, nil
}
