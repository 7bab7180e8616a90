// Package report renders analysis results as human-readable text.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/bft-labs/viocheck/internal/domain"
)

// Options controls what the text report includes.
type Options struct {
	// Detail adds interval spread statistics and line counters.
	Detail bool
}

// Header writes the line announcing which file is being read.
func Header(w io.Writer, path string) error {
	_, err := fmt.Fprintf(w, "Reading file: %s\n", path)
	return err
}

// Write renders a completed report with its verdict.
func Write(w io.Writer, r domain.Report, opts Options) error {
	p := &printer{w: w}

	p.printf("\n--- RESULTS ---\n")
	p.printf("Frames analyzed     : %d\n", r.Count)
	p.printf("Average frame delay : %.4f sec\n", r.AvgDelta)
	p.printf("Camera rate (FPS)   : %.2f Hz\n", r.Frequency)

	if opts.Detail {
		p.printf("\n--- DETAIL ---\n")
		p.printf("Shortest delay      : %.4f sec\n", r.Intervals.Min)
		p.printf("Longest delay       : %.4f sec\n", r.Intervals.Max)
		p.printf("Median delay        : %.4f sec\n", r.Intervals.Median)
		p.printf("Delay std deviation : %.4f sec\n", r.Intervals.StdDev)
		p.printf("Median-based rate   : %.2f Hz\n", r.MedianFrequency())
		p.printf("Lines read          : %d\n", r.Scan.LinesRead)
		p.printf("Lines skipped       : %d\n", r.Scan.Skipped())
		if r.Scan.Overflowed > 0 {
			p.printf("Out-of-range values : %d\n", r.Scan.Overflowed)
		}
	}

	switch r.Verdict {
	case domain.VerdictTooSlow:
		p.printf("\n[!] PROBLEM DETECTED: the camera is too slow (%.0f FPS).\n", r.Frequency)
		p.printf("    VIO needs at least %.0f FPS to initialize correctly.\n", r.Thresholds.RequiredFPS)
		p.printf("    Fix: check the camera configuration (Camera2 API) to force %.0f FPS.\n", r.Thresholds.RequiredFPS)
	default:
		p.printf("\n[OK] The frame rate looks correct.\n")
	}

	return p.err
}

// WriteError renders the message for a handled analysis error. It returns
// false when err is not one the report knows how to describe.
func WriteError(w io.Writer, err error) (bool, error) {
	var msg string
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		msg = "ERROR: file does not exist at this location."
	case errors.Is(err, domain.ErrInsufficientData):
		msg = "Not enough data to compute FPS."
	default:
		return false, nil
	}
	_, werr := fmt.Fprintln(w, msg)
	return true, werr
}

// printer keeps the first write error so callers can check once at the end.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
