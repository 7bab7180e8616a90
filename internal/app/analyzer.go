package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/bft-labs/viocheck/internal/domain"
	"github.com/bft-labs/viocheck/internal/ports"
	"github.com/bft-labs/viocheck/pkg/log"
)

// AnalyzerConfig contains the settings for one analysis run.
type AnalyzerConfig struct {
	Thresholds domain.Thresholds
}

// Analyzer reads a VIO log and derives the camera frame rate from the
// frame timestamps it contains.
type Analyzer struct {
	config AnalyzerConfig
	opener ports.SourceOpener
	logger ports.Logger
}

// NewAnalyzer creates an analyzer with the given dependencies.
func NewAnalyzer(config AnalyzerConfig, opener ports.SourceOpener, logger ports.Logger) *Analyzer {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Analyzer{
		config: config,
		opener: opener,
		logger: logger,
	}
}

// Analyze makes a single pass over the log at path.
//
// A missing file yields domain.ErrFileNotFound. Fewer than two timestamps
// yields domain.ErrInsufficientData together with a partial report carrying
// the count and scan counters; no statistics are computed in that case.
func (a *Analyzer) Analyze(ctx context.Context, path string) (domain.Report, error) {
	src, closer, err := a.opener.Open(path)
	if err != nil {
		return domain.Report{Path: path}, err
	}
	defer closer.Close()

	var timestamps []domain.Timestamp
	for {
		ts, err := src.Next(ctx)
		if errors.Is(err, ports.ErrNoMoreTimestamps) {
			break
		}
		if err != nil {
			return domain.Report{Path: path}, fmt.Errorf("read %s: %w", path, err)
		}
		timestamps = append(timestamps, ts)
	}

	scan := src.Stats()
	a.logger.Debug("log scanned",
		log.String("path", path),
		log.Int("lines", scan.LinesRead),
		log.Int("matched", scan.LinesMatched),
		log.Int("overflowed", scan.Overflowed))

	report, err := domain.NewReport(path, timestamps, a.config.Thresholds)
	if err != nil {
		return domain.Report{Path: path, Count: len(timestamps), Thresholds: a.config.Thresholds, Scan: scan},
			fmt.Errorf("%w: %d timestamp(s) in %s", err, len(timestamps), path)
	}
	report.Scan = scan

	a.logger.Debug("analysis complete",
		log.Int("frames", report.Count),
		log.Float64("avg_delta_s", report.AvgDelta),
		log.Float64("fps", report.Frequency),
		log.String("verdict", report.Verdict.String()))

	return report, nil
}
