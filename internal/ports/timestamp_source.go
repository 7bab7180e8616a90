package ports

import (
	"context"
	"io"

	"github.com/bft-labs/viocheck/internal/domain"
)

// TimestampSource yields frame timestamps in the order they appear in a log.
type TimestampSource interface {
	// Next returns the next timestamp, or io.EOF when none remain.
	Next(ctx context.Context) (domain.Timestamp, error)

	// Stats reports how many lines have been consumed and matched.
	Stats() domain.ScanStats
}

// SourceOpener opens the log at path. The returned Closer must be closed by
// the caller. A missing path yields an error wrapping domain.ErrFileNotFound.
type SourceOpener interface {
	Open(path string) (TimestampSource, io.Closer, error)
}

// ErrNoMoreTimestamps indicates the source is exhausted.
var ErrNoMoreTimestamps = io.EOF
