package fs

import (
	"io"

	"github.com/bft-labs/viocheck/internal/ports"
	"github.com/bft-labs/viocheck/pkg/framelog"
	"github.com/bft-labs/viocheck/pkg/log"
)

// LogFileOpener implements ports.SourceOpener over log files on local disk.
type LogFileOpener struct {
	logger log.Logger
}

// NewLogFileOpener creates an opener whose scanners log through logger.
func NewLogFileOpener(logger log.Logger) *LogFileOpener {
	return &LogFileOpener{logger: logger}
}

// Open opens path for scanning.
func (o *LogFileOpener) Open(path string) (ports.TimestampSource, io.Closer, error) {
	s, f, err := framelog.OpenFile(path, o.logger)
	if err != nil {
		return nil, nil, err
	}
	return s, f, nil
}
