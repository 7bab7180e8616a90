package framelog

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"strconv"

	"github.com/bft-labs/viocheck/internal/domain"
	"github.com/bft-labs/viocheck/pkg/log"
)

// ErrNoMoreTimestamps marks the end of the log.
var ErrNoMoreTimestamps = io.EOF

var timestampPattern = regexp.MustCompile(`timestamp:\s+(\d+)\s+ns`)

// Scanner yields frame timestamps from a log in line order.
type Scanner struct {
	reader  *bufio.Reader
	pending [][]byte
	eof     bool
	stats   domain.ScanStats
	logger  log.Logger
}

// NewScanner creates a Scanner reading from r. Lines of any length are
// accepted.
func NewScanner(r io.Reader, logger log.Logger) *Scanner {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Scanner{
		reader: bufio.NewReaderSize(r, 64*1024),
		logger: logger,
	}
}

// Next returns the next timestamp. It returns io.EOF once the log is
// exhausted, ctx.Err() if ctx is done, or the underlying read error.
func (s *Scanner) Next(ctx context.Context) (domain.Timestamp, error) {
	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		line, err := s.nextLine()
		if err != nil {
			return 0, err
		}
		s.stats.LinesRead++

		ts, ok := s.parse(line)
		if !ok {
			continue
		}
		s.stats.LinesMatched++
		return ts, nil
	}
}

// Stats reports counters for the lines consumed so far.
func (s *Scanner) Stats() domain.ScanStats {
	return s.stats
}

// ReadAll drains the scanner and returns every timestamp in order.
func (s *Scanner) ReadAll(ctx context.Context) ([]domain.Timestamp, error) {
	var out []domain.Timestamp
	for {
		ts, err := s.Next(ctx)
		if errors.Is(err, ErrNoMoreTimestamps) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, ts)
	}
}

func (s *Scanner) parse(line []byte) (domain.Timestamp, bool) {
	m := timestampPattern.FindSubmatch(line)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseUint(string(m[1]), 10, 64)
	if err != nil {
		s.stats.Overflowed++
		s.logger.Debug("timestamp out of range, line skipped",
			log.Int("line", s.stats.LinesRead),
			log.String("value", string(m[1])))
		return 0, false
	}
	return domain.Timestamp(v), true
}

// nextLine returns the next logical line. "\n", "\r\n" and a lone "\r" all
// terminate a line.
func (s *Scanner) nextLine() ([]byte, error) {
	for len(s.pending) == 0 {
		if s.eof {
			return nil, io.EOF
		}
		raw, err := s.reader.ReadBytes('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, err
			}
			s.eof = true
			if len(raw) == 0 {
				continue
			}
		}
		s.pending = splitCR(bytes.TrimSuffix(raw, []byte("\n")))
	}
	line := s.pending[0]
	s.pending = s.pending[1:]
	return line, nil
}

// splitCR splits on '\r', dropping the empty tail left by a "\r\n" ending.
func splitCR(b []byte) [][]byte {
	parts := bytes.Split(b, []byte("\r"))
	if len(parts) > 1 && len(parts[len(parts)-1]) == 0 {
		parts = parts[:len(parts)-1]
	}
	return parts
}
