package framelog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bft-labs/viocheck/internal/domain"
	"github.com/bft-labs/viocheck/pkg/log"
)

// OpenFile opens the log at path and returns a Scanner over it along with
// the file, which the caller must close. A path that does not exist yields
// an error wrapping domain.ErrFileNotFound.
func OpenFile(path string, logger log.Logger) (*Scanner, *os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
		}
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, nil, fmt.Errorf("%s is a directory, not a log file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return NewScanner(f, logger), f, nil
}
