package cliconfig

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/bft-labs/viocheck/pkg/log"
)

// Logger returns the stderr console logger used by the CLI, at info level
// until the configured level is known.
func Logger() zerolog.Logger {
	return log.NewConsoleLogger(os.Stderr, zerolog.InfoLevel)
}
