package ports

import "github.com/bft-labs/viocheck/pkg/log"

// Logger is the logging port. It is the public pkg/log interface so any
// adapter from that package plugs in directly.
type Logger = log.Logger
