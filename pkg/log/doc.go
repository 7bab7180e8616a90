// Package log provides the structured logging abstraction used by viocheck.
//
// Components log through the Logger interface so they can be exercised in
// tests with NewNoopLogger and wired to zerolog in the CLI:
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	logger.Debug("skipped line", log.Int("line", 42))
package log
