// Package ports defines the interfaces that connect the analyzer in
// internal/app to infrastructure adapters.
//
//   - [TimestampSource]: yields frame timestamps in log order
//   - [SourceOpener]: resolves a log path to a TimestampSource
//   - [Logger]: structured logging
//
// internal/app depends only on these. internal/adapters supplies the file
// system implementation, and tests supply in-memory ones.
package ports
