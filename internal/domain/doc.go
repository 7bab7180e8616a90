// Package domain contains the core types of viocheck: frame timestamps, the
// intervals between them, and the report derived from those intervals.
//
// It has no dependencies on the file system, logging, or the CLI. Everything
// here is pure computation and can be tested without fixtures.
//
//   - [Timestamp]: a frame timestamp in nanoseconds, as read from the log
//   - [IntervalStats]: statistics over consecutive frame deltas
//   - [Report]: the result of one analysis run, including its [Verdict]
package domain
