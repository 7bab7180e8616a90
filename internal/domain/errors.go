package domain

import "errors"

// Errors returned by the analyzer. Check them with errors.Is.
var (
	// ErrFileNotFound is returned when the log path does not resolve to a file.
	ErrFileNotFound = errors.New("viocheck: file not found")

	// ErrInsufficientData is returned when fewer than two timestamps were
	// found, so no interval can be computed.
	ErrInsufficientData = errors.New("viocheck: insufficient data")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("viocheck: invalid configuration")
)
