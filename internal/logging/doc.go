// Package logging constructs the slog loggers used across stemsort and
// standardizes their structured fields.
//
// Two handler formats exist: a compact console format for interactive use
// and JSON for machine consumption. Components attach themselves with
// NewComponentLogger, per-batch and per-file fields travel on the context,
// and tests use NewNop to silence output.
package logging
