// Package config loads, normalizes, and validates stemsort configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI and the import pipeline need: grouping thresholds, tempo
// estimation bounds, analysis concurrency, and log output.
//
// Always obtain settings through this package so downstream code receives
// canonical log formats and clear validation errors.
package config
