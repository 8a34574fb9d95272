package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateGrouping(); err != nil {
		return err
	}
	if err := c.validateTempo(); err != nil {
		return err
	}
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateGrouping() error {
	if c.Grouping.SessionSimilarityThreshold < 0 || c.Grouping.SessionSimilarityThreshold > 1 {
		return errors.New("grouping.session_similarity_threshold must be between 0 and 1")
	}
	if c.Grouping.AudioSimilarityThreshold < 0 || c.Grouping.AudioSimilarityThreshold > 1 {
		return errors.New("grouping.audio_similarity_threshold must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateTempo() error {
	if c.Tempo.PeakThreshold <= 0 || c.Tempo.PeakThreshold > 1 {
		return errors.New("tempo.peak_threshold must be between 0 and 1")
	}
	if c.Tempo.MinPeakSpacingSeconds <= 0 {
		return errors.New("tempo.min_peak_spacing_seconds must be positive")
	}
	if c.Tempo.MinBPM <= 0 {
		return errors.New("tempo.min_bpm must be positive")
	}
	if c.Tempo.MaxBPM <= c.Tempo.MinBPM {
		return fmt.Errorf("tempo.max_bpm must be greater than tempo.min_bpm (%g)", c.Tempo.MinBPM)
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.FileTimeoutSeconds < 0 {
		return errors.New("analysis.file_timeout_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
