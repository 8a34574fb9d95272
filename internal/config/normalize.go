package config

import (
	"runtime"
	"strings"
)

func (c *Config) normalize() {
	c.normalizeAnalysis()
	c.normalizeLogging()
}

func (c *Config) normalizeAnalysis() {
	if c.Analysis.Workers <= 0 {
		c.Analysis.Workers = runtime.NumCPU()
	}
	if c.Analysis.WaveformBuckets <= 0 {
		c.Analysis.WaveformBuckets = defaultWaveformBuckets
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
