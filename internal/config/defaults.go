package config

import "runtime"

const (
	defaultSessionSimilarityThreshold = 0.7
	defaultAudioSimilarityThreshold   = 0.8
	defaultPeakThreshold              = 0.5
	defaultMinPeakSpacingSeconds      = 0.3
	defaultMinBPM                     = 60
	defaultMaxBPM                     = 200
	defaultFileTimeoutSeconds         = 30
	defaultWaveformBuckets            = 256
	defaultLogFormat                  = "console"
	defaultLogLevel                   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Grouping: Grouping{
			SessionSimilarityThreshold: defaultSessionSimilarityThreshold,
			AudioSimilarityThreshold:   defaultAudioSimilarityThreshold,
			MergeSessions:              false,
		},
		Tempo: Tempo{
			PeakThreshold:         defaultPeakThreshold,
			MinPeakSpacingSeconds: defaultMinPeakSpacingSeconds,
			MinBPM:                defaultMinBPM,
			MaxBPM:                defaultMaxBPM,
		},
		Analysis: Analysis{
			Workers:            runtime.NumCPU(),
			FileTimeoutSeconds: defaultFileTimeoutSeconds,
			WaveformBuckets:    defaultWaveformBuckets,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
