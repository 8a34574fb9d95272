package analysis

import "math"

// TempoOptions carries the empirical constants behind peak detection.
// They are tuning levers, not derived values; config owns their defaults.
type TempoOptions struct {
	// PeakThreshold is the absolute amplitude a sample must exceed to be a
	// peak candidate.
	PeakThreshold float64
	// MinPeakSpacingSeconds is the minimum distance between two detected
	// peaks. 0.3s caps detectable tempo at 200 BPM by construction.
	MinPeakSpacingSeconds float64
	// MinBPM and MaxBPM bound the plausibility band; estimates outside it
	// are discarded rather than clamped.
	MinBPM float64
	MaxBPM float64
}

// DefaultTempoOptions mirrors the config defaults for callers that have no
// config at hand.
func DefaultTempoOptions() TempoOptions {
	return TempoOptions{
		PeakThreshold:         0.5,
		MinPeakSpacingSeconds: 0.3,
		MinBPM:                60,
		MaxBPM:                200,
	}
}

// EstimateTempo derives a BPM estimate from transient peaks in the first
// channel. It returns nil when fewer than two peaks exist or the estimate
// falls outside the plausibility band; both are common and expected for
// percussion-free material.
func EstimateTempo(pcm [][]float64, sampleRateHz int, opts TempoOptions) *float64 {
	if len(pcm) == 0 || len(pcm[0]) == 0 || sampleRateHz <= 0 {
		return nil
	}
	minDistance := int(float64(sampleRateHz) * opts.MinPeakSpacingSeconds)
	if minDistance <= 0 {
		return nil
	}

	channel := pcm[0]
	var peaks []int
	for i := 0; i < len(channel); i++ {
		amplitude := math.Abs(channel[i])
		if amplitude <= opts.PeakThreshold {
			continue
		}
		if !isLocalMax(channel, i, minDistance) {
			continue
		}
		peaks = append(peaks, i)
		// Skip ahead so the same transient is never detected twice.
		i += minDistance
	}

	if len(peaks) < 2 {
		return nil
	}

	var intervalSum float64
	for i := 1; i < len(peaks); i++ {
		intervalSum += float64(peaks[i] - peaks[i-1])
	}
	avgInterval := intervalSum / float64(len(peaks)-1)

	bpm := 60 / (avgInterval / float64(sampleRateHz))
	if bpm < opts.MinBPM || bpm > opts.MaxBPM {
		return nil
	}
	return &bpm
}

// isLocalMax reports whether index i holds the largest absolute amplitude
// within a window of width samples centered on it.
func isLocalMax(channel []float64, i, width int) bool {
	half := width / 2
	lo := i - half
	if lo < 0 {
		lo = 0
	}
	hi := i + half
	if hi >= len(channel) {
		hi = len(channel) - 1
	}
	amplitude := math.Abs(channel[i])
	for j := lo; j <= hi; j++ {
		if j != i && math.Abs(channel[j]) > amplitude {
			return false
		}
	}
	return true
}
