package main

import (
	"fmt"
	"strings"

	"stemsort/internal/grouping"
)

func formatSize(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	value := float64(bytes)
	suffixes := []string{"KiB", "MiB", "GiB", "TiB"}
	for _, suffix := range suffixes {
		value /= unit
		if value < unit || suffix == suffixes[len(suffixes)-1] {
			return fmt.Sprintf("%.1f %s", value, suffix)
		}
	}
	return fmt.Sprintf("%d B", bytes)
}

func formatContents(meta grouping.Meta) string {
	var parts []string
	if meta.HasSession {
		parts = append(parts, "session")
	}
	if meta.HasAudio {
		parts = append(parts, "audio")
	}
	if meta.HasStems {
		parts = append(parts, "stems")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "+")
}

func formatBPM(bpm *float64) string {
	if bpm == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *bpm)
}

func formatKey(key *string) string {
	if key == nil {
		return "-"
	}
	return *key
}

func formatDuration(seconds float64) string {
	if seconds <= 0 {
		return "-"
	}
	whole := int(seconds)
	return fmt.Sprintf("%d:%02d", whole/60, whole%60)
}

func formatSampleRate(hz int) string {
	if hz <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f kHz", float64(hz)/1000)
}
