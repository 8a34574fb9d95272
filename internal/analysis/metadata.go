package analysis

// AudioMetadata is everything the analyzer can learn about one audio file
// from its raw bytes. Optional fields are nil when the source carries no
// usable signal for them.
type AudioMetadata struct {
	Format          string   `json:"format"`
	DurationSeconds float64  `json:"duration_seconds"`
	SampleRateHz    int      `json:"sample_rate_hz"`
	Channels        int      `json:"channels"`
	BitrateKbps     *float64 `json:"bitrate_kbps,omitempty"`

	Title  string `json:"title,omitempty"`
	Artist string `json:"artist,omitempty"`
	Album  string `json:"album,omitempty"`
	Genre  string `json:"genre,omitempty"`
	Year   *int   `json:"year,omitempty"`

	BPM      *float64  `json:"bpm,omitempty"`
	Key      *string   `json:"key,omitempty"`
	Waveform []float64 `json:"waveform,omitempty"`
}

// estimateBitrateKbps derives an average bitrate from file size and
// duration when the container did not report one. Returns nil when the
// duration is unusable.
func estimateBitrateKbps(sizeBytes uint64, durationSeconds float64) *float64 {
	if durationSeconds <= 0 {
		return nil
	}
	kbps := float64(sizeBytes) * 8 / durationSeconds / 1000
	return &kbps
}
