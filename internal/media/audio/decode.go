package audio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat reports a container this decoder cannot produce
// facts for.
var ErrUnsupportedFormat = errors.New("audio: unsupported format")

// Decoded carries the result of decoding one file. PCM is indexed
// [channel][frame] and may be empty for containers that are probed rather
// than decoded (MP3) or not supported at all.
type Decoded struct {
	Format          string
	DurationSeconds float64
	SampleRateHz    int
	Channels        int
	BitrateKbps     *float64
	PCM             [][]float64
}

const (
	sentinelSampleRate = 44100
	sentinelChannels   = 2
)

// Sentinel is the fallback result for undecodable input: zero duration,
// CD-standard facts, no PCM. The rest of the pipeline treats it as
// "metadata extraction failed for this file" without aborting the batch.
func Sentinel(format string) Decoded {
	if format == "" {
		format = "unknown"
	}
	return Decoded{
		Format:       format,
		SampleRateHz: sentinelSampleRate,
		Channels:     sentinelChannels,
	}
}

// Decode inspects the filename extension and container magic and produces
// facts for the file. On failure the returned Decoded is the sentinel and
// the error describes why; neither panics nor partial slices escape.
func Decode(name string, data []byte) (Decoded, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")

	switch format {
	case "wav":
		decoded, err := decodeWAV(data)
		if err != nil {
			return Sentinel(format), fmt.Errorf("decode wav %q: %w", name, err)
		}
		return decoded, nil
	case "mp3":
		decoded, err := probeMP3(data)
		if err != nil {
			return Sentinel(format), fmt.Errorf("probe mp3 %q: %w", name, err)
		}
		return decoded, nil
	default:
		return Sentinel(format), fmt.Errorf("decode %q: %w", name, ErrUnsupportedFormat)
	}
}
