package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var errNotWAV = errors.New("not a RIFF/WAVE container")

const (
	waveFormatPCM        = 1
	waveFormatIEEEFloat  = 3
	waveFormatExtensible = 0xFFFE
)

// decodeWAV walks RIFF chunks, reads the fmt and data chunks, and converts
// interleaved samples to per-channel floats in [-1, 1].
func decodeWAV(data []byte) (Decoded, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return Decoded{}, errNotWAV
	}

	var (
		haveFmt       bool
		audioFormat   uint16
		channels      int
		sampleRate    int
		bitsPerSample int
		sampleBytes   []byte
	)

	offset := 12
	for offset+8 <= len(data) {
		chunkID := string(data[offset : offset+4])
		chunkSize := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		body := offset + 8
		if chunkSize < 0 || body+chunkSize > len(data) {
			// Truncated chunk: keep what was already collected.
			break
		}

		switch chunkID {
		case "fmt ":
			if chunkSize < 16 {
				return Decoded{}, fmt.Errorf("fmt chunk too small: %d bytes", chunkSize)
			}
			audioFormat = binary.LittleEndian.Uint16(data[body : body+2])
			channels = int(binary.LittleEndian.Uint16(data[body+2 : body+4]))
			sampleRate = int(binary.LittleEndian.Uint32(data[body+4 : body+8]))
			bitsPerSample = int(binary.LittleEndian.Uint16(data[body+14 : body+16]))
			haveFmt = true
		case "data":
			sampleBytes = data[body : body+chunkSize]
		}

		// Chunks are word-aligned; odd sizes carry a pad byte.
		offset = body + chunkSize + chunkSize%2
		if sampleBytes != nil && haveFmt {
			break
		}
	}

	if !haveFmt {
		return Decoded{}, errors.New("missing fmt chunk")
	}
	if channels <= 0 || sampleRate <= 0 {
		return Decoded{}, fmt.Errorf("invalid fmt chunk: channels=%d rate=%d", channels, sampleRate)
	}
	if sampleBytes == nil {
		return Decoded{}, errors.New("missing data chunk")
	}

	pcm, err := convertSamples(sampleBytes, audioFormat, channels, bitsPerSample)
	if err != nil {
		return Decoded{}, err
	}

	frames := 0
	if len(pcm) > 0 {
		frames = len(pcm[0])
	}
	return Decoded{
		Format:          "wav",
		DurationSeconds: float64(frames) / float64(sampleRate),
		SampleRateHz:    sampleRate,
		Channels:        channels,
		PCM:             pcm,
	}, nil
}

func convertSamples(raw []byte, audioFormat uint16, channels, bits int) ([][]float64, error) {
	if audioFormat == waveFormatExtensible {
		// The subformat GUID almost always wraps PCM; treat it as such and
		// let the bit depth decide.
		audioFormat = waveFormatPCM
	}

	bytesPerSample := bits / 8
	if bytesPerSample <= 0 {
		return nil, fmt.Errorf("invalid bits per sample: %d", bits)
	}
	frameSize := bytesPerSample * channels
	frames := len(raw) / frameSize

	pcm := make([][]float64, channels)
	for ch := range pcm {
		pcm[ch] = make([]float64, frames)
	}

	for frame := 0; frame < frames; frame++ {
		base := frame * frameSize
		for ch := 0; ch < channels; ch++ {
			sample := raw[base+ch*bytesPerSample : base+(ch+1)*bytesPerSample]
			value, err := sampleToFloat(sample, audioFormat, bits)
			if err != nil {
				return nil, err
			}
			pcm[ch][frame] = value
		}
	}
	return pcm, nil
}

func sampleToFloat(sample []byte, audioFormat uint16, bits int) (float64, error) {
	switch {
	case audioFormat == waveFormatPCM && bits == 8:
		return (float64(sample[0]) - 128) / 128, nil
	case audioFormat == waveFormatPCM && bits == 16:
		return float64(int16(binary.LittleEndian.Uint16(sample))) / 32768, nil
	case audioFormat == waveFormatPCM && bits == 24:
		value := int32(sample[0]) | int32(sample[1])<<8 | int32(sample[2])<<16
		if value&0x800000 != 0 {
			value -= 1 << 24
		}
		return float64(value) / 8388608, nil
	case audioFormat == waveFormatPCM && bits == 32:
		return float64(int32(binary.LittleEndian.Uint32(sample))) / 2147483648, nil
	case audioFormat == waveFormatIEEEFloat && bits == 32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(sample))), nil
	default:
		return 0, fmt.Errorf("unsupported sample layout: format=%d bits=%d", audioFormat, bits)
	}
}
