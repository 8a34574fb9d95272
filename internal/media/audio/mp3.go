package audio

import (
	"errors"

	"stemsort/internal/media/id3"
)

var errNoMP3Frames = errors.New("no MPEG audio frames found")

var mp3BitrateKbps = map[byte][]int{
	// MPEG1 Layer III
	3: {0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320},
	// MPEG2/2.5 Layer III
	2: {0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},
	0: {0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},
}

var mp3SampleRates = map[byte][]int{
	3: {44100, 48000, 32000}, // MPEG1
	2: {22050, 24000, 16000}, // MPEG2
	0: {11025, 12000, 8000},  // MPEG2.5
}

// probeMP3 scans MPEG Layer III frame headers to derive duration, sample
// rate, channel count, and average bitrate. It decodes no audio: the PCM
// field stays empty and downstream numeric analysis is skipped for MP3,
// which the pipeline contract permits.
func probeMP3(data []byte) (Decoded, error) {
	offset := id3.TagSize(data)

	var (
		frames       int
		duration     float64
		bitrateSum   float64
		sampleRate   int
		channelCount int
	)

	for offset+4 <= len(data) {
		header, ok := parseMP3Header(data[offset : offset+4])
		if !ok {
			// Resync byte by byte; junk between frames is common.
			offset++
			continue
		}

		frames++
		duration += float64(header.samplesPerFrame) / float64(header.sampleRate)
		bitrateSum += float64(header.bitrateKbps)
		if sampleRate == 0 {
			sampleRate = header.sampleRate
			channelCount = header.channels
		}
		offset += header.frameLength
	}

	if frames == 0 {
		return Decoded{}, errNoMP3Frames
	}

	avgBitrate := bitrateSum / float64(frames)
	return Decoded{
		Format:          "mp3",
		DurationSeconds: duration,
		SampleRateHz:    sampleRate,
		Channels:        channelCount,
		BitrateKbps:     &avgBitrate,
	}, nil
}

type mp3Header struct {
	sampleRate      int
	channels        int
	bitrateKbps     int
	samplesPerFrame int
	frameLength     int
}

func parseMP3Header(raw []byte) (mp3Header, bool) {
	if raw[0] != 0xFF || raw[1]&0xE0 != 0xE0 {
		return mp3Header{}, false
	}

	version := raw[1] >> 3 & 0x03 // 0=MPEG2.5, 2=MPEG2, 3=MPEG1
	layer := raw[1] >> 1 & 0x03   // 1 = Layer III
	if version == 1 || layer != 1 {
		return mp3Header{}, false
	}

	bitrateIndex := raw[2] >> 4
	rateIndex := raw[2] >> 2 & 0x03
	if bitrateIndex == 0 || bitrateIndex == 0x0F || rateIndex == 3 {
		return mp3Header{}, false
	}

	bitrate := mp3BitrateKbps[version][bitrateIndex]
	sampleRate := mp3SampleRates[version][rateIndex]
	padding := int(raw[2] >> 1 & 0x01)

	samplesPerFrame := 1152
	coefficient := 144
	if version != 3 {
		samplesPerFrame = 576
		coefficient = 72
	}

	frameLength := coefficient*bitrate*1000/sampleRate + padding
	if frameLength <= 4 {
		return mp3Header{}, false
	}

	channels := 2
	if raw[3]>>6 == 3 {
		channels = 1
	}

	return mp3Header{
		sampleRate:      sampleRate,
		channels:        channels,
		bitrateKbps:     bitrate,
		samplesPerFrame: samplesPerFrame,
		frameLength:     frameLength,
	}, true
}
