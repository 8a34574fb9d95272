// Package testsupport synthesizes audio fixtures for tests: in-memory WAV
// containers and ID3v2 tag buffers with controllable layout.
package testsupport

import (
	"bytes"
	"encoding/binary"
	"math"
)

// WAV builds a 16-bit PCM WAV file from per-channel float samples in
// [-1, 1]. All channels must share a length.
func WAV(sampleRate int, channels [][]float64) []byte {
	numChannels := len(channels)
	frames := 0
	if numChannels > 0 {
		frames = len(channels[0])
	}

	dataLen := frames * numChannels * 2
	byteRate := sampleRate * numChannels * 2

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(numChannels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(numChannels*2)) // block align
	binary.Write(&buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataLen))
	for frame := 0; frame < frames; frame++ {
		for ch := 0; ch < numChannels; ch++ {
			v := channels[ch][frame]
			if v > 1 {
				v = 1
			} else if v < -1 {
				v = -1
			}
			binary.Write(&buf, binary.LittleEndian, int16(math.Round(v*32767)))
		}
	}
	return buf.Bytes()
}

// Sine produces one channel of a sine wave at the given frequency.
func Sine(sampleRate int, freqHz float64, seconds float64) []float64 {
	samples := int(float64(sampleRate) * seconds)
	out := make([]float64, samples)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freqHz * float64(i) / float64(sampleRate))
	}
	return out
}

// ClickTrack produces a silent channel with unit impulses every period
// samples, starting at the period boundary. Useful for tempo fixtures
// where the peak spacing is exact.
func ClickTrack(totalSamples, period int) []float64 {
	out := make([]float64, totalSamples)
	for i := period; i < totalSamples; i += period {
		out[i] = 1
	}
	return out
}
