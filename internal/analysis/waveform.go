package analysis

import "math"

// ReduceWaveform downsamples the first channel into bucketCount mean
// absolute amplitudes normalized to [0, 1]. A non-silent source always
// yields a maximum bucket of exactly 1; a silent source yields all zeros
// rather than NaN.
func ReduceWaveform(pcm [][]float64, bucketCount int) []float64 {
	if bucketCount <= 0 {
		return nil
	}
	out := make([]float64, bucketCount)
	if len(pcm) == 0 || len(pcm[0]) == 0 {
		return out
	}

	channel := pcm[0]
	blockSize := len(channel) / bucketCount
	if blockSize == 0 {
		blockSize = 1
	}

	var maxBucket float64
	for b := 0; b < bucketCount; b++ {
		start := b * blockSize
		if start >= len(channel) {
			break
		}
		end := start + blockSize
		if end > len(channel) {
			end = len(channel)
		}
		var sum float64
		for _, v := range channel[start:end] {
			sum += math.Abs(v)
		}
		out[b] = sum / float64(end-start)
		if out[b] > maxBucket {
			maxBucket = out[b]
		}
	}

	if maxBucket == 0 {
		return out
	}
	for b := range out {
		out[b] /= maxBucket
	}
	return out
}
