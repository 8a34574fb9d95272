package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Krumhansl-Schmuckler key profiles: perceived pitch-class stability for a
// major and a minor tonic, index 0 = tonic.
var (
	majorProfile = [12]float64{6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88}
	minorProfile = [12]float64{6.33, 2.68, 3.52, 5.38, 2.60, 3.53, 2.54, 4.75, 3.98, 2.69, 3.34, 3.17}
)

var pitchClassNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

const (
	keyWindowSize = 16384
	keyMinFreqHz  = 27.5 // A0
	keyMaxFreqHz  = 4186 // C8
)

// EstimateKey guesses a musical key by folding an FFT magnitude spectrum
// into a 12-bin chroma vector and correlating it against major/minor tonic
// profiles in every rotation. It is a coarse spectral heuristic: good
// enough to pre-fill a review field, far from perceptual key detection.
// Returns nil for silence or material shorter than the analysis window.
func EstimateKey(pcm [][]float64, sampleRateHz int) *string {
	if len(pcm) == 0 || sampleRateHz <= 0 {
		return nil
	}
	channel := pcm[0]
	if len(channel) < keyWindowSize {
		return nil
	}

	// Analyze a window from the middle of the material, away from fades.
	start := (len(channel) - keyWindowSize) / 2
	window := channel[start : start+keyWindowSize]

	spectrum := fft.FFTReal(window)

	var chroma [12]float64
	var energy float64
	for bin := 1; bin < keyWindowSize/2; bin++ {
		freq := float64(bin) * float64(sampleRateHz) / keyWindowSize
		if freq < keyMinFreqHz || freq > keyMaxFreqHz {
			continue
		}
		magnitude := cmplx.Abs(spectrum[bin])
		midi := 69 + 12*math.Log2(freq/440)
		pitchClass := ((int(math.Round(midi)) % 12) + 12) % 12
		chroma[pitchClass] += magnitude
		energy += magnitude
	}
	if energy == 0 {
		return nil
	}

	bestScore := math.Inf(-1)
	bestName := ""
	for tonic := 0; tonic < 12; tonic++ {
		if score := profileCorrelation(chroma, majorProfile, tonic); score > bestScore {
			bestScore = score
			bestName = pitchClassNames[tonic] + " major"
		}
		if score := profileCorrelation(chroma, minorProfile, tonic); score > bestScore {
			bestScore = score
			bestName = pitchClassNames[tonic] + " minor"
		}
	}
	if bestName == "" {
		return nil
	}
	return &bestName
}

// profileCorrelation computes the Pearson correlation between the chroma
// vector and a key profile rotated so the profile's tonic aligns with the
// given pitch class.
func profileCorrelation(chroma [12]float64, profile [12]float64, tonic int) float64 {
	var meanChroma, meanProfile float64
	for i := 0; i < 12; i++ {
		meanChroma += chroma[i]
		meanProfile += profile[i]
	}
	meanChroma /= 12
	meanProfile /= 12

	var num, denomChroma, denomProfile float64
	for i := 0; i < 12; i++ {
		dc := chroma[(tonic+i)%12] - meanChroma
		dp := profile[i] - meanProfile
		num += dc * dp
		denomChroma += dc * dc
		denomProfile += dp * dp
	}
	if denomChroma == 0 || denomProfile == 0 {
		return math.Inf(-1)
	}
	return num / math.Sqrt(denomChroma*denomProfile)
}
