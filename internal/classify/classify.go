package classify

import (
	"path/filepath"
	"strings"
)

// Category is the semantic classification of an imported file.
type Category string

const (
	CategoryDAWSession  Category = "daw_session"
	CategoryMasterAudio Category = "master_audio"
	CategoryStem        Category = "stem"
	CategoryMIDI        Category = "midi"
	CategoryPreset      Category = "preset"
	CategorySample      Category = "sample"
	CategoryVideo       Category = "video"
	CategoryArtwork     Category = "artwork"
	CategoryDocument    Category = "document"
	CategoryOther       Category = "other"
)

// IsAudio reports whether the category participates in audio clustering.
func (c Category) IsAudio() bool {
	return c == CategoryMasterAudio || c == CategoryStem
}

// HasAudioContent reports whether files of this category carry decodable
// audio and should enter metadata analysis. Samples are analyzable even
// though they never cluster.
func (c Category) HasAudioContent() bool {
	return c == CategoryMasterAudio || c == CategoryStem || c == CategorySample
}

// dawExtensions maps session file extensions to the workstation that
// produces them. Only presence matters for classification; the label is
// kept for display.
var dawExtensions = map[string]string{
	".ptx":      "Pro Tools",
	".ptf":      "Pro Tools",
	".als":      "Ableton Live",
	".flp":      "FL Studio",
	".logic":    "Logic Pro",
	".logicx":   "Logic Pro",
	".rpp":      "REAPER",
	".cpr":      "Cubase",
	".npr":      "Nuendo",
	".sesx":     "Adobe Audition",
	".song":     "Studio One",
	".aup":      "Audacity",
	".aup3":     "Audacity",
	".band":     "GarageBand",
	".reason":   "Reason",
	".rns":      "Reason",
}

var audioExtensions = map[string]struct{}{
	".wav":  {},
	".mp3":  {},
	".aif":  {},
	".aiff": {},
	".flac": {},
	".ogg":  {},
	".m4a":  {},
	".aac":  {},
	".wma":  {},
	".alac": {},
}

var midiExtensions = map[string]struct{}{
	".mid":  {},
	".midi": {},
}

var presetExtensions = map[string]struct{}{
	".fxp":       {},
	".fxb":       {},
	".nmsv":      {},
	".h2p":       {},
	".vstpreset": {},
	".adg":       {},
	".adv":       {},
	".nki":       {},
}

var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".mov":  {},
	".mkv":  {},
	".avi":  {},
	".webm": {},
}

var artworkExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".bmp":  {},
	".tiff": {},
	".webp": {},
	".svg":  {},
	".ai":   {},
	".psd":  {},
}

var documentExtensions = map[string]struct{}{
	".pdf":  {},
	".txt":  {},
	".doc":  {},
	".docx": {},
	".rtf":  {},
	".md":   {},
}

var stemKeywords = []string{
	"stem", "stems", "track", "drum", "drums", "bass", "vocal", "vox",
	"lead", "pad", "synth", "guitar", "piano", "kick", "snare", "hat",
	"perc", "fx", "sfx",
}

var masterKeywords = []string{"master", "final", "mix"}

var sampleKeywords = []string{"sample", "loop", "one-shot"}

// Categorize maps a filename to its category. It is total: every input,
// including names without an extension, yields a category.
func Categorize(filename string) Category {
	ext := strings.ToLower(filepath.Ext(filename))

	if _, ok := dawExtensions[ext]; ok {
		return CategoryDAWSession
	}
	if _, ok := audioExtensions[ext]; ok {
		return categorizeAudio(filename)
	}
	if _, ok := midiExtensions[ext]; ok {
		return CategoryMIDI
	}
	if _, ok := presetExtensions[ext]; ok {
		return CategoryPreset
	}
	if _, ok := videoExtensions[ext]; ok {
		return CategoryVideo
	}
	if _, ok := artworkExtensions[ext]; ok {
		return CategoryArtwork
	}
	if _, ok := documentExtensions[ext]; ok {
		return CategoryDocument
	}
	return CategoryOther
}

// defaultAudioCategory is the policy for audio files whose names carry no
// recognized keyword: unlabeled audio is assumed to be a mixable master,
// since stems self-identify via keywords.
const defaultAudioCategory = CategoryMasterAudio

func categorizeAudio(filename string) Category {
	lowered := strings.ToLower(filename)
	for _, keyword := range stemKeywords {
		if strings.Contains(lowered, keyword) {
			return CategoryStem
		}
	}
	for _, keyword := range masterKeywords {
		if strings.Contains(lowered, keyword) {
			return CategoryMasterAudio
		}
	}
	for _, keyword := range sampleKeywords {
		if strings.Contains(lowered, keyword) {
			return CategorySample
		}
	}
	return defaultAudioCategory
}

// DAWLabel returns the workstation name for a session file extension, or
// empty when the extension is not a known session format.
func DAWLabel(filename string) string {
	return dawExtensions[strings.ToLower(filepath.Ext(filename))]
}
