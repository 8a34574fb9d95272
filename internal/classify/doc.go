// Package classify maps filenames to semantic categories using extension
// tables and keyword heuristics.
//
// Classification is pure string logic: the extension selects a broad family
// (DAW session, audio, MIDI, preset, video, artwork, document) and, for
// audio, keywords in the filename refine the result to stem, master, or
// sample. Every input maps to exactly one category; unknown extensions fall
// back to CategoryOther.
package classify
