// Package analysis extracts audio metadata from decoded files: embedded
// tags, an estimated tempo, an estimated key, a reduced waveform for
// visualization, and container facts with a bitrate fallback.
//
// Per-file analysis is pure and self-contained; the Analyzer fans a batch
// out across a bounded worker pool with a per-file deadline so one corrupt
// or pathological file can neither stall nor fail its siblings. Absence of
// a tempo or key is a legitimate outcome (ambient material, sparse
// percussion), reported as nil, never zero.
package analysis
