// Package batch defines the immutable input unit shared by classification,
// grouping, and analysis.
package batch

// RawFile is one uploaded file in an import batch. It is never mutated by
// the pipeline; byte acquisition is the upload collaborator's job.
type RawFile struct {
	Name      string
	SizeBytes uint64
	Data      []byte
}
