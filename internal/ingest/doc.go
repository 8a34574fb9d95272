// Package ingest runs the full import pipeline over one batch of raw
// files: categorization, project grouping, and audio analysis, producing
// reviewable project groups annotated with extracted metadata.
package ingest
