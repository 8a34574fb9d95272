package grouping

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"stemsort/internal/batch"
)

// Kind distinguishes multi-file project groups from single-file leftovers.
type Kind string

const (
	KindProject    Kind = "project"
	KindStandalone Kind = "standalone"
)

// Meta summarizes a group's membership for the review collaborator.
type Meta struct {
	TotalSizeBytes uint64
	FileCount      int
	HasSession     bool
	HasAudio       bool
	HasStems       bool
	DetectedBPM    *float64
	DetectedKey    *string
}

// ProjectGroup is one proposed project: a primary file plus the files the
// heuristics attached to it. FileCount always equals len(RelatedFiles)+1,
// and Kind is KindStandalone exactly when RelatedFiles is empty.
type ProjectGroup struct {
	ID           string
	Name         string
	DisplayName  string
	Kind         Kind
	PrimaryFile  batch.RawFile
	RelatedFiles []batch.RawFile
	Meta         Meta
}

// Files returns the group's members, primary first.
func (g *ProjectGroup) Files() []batch.RawFile {
	out := make([]batch.RawFile, 0, len(g.RelatedFiles)+1)
	out = append(out, g.PrimaryFile)
	return append(out, g.RelatedFiles...)
}

const untitledName = "Untitled"

var titleCaser = cases.Title(language.Und)

// displayName turns a canonical base name into a human-readable project
// title: separators collapse to single spaces and words are title-cased.
func displayName(base string) string {
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return untitledName
	}
	return titleCaser.String(title)
}
