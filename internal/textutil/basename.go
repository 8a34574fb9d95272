package textutil

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// suffixKeywords is the ordered list of mix-state and version markers that
// BaseName strips when anchored at the end of a name. Order is part of the
// contract even though at most one variant can match a given name.
var suffixKeywords = []string{"master", "final", "mix", "v1", "v2", "v3", "demo", "rough"}

var (
	// Matches one trailing suffix keyword preceded by a separator, or
	// wrapped in parentheses: "_master", " final", "-mix", " (v2)", "(demo)".
	trailingSuffix = regexp.MustCompile(`(?i)(?:[\s_\-]+\(?|\()(?:` + strings.Join(suffixKeywords, "|") + `)\)?$`)

	// Matches a bare trailing version number: "_2", "- 03", " 12".
	trailingVersion = regexp.MustCompile(`[\s_\-]+\d+$`)
)

// BaseName reduces a filename to its canonical project name. It strips the
// extension, then at most one end-anchored suffix from suffixKeywords, then
// a bare trailing version number, and trims surrounding whitespace. Calling
// it on an already-normalized name is a no-op, so grouping can normalize
// without tracking which inputs were raw filenames.
func BaseName(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = strings.TrimSpace(norm.NFC.String(name))
	name = trailingSuffix.ReplaceAllString(name, "")
	name = trailingVersion.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}
