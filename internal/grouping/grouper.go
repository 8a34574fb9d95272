package grouping

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"stemsort/internal/batch"
	"stemsort/internal/classify"
	"stemsort/internal/logging"
	"stemsort/internal/textutil"
)

// Options carries the tunable clustering thresholds. Zero values are
// replaced by the documented defaults so a zero Options is usable.
type Options struct {
	// SessionJoinThreshold is the similarity above which a file joins a
	// session-anchored group.
	SessionJoinThreshold float64
	// AudioClusterThreshold is the similarity above which an audio file
	// joins an existing name cluster.
	AudioClusterThreshold float64
	// MergeSessions allows a DAW session file to join another session's
	// group. Off by default: each session anchors exactly one group even
	// when two session files are nearly identically named, which keeps
	// alternate session versions reviewable side by side.
	MergeSessions bool
}

const (
	defaultSessionJoinThreshold  = 0.7
	defaultAudioClusterThreshold = 0.8
)

func (o Options) withDefaults() Options {
	if o.SessionJoinThreshold <= 0 {
		o.SessionJoinThreshold = defaultSessionJoinThreshold
	}
	if o.AudioClusterThreshold <= 0 {
		o.AudioClusterThreshold = defaultAudioClusterThreshold
	}
	return o
}

// Grouper clusters batches of files into project groups.
type Grouper struct {
	opts   Options
	logger *slog.Logger
}

// NewGrouper constructs a Grouper. A nil logger disables logging.
func NewGrouper(opts Options, logger *slog.Logger) *Grouper {
	return &Grouper{
		opts:   opts.withDefaults(),
		logger: logging.NewComponentLogger(logger, "grouper"),
	}
}

// run owns all mutable state for one clustering pass sequence. A fresh run
// is built per Group call; nothing is shared across batches.
type run struct {
	files      []batch.RawFile
	categories []classify.Category
	bases      []string // canonical base names
	lowered    []string // lowercased bases for scoring
	processed  []bool
	groups     []ProjectGroup
}

func newRun(files []batch.RawFile) *run {
	r := &run{
		files:      files,
		categories: make([]classify.Category, len(files)),
		bases:      make([]string, len(files)),
		lowered:    make([]string, len(files)),
		processed:  make([]bool, len(files)),
	}
	for i, file := range files {
		r.categories[i] = classify.Categorize(file.Name)
		r.bases[i] = textutil.BaseName(file.Name)
		r.lowered[i] = strings.ToLower(r.bases[i])
	}
	return r
}

// Group clusters files into project groups. The output order is fixed:
// session-anchored groups first, then audio clusters in creation order,
// then standalone leftovers in scan order. Group never fails; an empty
// input yields an empty result.
func (g *Grouper) Group(files []batch.RawFile) []ProjectGroup {
	r := newRun(files)
	g.anchorSessions(r)
	g.clusterAudio(r)
	g.collectLeftovers(r)

	g.logger.Debug("clustering complete",
		logging.Int("files", len(files)),
		logging.Int("groups", len(r.groups)),
	)
	return r.groups
}

// anchorSessions is pass 1: every DAW session file becomes the primary of
// its own group and pulls in similarly named files of any category.
func (g *Grouper) anchorSessions(r *run) {
	for i := range r.files {
		if r.processed[i] || r.categories[i] != classify.CategoryDAWSession {
			continue
		}
		r.processed[i] = true

		var related []batch.RawFile
		meta := Meta{HasSession: true, TotalSizeBytes: r.files[i].SizeBytes}
		for j := range r.files {
			if r.processed[j] {
				continue
			}
			if !g.opts.MergeSessions && r.categories[j] == classify.CategoryDAWSession {
				continue
			}
			if !g.joinsSession(r.lowered[i], r.lowered[j]) {
				continue
			}
			r.processed[j] = true
			related = append(related, r.files[j])
			meta.TotalSizeBytes += r.files[j].SizeBytes
			switch r.categories[j] {
			case classify.CategoryMasterAudio:
				meta.HasAudio = true
			case classify.CategoryStem:
				meta.HasStems = true
			}
		}

		meta.FileCount = len(related) + 1
		kind := KindProject
		if len(related) == 0 {
			kind = KindStandalone
		}
		r.groups = append(r.groups, ProjectGroup{
			ID:           uuid.New().String(),
			Name:         groupName(r.bases[i], r.files[i].Name),
			DisplayName:  displayName(r.bases[i]),
			Kind:         kind,
			PrimaryFile:  r.files[i],
			RelatedFiles: related,
			Meta:         meta,
		})
	}
}

// joinsSession decides whether a candidate belongs to a session-anchored
// group. Edit distance alone undervalues the dominant naming convention of
// session exports — the session name extended by a part suffix
// ("beat_tape" → "beat_tape_kick") — so separator-delimited prefix
// extensions always join regardless of score.
func (g *Grouper) joinsSession(session, candidate string) bool {
	if textutil.Similarity(session, candidate) > g.opts.SessionJoinThreshold {
		return true
	}
	return isPrefixExtension(session, candidate)
}

// isPrefixExtension reports whether candidate is base plus a separator and
// more text.
func isPrefixExtension(base, candidate string) bool {
	if base == "" || len(candidate) <= len(base) || !strings.HasPrefix(candidate, base) {
		return false
	}
	switch candidate[len(base)] {
	case '_', '-', ' ', '.':
		return true
	}
	return false
}

// clusterAudio is pass 2: remaining masters and stems accumulate into name
// clusters. The first existing cluster scoring above the threshold wins;
// there is no re-balancing once a file is keyed.
func (g *Grouper) clusterAudio(r *run) {
	var keys []string // creation order
	members := make(map[string][]int)

	for i := range r.files {
		if r.processed[i] || !r.categories[i].IsAudio() {
			continue
		}
		r.processed[i] = true

		matched := ""
		for _, key := range keys {
			if textutil.Similarity(r.lowered[i], strings.ToLower(key)) > g.opts.AudioClusterThreshold {
				matched = key
				break
			}
		}
		if matched == "" {
			matched = r.bases[i]
			keys = append(keys, matched)
		}
		members[matched] = append(members[matched], i)
	}

	for _, key := range keys {
		indices := members[key]

		primary := indices[0]
		for _, idx := range indices {
			if r.categories[idx] == classify.CategoryMasterAudio {
				primary = idx
				break
			}
		}

		meta := Meta{HasAudio: true, FileCount: len(indices)}
		var related []batch.RawFile
		for _, idx := range indices {
			meta.TotalSizeBytes += r.files[idx].SizeBytes
			if r.categories[idx] == classify.CategoryStem {
				meta.HasStems = true
			}
			if idx != primary {
				related = append(related, r.files[idx])
			}
		}

		kind := KindProject
		if len(related) == 0 {
			kind = KindStandalone
		}
		r.groups = append(r.groups, ProjectGroup{
			ID:           uuid.New().String(),
			Name:         groupName(key, r.files[primary].Name),
			DisplayName:  displayName(key),
			Kind:         kind,
			PrimaryFile:  r.files[primary],
			RelatedFiles: related,
			Meta:         meta,
		})
	}
}

// collectLeftovers is pass 3: everything still unprocessed becomes its own
// standalone group, flags derived from its own category only.
func (g *Grouper) collectLeftovers(r *run) {
	for i := range r.files {
		if r.processed[i] {
			continue
		}
		r.processed[i] = true
		category := r.categories[i]
		r.groups = append(r.groups, ProjectGroup{
			ID:          uuid.New().String(),
			Name:        groupName(r.bases[i], r.files[i].Name),
			DisplayName: displayName(r.bases[i]),
			Kind:        KindStandalone,
			PrimaryFile: r.files[i],
			Meta: Meta{
				TotalSizeBytes: r.files[i].SizeBytes,
				FileCount:      1,
				HasSession:     category == classify.CategoryDAWSession,
				HasAudio:       category == classify.CategoryMasterAudio,
				HasStems:       category == classify.CategoryStem,
			},
		})
	}
}

// groupName picks the canonical name for a group, falling back to the raw
// filename when normalization stripped the name to nothing.
func groupName(base, filename string) string {
	if strings.TrimSpace(base) != "" {
		return base
	}
	if filename != "" {
		return filename
	}
	return untitledName
}
