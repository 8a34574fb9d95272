package ingest

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"stemsort/internal/analysis"
	"stemsort/internal/batch"
	"stemsort/internal/classify"
	"stemsort/internal/config"
	"stemsort/internal/grouping"
	"stemsort/internal/logging"
)

// Result is the outcome of one import run: the proposed project groups and
// the per-file audio metadata, keyed by filename.
type Result struct {
	Groups   []grouping.ProjectGroup
	Metadata map[string]analysis.AudioMetadata
}

// Pipeline wires grouping and analysis together behind one entry point.
type Pipeline struct {
	cfg      *config.Config
	logger   *slog.Logger
	grouper  *grouping.Grouper
	analyzer *analysis.Analyzer
}

// New builds a pipeline from configuration. A nil logger disables logging.
func New(cfg *config.Config, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "pipeline"),
		grouper: grouping.NewGrouper(grouping.Options{
			SessionJoinThreshold:  cfg.Grouping.SessionSimilarityThreshold,
			AudioClusterThreshold: cfg.Grouping.AudioSimilarityThreshold,
			MergeSessions:         cfg.Grouping.MergeSessions,
		}, logger),
		analyzer: analysis.NewAnalyzer(cfg, logger),
	}
}

// Run groups a batch of files, analyzes every member with decodable audio,
// and annotates each group with the tempo and key of its foremost analyzed
// member. The progress callback, when non-nil, fires once per analyzed
// file.
func (p *Pipeline) Run(ctx context.Context, files []batch.RawFile, progress analysis.ProgressFunc) (*Result, error) {
	batchID := uuid.New().String()
	ctx = logging.WithBatchID(ctx, batchID)
	logger := logging.WithContext(ctx, p.logger)

	logger.Info("import started", logging.Int("files", len(files)))

	groups := p.grouper.Group(files)

	var audioFiles []batch.RawFile
	for _, file := range files {
		if classify.Categorize(file.Name).HasAudioContent() {
			audioFiles = append(audioFiles, file)
		}
	}

	metadata, err := p.analyzer.AnalyzeBatch(ctx, audioFiles, progress)
	if err != nil {
		return nil, err
	}

	for i := range groups {
		annotateGroup(&groups[i], metadata)
	}

	logger.Info("import finished",
		logging.Int("groups", len(groups)),
		logging.Int("analyzed", len(metadata)))

	return &Result{Groups: groups, Metadata: metadata}, nil
}

// annotateGroup copies the detected tempo and key of the group's foremost
// analyzed member onto the group, primary file first.
func annotateGroup(group *grouping.ProjectGroup, metadata map[string]analysis.AudioMetadata) {
	for _, file := range group.Files() {
		meta, ok := metadata[file.Name]
		if !ok {
			continue
		}
		if group.Meta.DetectedBPM == nil && meta.BPM != nil {
			group.Meta.DetectedBPM = meta.BPM
		}
		if group.Meta.DetectedKey == nil && meta.Key != nil {
			group.Meta.DetectedKey = meta.Key
		}
		if group.Meta.DetectedBPM != nil && group.Meta.DetectedKey != nil {
			return
		}
	}
}
