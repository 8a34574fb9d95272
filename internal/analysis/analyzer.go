package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"stemsort/internal/batch"
	"stemsort/internal/config"
	"stemsort/internal/logging"
	"stemsort/internal/media/audio"
)

// ProgressFunc is called after each file finishes analysis, successfully
// or not. Callbacks may arrive from multiple goroutines.
type ProgressFunc func(name string)

// Analyzer extracts audio metadata from raw file bytes.
type Analyzer struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewAnalyzer creates an analyzer using the given configuration.
func NewAnalyzer(cfg *config.Config, logger *slog.Logger) *Analyzer {
	return &Analyzer{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "analyzer"),
	}
}

// AnalyzeFile decodes one file and derives its metadata. Tag extraction,
// tempo, key, and waveform all run against the same in-memory bytes; the
// decoded PCM is released when the call returns. Decode failures still
// yield a usable sentinel entry so a single corrupt file never sinks a
// batch, with the error returned alongside it.
func (a *Analyzer) AnalyzeFile(ctx context.Context, file batch.RawFile) (AudioMetadata, error) {
	decoded, decodeErr := audio.Decode(file.Name, file.Data)

	meta := AudioMetadata{
		Format:          decoded.Format,
		DurationSeconds: decoded.DurationSeconds,
		SampleRateHz:    decoded.SampleRateHz,
		Channels:        decoded.Channels,
		BitrateKbps:     decoded.BitrateKbps,
	}
	if meta.BitrateKbps == nil {
		meta.BitrateKbps = estimateBitrateKbps(file.SizeBytes, decoded.DurationSeconds)
	}

	tags, tagErr := audio.ReadEmbeddedTags(file.Name, file.Data)
	if tagErr == nil {
		meta.Title = tags.Title
		meta.Artist = tags.Artist
		meta.Album = tags.Album
		meta.Genre = tags.Genre
		meta.Year = tags.Year
	}

	if err := ctx.Err(); err != nil {
		return meta, err
	}

	meta.BPM = a.estimateBPM(tags.BPM, decoded.PCM, decoded.SampleRateHz)
	if err := ctx.Err(); err != nil {
		return meta, err
	}
	meta.Key = EstimateKey(decoded.PCM, decoded.SampleRateHz)
	if err := ctx.Err(); err != nil {
		return meta, err
	}
	meta.Waveform = ReduceWaveform(decoded.PCM, a.cfg.Analysis.WaveformBuckets)

	if decodeErr != nil && !errors.Is(decodeErr, audio.ErrUnsupportedFormat) {
		return meta, fmt.Errorf("analyze %q: %w", file.Name, decodeErr)
	}
	return meta, nil
}

// estimateBPM prefers an embedded TBPM value when it falls inside the
// configured tempo band, otherwise estimates from the decoded samples.
func (a *Analyzer) estimateBPM(tagged *int, pcm [][]float64, sampleRateHz int) *float64 {
	opts := a.tempoOptions()
	if tagged != nil {
		bpm := float64(*tagged)
		if bpm >= opts.MinBPM && bpm <= opts.MaxBPM {
			return &bpm
		}
	}
	return EstimateTempo(pcm, sampleRateHz, opts)
}

func (a *Analyzer) tempoOptions() TempoOptions {
	return TempoOptions{
		PeakThreshold:         a.cfg.Tempo.PeakThreshold,
		MinPeakSpacingSeconds: a.cfg.Tempo.MinPeakSpacingSeconds,
		MinBPM:                a.cfg.Tempo.MinBPM,
		MaxBPM:                a.cfg.Tempo.MaxBPM,
	}
}

// AnalyzeBatch runs AnalyzeFile over every file with bounded concurrency.
// Results are keyed by filename. Per-file failures are logged and the
// partial metadata kept; only context cancellation aborts the batch.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, files []batch.RawFile, progress ProgressFunc) (map[string]AudioMetadata, error) {
	results := make(map[string]AudioMetadata, len(files))
	if len(files) == 0 {
		return results, nil
	}

	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(a.cfg.Analysis.Workers)

	timeout := time.Duration(a.cfg.Analysis.FileTimeoutSeconds) * time.Second

	for _, file := range files {
		file := file
		group.Go(func() error {
			fileCtx := groupCtx
			if timeout > 0 {
				var cancel context.CancelFunc
				fileCtx, cancel = context.WithTimeout(groupCtx, timeout)
				defer cancel()
			}

			meta, err := a.AnalyzeFile(fileCtx, file)
			if err != nil {
				if groupCtx.Err() != nil {
					return groupCtx.Err()
				}
				a.logger.Warn("file analysis incomplete",
					logging.String(logging.FieldFile, file.Name),
					logging.Error(err))
			}

			mu.Lock()
			results[file.Name] = meta
			mu.Unlock()

			if progress != nil {
				progress(file.Name)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
