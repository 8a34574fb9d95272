package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"stemsort/internal/analysis"
	"stemsort/internal/batch"
	"stemsort/internal/classify"
	"stemsort/internal/grouping"
	"stemsort/internal/ingest"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "import <directory>",
		Short: "Group and analyze the files in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			files, err := readBatch(args[0])
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No files to import")
				return nil
			}

			pipeline := ingest.New(cfg, logger)

			var progress analysis.ProgressFunc
			bar := newProgressBar(countAudio(files), jsonOutput)
			if bar != nil {
				progress = func(string) { _ = bar.Add(1) }
			}

			result, err := pipeline.Run(cmd.Context(), files, progress)
			if bar != nil {
				_ = bar.Finish()
				fmt.Fprintln(os.Stderr)
			}
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, newImportReport(result))
			}
			renderImportResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit machine-readable JSON instead of tables")
	return cmd
}

// readBatch loads every regular file in dir into memory. Subdirectories
// are skipped; grouping operates on one flat drop folder at a time.
func readBatch(dir string) ([]batch.RawFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %q: %w", dir, err)
	}

	var files []batch.RawFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file %q: %w", path, err)
		}
		files = append(files, batch.RawFile{
			Name:      entry.Name(),
			SizeBytes: uint64(len(data)),
			Data:      data,
		})
	}
	return files, nil
}

func countAudio(files []batch.RawFile) int {
	count := 0
	for _, file := range files {
		if classify.Categorize(file.Name).HasAudioContent() {
			count++
		}
	}
	return count
}

func newProgressBar(total int, jsonOutput bool) *progressbar.ProgressBar {
	if jsonOutput || total == 0 || !isTerminal(os.Stderr.Fd()) {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("analyzing"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderImportResult(cmd *cobra.Command, result *ingest.Result) {
	out := cmd.OutOrStdout()

	rows := make([][]string, 0, len(result.Groups))
	for i := range result.Groups {
		group := &result.Groups[i]
		rows = append(rows, []string{
			group.DisplayName,
			string(group.Kind),
			group.PrimaryFile.Name,
			fmt.Sprintf("%d", group.Meta.FileCount),
			formatSize(group.Meta.TotalSizeBytes),
			formatContents(group.Meta),
			formatBPM(group.Meta.DetectedBPM),
			formatKey(group.Meta.DetectedKey),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Project", "Kind", "Primary File", "Files", "Size", "Contents", "BPM", "Key"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignRight, alignLeft},
	))

	if len(result.Metadata) == 0 {
		return
	}

	names := make([]string, 0, len(result.Metadata))
	for name := range result.Metadata {
		names = append(names, name)
	}
	sort.Strings(names)

	metaRows := make([][]string, 0, len(names))
	for _, name := range names {
		meta := result.Metadata[name]
		metaRows = append(metaRows, []string{
			name,
			meta.Format,
			formatDuration(meta.DurationSeconds),
			formatSampleRate(meta.SampleRateHz),
			formatBPM(meta.BPM),
			formatKey(meta.Key),
			strings.TrimSpace(meta.Artist + " " + meta.Title),
		})
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderTable(
		[]string{"File", "Format", "Duration", "Rate", "BPM", "Key", "Tagged As"},
		metaRows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft, alignLeft},
	))
}

// importReport shapes a pipeline result for JSON consumers.
type importReport struct {
	Groups   []groupReport                     `json:"groups"`
	Metadata map[string]analysis.AudioMetadata `json:"metadata"`
}

type groupReport struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	DisplayName  string        `json:"display_name"`
	Kind         grouping.Kind `json:"kind"`
	PrimaryFile  string        `json:"primary_file"`
	RelatedFiles []string      `json:"related_files"`
	FileCount    int           `json:"file_count"`
	TotalBytes   uint64        `json:"total_bytes"`
	HasSession   bool          `json:"has_session"`
	HasAudio     bool          `json:"has_audio"`
	HasStems     bool          `json:"has_stems"`
	DetectedBPM  *float64      `json:"detected_bpm,omitempty"`
	DetectedKey  *string       `json:"detected_key,omitempty"`
}

func newImportReport(result *ingest.Result) importReport {
	report := importReport{
		Groups:   make([]groupReport, 0, len(result.Groups)),
		Metadata: result.Metadata,
	}
	for i := range result.Groups {
		group := &result.Groups[i]
		related := make([]string, 0, len(group.RelatedFiles))
		for _, file := range group.RelatedFiles {
			related = append(related, file.Name)
		}
		report.Groups = append(report.Groups, groupReport{
			ID:           group.ID,
			Name:         group.Name,
			DisplayName:  group.DisplayName,
			Kind:         group.Kind,
			PrimaryFile:  group.PrimaryFile.Name,
			RelatedFiles: related,
			FileCount:    group.Meta.FileCount,
			TotalBytes:   group.Meta.TotalSizeBytes,
			HasSession:   group.Meta.HasSession,
			HasAudio:     group.Meta.HasAudio,
			HasStems:     group.Meta.HasStems,
			DetectedBPM:  group.Meta.DetectedBPM,
			DetectedKey:  group.Meta.DetectedKey,
		})
	}
	return report
}
