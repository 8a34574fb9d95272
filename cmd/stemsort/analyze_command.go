package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"stemsort/internal/analysis"
	"stemsort/internal/batch"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Extract audio metadata from a single file",
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

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file %q: %w", args[0], err)
			}
			file := batch.RawFile{
				Name:      filepath.Base(args[0]),
				SizeBytes: uint64(len(data)),
				Data:      data,
			}

			analyzer := analysis.NewAnalyzer(cfg, logger)
			meta, analyzeErr := analyzer.AnalyzeFile(cmd.Context(), file)

			if jsonOutput {
				if err := writeJSON(cmd, meta); err != nil {
					return err
				}
				return analyzeErr
			}

			renderMetadata(cmd, file.Name, meta)
			return analyzeErr
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit machine-readable JSON instead of a table")
	return cmd
}

func renderMetadata(cmd *cobra.Command, name string, meta analysis.AudioMetadata) {
	rows := [][]string{
		{"File", name},
		{"Format", meta.Format},
		{"Duration", formatDuration(meta.DurationSeconds)},
		{"Sample rate", formatSampleRate(meta.SampleRateHz)},
		{"Channels", fmt.Sprintf("%d", meta.Channels)},
		{"Bitrate", formatBitrate(meta.BitrateKbps)},
		{"BPM", formatBPM(meta.BPM)},
		{"Key", formatKey(meta.Key)},
	}
	if meta.Title != "" {
		rows = append(rows, []string{"Title", meta.Title})
	}
	if meta.Artist != "" {
		rows = append(rows, []string{"Artist", meta.Artist})
	}
	if meta.Album != "" {
		rows = append(rows, []string{"Album", meta.Album})
	}
	if meta.Genre != "" {
		rows = append(rows, []string{"Genre", meta.Genre})
	}
	if meta.Year != nil {
		rows = append(rows, []string{"Year", fmt.Sprintf("%d", *meta.Year)})
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Field", "Value"},
		rows,
		[]columnAlignment{alignLeft, alignLeft},
	))
}

func formatBitrate(kbps *float64) string {
	if kbps == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f kbps", *kbps)
}
