package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stemsort/internal/config"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore wd: %v", err)
		}
	})
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	chdir(t, tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Grouping.SessionSimilarityThreshold != 0.7 {
		t.Fatalf("unexpected session threshold: %g", cfg.Grouping.SessionSimilarityThreshold)
	}
	if cfg.Grouping.AudioSimilarityThreshold != 0.8 {
		t.Fatalf("unexpected audio threshold: %g", cfg.Grouping.AudioSimilarityThreshold)
	}
	if cfg.Grouping.MergeSessions {
		t.Fatal("expected merge_sessions disabled by default")
	}
	if cfg.Tempo.MinBPM != 60 || cfg.Tempo.MaxBPM != 200 {
		t.Fatalf("unexpected tempo band: [%g, %g]", cfg.Tempo.MinBPM, cfg.Tempo.MaxBPM)
	}
	if cfg.Analysis.Workers <= 0 {
		t.Fatalf("expected positive worker count, got %d", cfg.Analysis.Workers)
	}
	if cfg.Analysis.WaveformBuckets != 256 {
		t.Fatalf("unexpected waveform buckets: %d", cfg.Analysis.WaveformBuckets)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %q %q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestLoadReadsExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[grouping]
session_similarity_threshold = 0.6
merge_sessions = true

[tempo]
min_bpm = 80.0
max_bpm = 180.0

[analysis]
workers = 3
waveform_buckets = 64

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected the config file to be read")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}

	if cfg.Grouping.SessionSimilarityThreshold != 0.6 {
		t.Fatalf("unexpected session threshold: %g", cfg.Grouping.SessionSimilarityThreshold)
	}
	if !cfg.Grouping.MergeSessions {
		t.Fatal("expected merge_sessions enabled")
	}
	if cfg.Grouping.AudioSimilarityThreshold != 0.8 {
		t.Fatalf("expected default audio threshold, got %g", cfg.Grouping.AudioSimilarityThreshold)
	}
	if cfg.Tempo.MinBPM != 80 || cfg.Tempo.MaxBPM != 180 {
		t.Fatalf("unexpected tempo band: [%g, %g]", cfg.Tempo.MinBPM, cfg.Tempo.MaxBPM)
	}
	if cfg.Analysis.Workers != 3 {
		t.Fatalf("unexpected workers: %d", cfg.Analysis.Workers)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected format normalized to json, got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected level normalized to debug, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvertedTempoBand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[tempo]
min_bpm = 180.0
max_bpm = 90.0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected validation error for inverted tempo band")
	}
	if !strings.Contains(err.Error(), "tempo.max_bpm") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRejectsBadThreshold(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[grouping]
session_similarity_threshold = 1.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected validation error for out of range threshold")
	}
}

func TestLoadRejectsUnknownLogFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[logging]
format = "yaml"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected validation error for unknown log format")
	}
}

func TestNormalizeRepairsNonPositiveCounts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[analysis]
workers = -2
waveform_buckets = 0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Analysis.Workers <= 0 {
		t.Fatalf("expected workers repaired to a positive count, got %d", cfg.Analysis.Workers)
	}
	if cfg.Analysis.WaveformBuckets != 256 {
		t.Fatalf("expected default waveform buckets, got %d", cfg.Analysis.WaveformBuckets)
	}
}

func TestCreateSampleWritesParseableDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample failed: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to be read")
	}
	def := config.Default()
	def.Analysis.Workers = cfg.Analysis.Workers
	if *cfg != def {
		t.Fatalf("sample config diverges from defaults: %+v", cfg)
	}
}
