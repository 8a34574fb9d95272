package grouping

import (
	"testing"

	"stemsort/internal/batch"
)

func file(name string, size uint64) batch.RawFile {
	return batch.RawFile{Name: name, SizeBytes: size}
}

func names(files []batch.RawFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name
	}
	return out
}

func TestGroupSessionAnchoring(t *testing.T) {
	g := NewGrouper(Options{}, nil)
	groups := g.Group([]batch.RawFile{
		file("Beat_Tape.flp", 2048),
		file("Beat_Tape_kick.wav", 512),
		file("Beat_Tape_snare.wav", 512),
		file("Beat_Tape_master.wav", 1024),
		file("cover.jpg", 128),
	})

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2: %v", len(groups), groups)
	}

	project := groups[0]
	if project.Kind != KindProject {
		t.Errorf("first group kind = %q, want project", project.Kind)
	}
	if project.Name != "Beat_Tape" {
		t.Errorf("project name = %q, want Beat_Tape", project.Name)
	}
	if project.PrimaryFile.Name != "Beat_Tape.flp" {
		t.Errorf("primary = %q, want the session file", project.PrimaryFile.Name)
	}
	if project.Meta.FileCount != 4 {
		t.Errorf("file count = %d, want 4 (members: %v)", project.Meta.FileCount, names(project.RelatedFiles))
	}
	if !project.Meta.HasSession || !project.Meta.HasAudio || !project.Meta.HasStems {
		t.Errorf("flags = %+v, want session+audio+stems all true", project.Meta)
	}
	if want := uint64(2048 + 512 + 512 + 1024); project.Meta.TotalSizeBytes != want {
		t.Errorf("total size = %d, want %d", project.Meta.TotalSizeBytes, want)
	}

	standalone := groups[1]
	if standalone.Kind != KindStandalone || standalone.PrimaryFile.Name != "cover.jpg" {
		t.Errorf("second group = %+v, want standalone cover.jpg", standalone)
	}
	if len(standalone.RelatedFiles) != 0 || standalone.Meta.FileCount != 1 {
		t.Errorf("standalone group should have exactly one member: %+v", standalone.Meta)
	}
}

func TestGroupSessionsNeverMerge(t *testing.T) {
	g := NewGrouper(Options{}, nil)
	groups := g.Group([]batch.RawFile{
		file("Sunrise_v1.als", 100),
		file("Sunrise_v2.als", 100),
	})

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2 (one per session)", len(groups))
	}
	for _, group := range groups {
		if len(group.RelatedFiles) != 0 {
			t.Errorf("session group %q absorbed %v", group.Name, names(group.RelatedFiles))
		}
	}
}

func TestGroupMergeSessionsFlag(t *testing.T) {
	g := NewGrouper(Options{MergeSessions: true}, nil)
	groups := g.Group([]batch.RawFile{
		file("Sunrise_v1.als", 100),
		file("Sunrise_v2.als", 100),
	})

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1 with merge_sessions enabled", len(groups))
	}
	if groups[0].Meta.FileCount != 2 {
		t.Errorf("merged group file count = %d, want 2", groups[0].Meta.FileCount)
	}
}

func TestGroupAudioClustering(t *testing.T) {
	g := NewGrouper(Options{}, nil)
	groups := g.Group([]batch.RawFile{
		file("Midnight Drive.wav", 900),
		file("midnight drive_master.wav", 950),
		file("Ocean Floor.wav", 700),
	})

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2: %v", len(groups), groups)
	}

	cluster := groups[0]
	if cluster.Kind != KindProject || cluster.Meta.FileCount != 2 {
		t.Errorf("cluster = kind %q count %d, want project of 2", cluster.Kind, cluster.Meta.FileCount)
	}
	if !cluster.Meta.HasAudio || cluster.Meta.HasSession {
		t.Errorf("cluster flags = %+v", cluster.Meta)
	}

	if groups[1].Kind != KindStandalone || groups[1].PrimaryFile.Name != "Ocean Floor.wav" {
		t.Errorf("unrelated audio should stand alone, got %+v", groups[1])
	}
}

func TestGroupUnrelatedAudioNeverMerges(t *testing.T) {
	g := NewGrouper(Options{}, nil)
	groups := g.Group([]batch.RawFile{
		file("arctic_wind.wav", 10),
		file("desert_storm.wav", 10),
	})
	if len(groups) != 2 {
		t.Fatalf("unrelated audio files merged: got %d groups, want 2", len(groups))
	}
}

func TestGroupMasterBecomesClusterPrimary(t *testing.T) {
	g := NewGrouper(Options{}, nil)
	groups := g.Group([]batch.RawFile{
		file("granite_skyline_fx.wav", 10),
		file("granite_skyline.wav", 20),
	})

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].PrimaryFile.Name != "granite_skyline.wav" {
		t.Errorf("primary = %q, want the master take", groups[0].PrimaryFile.Name)
	}
	if !groups[0].Meta.HasStems {
		t.Error("cluster containing a stem should set HasStems")
	}
}

func TestGroupLeftovers(t *testing.T) {
	g := NewGrouper(Options{}, nil)
	groups := g.Group([]batch.RawFile{
		file("chords.mid", 1),
		file("notes.pdf", 2),
		file("patch.fxp", 3),
	})

	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3 standalones", len(groups))
	}
	for _, group := range groups {
		if group.Kind != KindStandalone {
			t.Errorf("group %q kind = %q, want standalone", group.Name, group.Kind)
		}
		if group.Meta.HasAudio || group.Meta.HasSession || group.Meta.HasStems {
			t.Errorf("leftover %q has unexpected flags %+v", group.Name, group.Meta)
		}
	}
}

func TestGroupEmptyAndSingle(t *testing.T) {
	g := NewGrouper(Options{}, nil)

	if groups := g.Group(nil); len(groups) != 0 {
		t.Errorf("empty input produced %d groups", len(groups))
	}

	groups := g.Group([]batch.RawFile{file("solo.wav", 5)})
	if len(groups) != 1 || groups[0].Kind != KindStandalone {
		t.Fatalf("single file should yield exactly one standalone group, got %v", groups)
	}
}

func TestGroupDeterministicForFixedOrder(t *testing.T) {
	input := []batch.RawFile{
		file("Beat_Tape.flp", 1),
		file("Beat_Tape_kick.wav", 1),
		file("spare_loop.wav", 1),
		file("cover.png", 1),
	}

	g := NewGrouper(Options{}, nil)
	first := g.Group(input)
	second := g.Group(input)

	if len(first) != len(second) {
		t.Fatalf("group counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name || first[i].Meta.FileCount != second[i].Meta.FileCount {
			t.Errorf("group %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGroupIDsUnique(t *testing.T) {
	g := NewGrouper(Options{}, nil)
	groups := g.Group([]batch.RawFile{
		file("a.wav", 1),
		file("b.wav", 1),
		file("c.mid", 1),
	})

	seen := make(map[string]struct{}, len(groups))
	for _, group := range groups {
		if group.ID == "" {
			t.Error("group with empty ID")
		}
		if _, dup := seen[group.ID]; dup {
			t.Errorf("duplicate group ID %q", group.ID)
		}
		seen[group.ID] = struct{}{}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"Beat_Tape", "Beat Tape"},
		{"midnight-drive", "Midnight Drive"},
		{"already Clean", "Already Clean"},
		{"", "Untitled"},
		{"__--__", "Untitled"},
	}
	for _, tt := range tests {
		if got := displayName(tt.base); got != tt.want {
			t.Errorf("displayName(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}
