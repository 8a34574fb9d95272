package id3

import (
	"errors"
	"testing"

	"stemsort/internal/testsupport"
)

func TestParseSingleTitleFrame(t *testing.T) {
	data := testsupport.ID3Tag(testsupport.ID3Frame{ID: "TIT2", Text: "Test Title"})

	tags, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tags.Title != "Test Title" {
		t.Errorf("title = %q, want Test Title", tags.Title)
	}
}

func TestParseAllKnownFrames(t *testing.T) {
	data := testsupport.ID3Tag(
		testsupport.ID3Frame{ID: "TIT2", Text: "Skyline"},
		testsupport.ID3Frame{ID: "TPE1", Text: "The Analog Dept"},
		testsupport.ID3Frame{ID: "TALB", Text: "First Light"},
		testsupport.ID3Frame{ID: "TCON", Text: "Electronic"},
		testsupport.ID3Frame{ID: "TYER", Text: "2023"},
		testsupport.ID3Frame{ID: "TBPM", Text: "128"},
	)

	tags, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tags.Title != "Skyline" || tags.Artist != "The Analog Dept" || tags.Album != "First Light" || tags.Genre != "Electronic" {
		t.Errorf("unexpected tags %+v", tags)
	}
	if tags.Year == nil || *tags.Year != 2023 {
		t.Errorf("year = %v, want 2023", tags.Year)
	}
	if tags.BPM == nil || *tags.BPM != 128 {
		t.Errorf("bpm = %v, want 128", tags.BPM)
	}
}

func TestParseUnknownFramesSkipped(t *testing.T) {
	data := testsupport.ID3Tag(
		testsupport.ID3Frame{ID: "TXXX", Text: "custom"},
		testsupport.ID3Frame{ID: "TIT2", Text: "After Unknown"},
	)

	tags, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tags.Title != "After Unknown" {
		t.Errorf("unknown frame not skipped cleanly: %+v", tags)
	}
}

func TestParseStopsAtDeclaredBoundary(t *testing.T) {
	// The declared tag size covers only the first frame; the second frame
	// sits past the boundary and must not be read.
	first := testsupport.ID3Tag(testsupport.ID3Frame{ID: "TIT2", Text: "Kept"})
	firstBody := len(first) - 10
	data := testsupport.ID3TagDeclared(firstBody,
		testsupport.ID3Frame{ID: "TIT2", Text: "Kept"},
		testsupport.ID3Frame{ID: "TPE1", Text: "Dropped"},
	)

	tags, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tags.Title != "Kept" {
		t.Errorf("title = %q, want Kept", tags.Title)
	}
	if tags.Artist != "" {
		t.Errorf("frame past declared boundary was read: artist = %q", tags.Artist)
	}
}

func TestParseTruncatedFrameKeepsEarlierFrames(t *testing.T) {
	data := testsupport.ID3Tag(
		testsupport.ID3Frame{ID: "TIT2", Text: "Intact"},
		testsupport.ID3Frame{ID: "TPE1", Text: "Will Be Cut"},
	)
	// Cut into the middle of the second frame's payload.
	data = data[:len(data)-4]

	tags, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tags.Title != "Intact" {
		t.Errorf("earlier frame lost on truncation: %+v", tags)
	}
	if tags.Artist != "" {
		t.Errorf("truncated frame produced a value: %q", tags.Artist)
	}
}

func TestParseNoTag(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("MP3"), []byte("ID"), make([]byte, 6)} {
		if _, err := Parse(data); !errors.Is(err, ErrNoTag) {
			t.Errorf("Parse(%v) err = %v, want ErrNoTag", data, err)
		}
	}
}

func TestParseStopsAtPadding(t *testing.T) {
	frame := testsupport.ID3Frame{ID: "TIT2", Text: "Padded"}
	tag := testsupport.ID3Tag(frame)
	// Grow the declared size to include a padding region of zeros.
	body := len(tag) - 10 + 64
	data := append(testsupport.ID3TagDeclared(body, frame), make([]byte, 64)...)

	tags, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tags.Title != "Padded" {
		t.Errorf("title = %q, want Padded", tags.Title)
	}
}

func TestParseGarbageNeverPanics(t *testing.T) {
	inputs := [][]byte{
		append([]byte("ID3\x03\x00\x00\x7F\x7F\x7F\x7F"), 0xFF, 0xFE),
		append([]byte("ID3\x03\x00\x00\x00\x00\x00\x10"), []byte("TIT2\xFF\xFF\xFF\xFF\x00\x00")...),
	}
	for _, data := range inputs {
		if _, err := Parse(data); err != nil && !errors.Is(err, ErrNoTag) {
			t.Errorf("Parse returned unexpected error %v", err)
		}
	}
}

func TestSynchsafeDecoding(t *testing.T) {
	// 0x01 0x7F packs as 0x7F | 0x01<<7 == 255.
	if got := synchsafe([]byte{0, 0, 0x01, 0x7F}); got != 255 {
		t.Errorf("synchsafe = %d, want 255", got)
	}
	// Top bits are discarded, not folded into the value.
	if got := synchsafe([]byte{0x80, 0x80, 0x81, 0xFF}); got != 255 {
		t.Errorf("synchsafe with high bits = %d, want 255", got)
	}
}

func TestTagSize(t *testing.T) {
	tag := testsupport.ID3Tag(testsupport.ID3Frame{ID: "TIT2", Text: "x"})
	if got := TagSize(tag); got != len(tag) {
		t.Errorf("TagSize = %d, want %d", got, len(tag))
	}
	if got := TagSize([]byte("RIFFxxxx")); got != 0 {
		t.Errorf("TagSize on non-tag = %d, want 0", got)
	}
}
