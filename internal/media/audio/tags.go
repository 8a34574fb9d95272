package audio

import (
	"bytes"
	"fmt"

	"github.com/dhowden/tag"

	"stemsort/internal/media/id3"
)

// ReadEmbeddedTags extracts embedded metadata for any supported container.
// MP3 goes through the ID3v2 frame parser, whose byte-level behavior the
// pipeline pins down; everything else (FLAC, M4A, OGG, ...) goes through
// the dhowden/tag reader. Failures yield zero tags, never an aborted file.
func ReadEmbeddedTags(name string, data []byte) (id3.Tags, error) {
	if id3.TagSize(data) > 0 {
		return id3.Parse(data)
	}

	meta, err := tag.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return id3.Tags{}, fmt.Errorf("read tags %q: %w", name, err)
	}

	tags := id3.Tags{
		Title:  meta.Title(),
		Artist: meta.Artist(),
		Album:  meta.Album(),
		Genre:  meta.Genre(),
	}
	if year := meta.Year(); year != 0 {
		tags.Year = &year
	}
	return tags, nil
}
