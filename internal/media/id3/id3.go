package id3

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
)

// ErrNoTag reports that the buffer does not start with an ID3v2 tag.
var ErrNoTag = errors.New("id3: no ID3v2 tag")

const headerSize = 10

// Tags holds the text frames extracted from a tag. Empty strings and nil
// pointers mean the frame was absent or unreadable.
type Tags struct {
	Title  string
	Artist string
	Album  string
	Genre  string
	Year   *int
	BPM    *int
}

// IsZero reports whether no frame produced a value.
func (t Tags) IsZero() bool {
	return t.Title == "" && t.Artist == "" && t.Album == "" && t.Genre == "" &&
		t.Year == nil && t.BPM == nil
}

// TagSize returns the total byte length of a leading ID3v2 tag (header
// included), or 0 when the buffer does not start with one. Decoders use it
// to skip the tag before scanning audio frames.
func TagSize(data []byte) int {
	if len(data) < headerSize || !bytes.Equal(data[:3], []byte("ID3")) {
		return 0
	}
	return headerSize + synchsafe(data[6:10])
}

// synchsafe decodes a 28-bit synchsafe integer: four bytes, each
// contributing its low seven bits. The top bit of every byte exists only to
// keep tag bytes from forming an MPEG frame sync and is discarded
// structurally, not interpreted.
func synchsafe(raw []byte) int {
	return int(raw[0]&0x7F)<<21 | int(raw[1]&0x7F)<<14 | int(raw[2]&0x7F)<<7 | int(raw[3]&0x7F)
}

// Parse extracts text frames from a leading ID3v2 tag. A buffer without a
// tag returns ErrNoTag. Malformed or truncated frame structure stops the
// walk and returns whatever frames were already decoded; it is never an
// error to the caller beyond the missing fields.
func Parse(data []byte) (Tags, error) {
	var tags Tags
	if len(data) < headerSize || !bytes.Equal(data[:3], []byte("ID3")) {
		return tags, ErrNoTag
	}

	// Major version and flags are read only to confirm the header shape.
	_ = data[3]
	_ = data[5]

	declared := headerSize + synchsafe(data[6:10])
	end := declared
	if end > len(data) {
		end = len(data)
	}

	c := &cursor{data: data[:end], off: headerSize}
	for c.remaining() >= headerSize {
		idRaw, err := c.read(4)
		if err != nil {
			break
		}
		// An all-zero id means the padding region; nothing follows.
		if idRaw[0] == 0 && idRaw[1] == 0 && idRaw[2] == 0 && idRaw[3] == 0 {
			break
		}
		frameSize, err := c.readUint32()
		if err != nil || frameSize == 0 {
			break
		}
		if err := c.skip(2); err != nil { // frame flags
			break
		}
		payload, err := c.read(int(frameSize))
		if err != nil {
			// Frame body crosses the declared or physical boundary;
			// keep what was decoded so far.
			break
		}
		applyFrame(&tags, string(idRaw), payload)
	}

	return tags, nil
}

func applyFrame(tags *Tags, id string, payload []byte) {
	text := decodeText(payload)
	if text == "" {
		return
	}
	switch id {
	case "TIT2":
		tags.Title = text
	case "TPE1":
		tags.Artist = text
	case "TALB":
		tags.Album = text
	case "TCON":
		tags.Genre = text
	case "TYER", "TDRC":
		if year, err := strconv.Atoi(text[:min(4, len(text))]); err == nil {
			tags.Year = &year
		}
	case "TBPM":
		if bpm, err := strconv.Atoi(text); err == nil {
			tags.BPM = &bpm
		}
	}
}

// decodeText interprets a text frame payload: the first byte is a text
// encoding indicator, the rest is the value with embedded NUL terminators
// stripped.
func decodeText(payload []byte) string {
	if len(payload) < 2 {
		return ""
	}
	text := strings.ReplaceAll(string(payload[1:]), "\x00", "")
	return strings.TrimSpace(text)
}
