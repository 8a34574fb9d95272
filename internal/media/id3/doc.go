// Package id3 parses ID3v2 metadata tags from the leading bytes of MP3
// containers.
//
// The parser walks frames through a bounds-checked cursor: a truncated or
// malformed frame fails that frame only, and tags accumulated before the
// failure are kept. Tag sizes are synchsafe 28-bit integers (the top bit of
// every size byte is structurally zero so tag data can never resemble an
// MPEG frame sync); frame sizes are plain big-endian.
package id3
