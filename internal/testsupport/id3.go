package testsupport

import "bytes"

// ID3Frame is one text frame for a synthesized tag.
type ID3Frame struct {
	ID   string
	Text string
}

// ID3Tag builds an ID3v2.3 tag whose declared size matches its frames.
func ID3Tag(frames ...ID3Frame) []byte {
	return ID3TagDeclared(-1, frames...)
}

// ID3TagDeclared builds an ID3v2.3 tag with an explicit declared body size,
// letting tests create tags whose declared boundary disagrees with the
// actual frame content. A negative declared size means "match the frames".
func ID3TagDeclared(declaredBody int, frames ...ID3Frame) []byte {
	var body bytes.Buffer
	for _, frame := range frames {
		payload := append([]byte{0}, []byte(frame.Text)...) // encoding byte 0: ISO/UTF-8
		body.WriteString(frame.ID)
		size := len(payload)
		body.Write([]byte{byte(size >> 24), byte(size >> 16), byte(size >> 8), byte(size)})
		body.Write([]byte{0, 0}) // frame flags
		body.Write(payload)
	}

	if declaredBody < 0 {
		declaredBody = body.Len()
	}

	var tag bytes.Buffer
	tag.WriteString("ID3")
	tag.Write([]byte{3, 0, 0}) // version 2.3.0, no flags
	tag.Write(synchsafeBytes(declaredBody))
	tag.Write(body.Bytes())
	return tag.Bytes()
}

// synchsafeBytes packs n into four bytes of seven bits each.
func synchsafeBytes(n int) []byte {
	return []byte{
		byte(n >> 21 & 0x7F),
		byte(n >> 14 & 0x7F),
		byte(n >> 7 & 0x7F),
		byte(n & 0x7F),
	}
}
