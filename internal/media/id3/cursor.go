package id3

import (
	"encoding/binary"
	"errors"
)

var errShortRead = errors.New("id3: read past end of buffer")

// cursor is a bounds-checked reader over a byte slice. Every read validates
// against the slice length first, so malformed declared sizes surface as
// errShortRead instead of panics.
type cursor struct {
	data []byte
	off  int
}

func (c *cursor) remaining() int {
	return len(c.data) - c.off
}

func (c *cursor) read(n int) ([]byte, error) {
	if n < 0 || c.remaining() < n {
		return nil, errShortRead
	}
	out := c.data[c.off : c.off+n]
	c.off += n
	return out, nil
}

func (c *cursor) readUint32() (uint32, error) {
	raw, err := c.read(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(raw), nil
}

func (c *cursor) skip(n int) error {
	if n < 0 || c.remaining() < n {
		return errShortRead
	}
	c.off += n
	return nil
}
