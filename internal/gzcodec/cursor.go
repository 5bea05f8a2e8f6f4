package gzcodec

import (
	"encoding/binary"
	"fmt"

	"github.com/rickhohler/gzipkit/gzerr"
)

// cursor reads forward over an in-memory byte sequence. Every read is bounds
// checked; reads past the end fail with gzerr.ErrInvalidData. The offset only
// ever moves forward.
type cursor struct {
	bs     []byte
	offset int
}

func newCursor(bs []byte) *cursor {
	return &cursor{bs: bs}
}

func (c *cursor) readByte() (byte, error) {
	if c.offset >= len(c.bs) {
		return 0, fmt.Errorf("%w: reading byte at offset %d, stream is %d bytes", gzerr.ErrInvalidData, c.offset, len(c.bs))
	}

	b := c.bs[c.offset]
	c.offset += 1
	return b, nil
}

func (c *cursor) readBytes(n int) ([]byte, error) {
	if n > len(c.bs)-c.offset {
		return nil, fmt.Errorf("%w: reading %d bytes at offset %d, stream is %d bytes", gzerr.ErrInvalidData, n, c.offset, len(c.bs))
	}

	bs := c.bs[c.offset : c.offset+n]
	c.offset += n
	return bs, nil
}

func (c *cursor) readUint16() (uint16, error) {
	bs, err := c.readBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

// skip advances the offset by n bytes without returning them.
func (c *cursor) skip(n int) error {
	_, err := c.readBytes(n)
	return err
}

// skipString advances past a NUL-terminated string, consuming the terminator.
func (c *cursor) skipString() error {
	for {
		b, err := c.readByte()
		if err != nil {
			return err
		}
		if b == 0 {
			return nil
		}
	}
}

// remaining returns the number of unread bytes.
func (c *cursor) remaining() int {
	return len(c.bs) - c.offset
}
