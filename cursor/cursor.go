// Package cursor provides a bit-granularity cursor over a byte-addressable
// buffer, allowing sub-byte protocol fields to be read and written while the
// buffer is otherwise accessed at byte granularity by other code. Bits are
// addressed MSB-first within each byte, and a single read or write never
// crosses a byte boundary.
package cursor

import (
	"errors"

	"github.com/wirekit/bitcursor/bitops"
)

// ErrInvalidBitRange is returned when a requested bit count would cross the
// current byte boundary. The cursor and the underlying buffer are left
// unchanged, so the caller may retry with a smaller count.
var ErrInvalidBitRange = errors.New("bit range crosses byte boundary")

// Buffer is the byte-addressable store a Cursor operates on. The cursor does
// not own the buffer; the buffer must outlive the cursor, and all access to
// it must be serialized externally for the duration of a bit-level session.
type Buffer interface {
	// Position returns the current byte offset.
	Position() int64

	// ReadByte returns the byte at the current position and advances the
	// position by one.
	ReadByte() (byte, error)

	// WriteByteAt stores b at the given absolute position without moving
	// the current position.
	WriteByteAt(pos int64, b byte) error

	// UnreadByte moves the current position back by one byte.
	UnreadByte() error
}

// Cursor tracks a bit offset within the byte at the buffer's current
// position. Its entire state is the pair {bit offset, last observed byte
// position}; the bytes themselves live in the buffer.
//
// If the buffer is repositioned by other code between operations, the next
// operation detects the move and resets the bit offset to 0, silently
// discarding any partially consumed byte. Callers that interleave byte-level
// access should rely on this deliberately (see Resync), not accidentally.
type Cursor struct {
	buf       Buffer
	bitOffset uint
	lastPos   int64
}

// New returns a cursor bound to buf, starting on a fresh byte at buf's
// current position.
func New(buf Buffer) *Cursor {
	return &Cursor{buf: buf, lastPos: buf.Position()}
}

// ReadBits reads n bits (1 <= n <= 8) at the current bit offset of the
// current byte and returns them right-justified. It returns
// ErrInvalidBitRange if the read would cross the current byte boundary;
// buffer errors are propagated unchanged.
func (c *Cursor) ReadBits(n uint) (byte, error) {
	c.Resync()
	if n > 8 || c.bitOffset+n > 8 {
		return 0, ErrInvalidBitRange
	}

	b, err := c.buf.ReadByte()
	if err != nil {
		return 0, err
	}

	v := bitops.Bits(b, c.bitOffset, n)
	if err := c.advance(n); err != nil {
		return 0, err
	}
	return v, nil
}

// ReadBool reads a single bit as a boolean.
func (c *Cursor) ReadBool() (bool, error) {
	v, err := c.ReadBits(1)
	if err != nil {
		return false, err
	}
	return v == 1, nil
}

// WriteBits writes the n (1 <= n <= 8) low-order bits of value at the current
// bit offset of the current byte, leaving the byte's other bits unchanged.
// It returns ErrInvalidBitRange if the write would cross the current byte
// boundary; buffer errors are propagated unchanged.
func (c *Cursor) WriteBits(value byte, n uint) error {
	c.Resync()
	if n > 8 || c.bitOffset+n > 8 {
		return ErrInvalidBitRange
	}

	// Fetch the current byte first, to preserve the bits the write leaves
	// untouched.
	b, err := c.buf.ReadByte()
	if err != nil {
		return err
	}

	for i := uint(0); i < n; i++ {
		b = bitops.SetBit(b, c.bitOffset+i, (value>>(n-1-i))&1)
	}

	if err := c.buf.WriteByteAt(c.lastPos, b); err != nil {
		return err
	}
	return c.advance(n)
}

// WriteBool writes a single bit representing v.
func (c *Cursor) WriteBool(v bool) error {
	if v {
		return c.WriteBits(1, 1)
	}
	return c.WriteBits(0, 1)
}

// Resync reconciles the cursor with the buffer's current position. If the
// buffer was repositioned since the cursor last observed it, the bit offset
// resets to 0 and the new position becomes the cursor's point of reference.
// Every operation resyncs implicitly before validating its bit count; the
// method is exported so that callers interleaving byte-level access can make
// the reset explicit.
func (c *Cursor) Resync() {
	if pos := c.buf.Position(); pos != c.lastPos {
		c.bitOffset = 0
		c.lastPos = pos
	}
}

// BitOffset returns the number of bits already consumed or produced within
// the current byte. It reports the state as of the last operation; it does
// not resync.
func (c *Cursor) BitOffset() uint { return c.bitOffset }

// Remaining returns the number of bits left in the current byte.
func (c *Cursor) Remaining() uint { return 8 - c.bitOffset }

// advance moves the bit offset forward by n. While the current byte is only
// partially consumed, the buffer position is moved back onto it so the next
// operation re-fetches the same byte. A fully consumed byte leaves the
// position advanced; the next resync then starts a fresh byte.
func (c *Cursor) advance(n uint) error {
	c.bitOffset += n
	if c.bitOffset < 8 {
		return c.buf.UnreadByte()
	}
	return nil
}
