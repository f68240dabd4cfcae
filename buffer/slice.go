// Package buffer provides byte-addressable buffer implementations satisfying
// the cursor.Buffer contract: an in-memory slice buffer and a file-backed
// buffer. Both keep an explicit byte position and support positional writes
// that do not move it.
package buffer

import (
	"errors"
	"fmt"
	"io"

	"github.com/wirekit/bitcursor/cursor"
)

// SliceBuffer is an in-memory byte-addressable buffer over a byte slice. It
// does not grow: reads past the end return io.EOF and positional writes must
// land inside the slice.
type SliceBuffer struct {
	data []byte
	pos  int64
}

// A compile time check to ensure that SliceBuffer fully implements cursor.Buffer.
var _ cursor.Buffer = (*SliceBuffer)(nil)

// NewSliceBuffer returns a buffer over data, positioned at its start. The
// buffer aliases data; writes are visible to the caller.
func NewSliceBuffer(data []byte) *SliceBuffer {
	return &SliceBuffer{data: data}
}

// NewZeroed returns a buffer over a fresh zeroed slice of size bytes.
func NewZeroed(size int) *SliceBuffer {
	return &SliceBuffer{data: make([]byte, size)}
}

func (s *SliceBuffer) Position() int64 {
	return s.pos
}

func (s *SliceBuffer) ReadByte() (byte, error) {
	if s.pos >= int64(len(s.data)) {
		return 0, io.EOF
	}
	b := s.data[s.pos]
	s.pos++
	return b, nil
}

func (s *SliceBuffer) WriteByteAt(pos int64, b byte) error {
	if pos < 0 || pos >= int64(len(s.data)) {
		return fmt.Errorf("write at %d: position out of range [0, %d)", pos, len(s.data))
	}
	s.data[pos] = b
	return nil
}

func (s *SliceBuffer) UnreadByte() error {
	if s.pos == 0 {
		return errors.New("unread at start of buffer")
	}
	s.pos--
	return nil
}

// Seek implements io.Seeker over the buffer position. Seeking beyond the end
// is allowed; the next read then returns io.EOF.
func (s *SliceBuffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = s.pos + offset
		if offset > 0 && abs < s.pos {
			return 0, fmt.Errorf("position overflow: %d+%d", s.pos, offset)
		}
	case io.SeekEnd:
		abs = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if abs < 0 {
		return 0, fmt.Errorf("negative position: %d", abs)
	}
	s.pos = abs
	return abs, nil
}

// Bytes returns the underlying slice.
func (s *SliceBuffer) Bytes() []byte {
	return s.data
}

// Len returns the buffer size in bytes.
func (s *SliceBuffer) Len() int {
	return len(s.data)
}
