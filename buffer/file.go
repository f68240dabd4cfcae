package buffer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wirekit/bitcursor/cursor"
	"github.com/wirekit/bitcursor/shared"
)

// FileBuffer is a byte-addressable buffer backed by a file. The position is
// tracked by the buffer itself and reads/writes go through the file's
// offset-addressed ReadAt/WriteAt, so positional writes never disturb it.
type FileBuffer struct {
	file *os.File
	pos  int64
}

// A compile time check to ensure that FileBuffer fully implements cursor.Buffer.
var _ cursor.Buffer = (*FileBuffer)(nil)

// OpenFileBuffer opens name for reading and writing, creating it if it does
// not exist, positioned at the start of the file.
func OpenFileBuffer(name string) (*FileBuffer, error) {
	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE, shared.OwnerReadWrite)
	if err != nil {
		return nil, fmt.Errorf("failed to open file buffer: %w", err)
	}
	return &FileBuffer{file: f}, nil
}

func (fb *FileBuffer) Position() int64 {
	return fb.pos
}

func (fb *FileBuffer) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := fb.file.ReadAt(b[:], fb.pos); err != nil {
		return 0, err
	}
	fb.pos++
	return b[0], nil
}

func (fb *FileBuffer) WriteByteAt(pos int64, b byte) error {
	if _, err := fb.file.WriteAt([]byte{b}, pos); err != nil {
		return fmt.Errorf("failed to write file buffer at %d: %w", pos, err)
	}
	return nil
}

func (fb *FileBuffer) UnreadByte() error {
	if fb.pos == 0 {
		return errors.New("unread at start of file")
	}
	fb.pos--
	return nil
}

// Seek implements io.Seeker over the buffer position.
func (fb *FileBuffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = fb.pos + offset
		if offset > 0 && abs < fb.pos {
			return 0, fmt.Errorf("position overflow: %d+%d", fb.pos, offset)
		}
	case io.SeekEnd:
		size, err := fb.Size()
		if err != nil {
			return 0, err
		}
		abs = size + offset
		if offset > 0 && abs < size {
			return 0, fmt.Errorf("position overflow: %d+%d", size, offset)
		}
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if abs < 0 {
		return 0, fmt.Errorf("negative position: %d", abs)
	}
	fb.pos = abs
	return abs, nil
}

// Size returns the current file size in bytes.
func (fb *FileBuffer) Size() (int64, error) {
	info, err := fb.file.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat file buffer: %w", err)
	}
	return info.Size(), nil
}

func (fb *FileBuffer) Close() error {
	err := fb.file.Close()
	fb.file = nil
	return err
}
