// Package bitcursor packs and unpacks sequences of sub-byte fields against a
// byte-addressable buffer, using a bit-granular cursor underneath. It is the
// layout-driven layer: callers describe fields by their bit widths and the
// codec walks them in order, MSB-first within each byte.
package bitcursor

import (
	"fmt"

	"github.com/wirekit/bitcursor/buffer"
	"github.com/wirekit/bitcursor/cursor"
	"github.com/wirekit/bitcursor/shared"
)

const (
	MinFieldWidth = 1
	MaxFieldWidth = 8
)

// Field is one sub-byte field: its width in bits and its right-justified
// value.
type Field struct {
	Width uint
	Value byte
}

// Codec reads and writes field sequences. Fields never cross a byte
// boundary: when a width exceeds the bits remaining in the current byte, the
// remainder is consumed (or zero-filled, when packing) as padding and the
// field starts on the next byte.
type Codec struct {
	logger shared.Logger
}

func NewCodec() *Codec {
	return &Codec{logger: shared.NoopLogger{}}
}

func (c *Codec) SetLogger(logger shared.Logger) {
	c.logger = logger
}

// Unpack reads one field per width from buf, starting at buf's current
// position.
func (c *Codec) Unpack(buf cursor.Buffer, widths []uint) ([]Field, error) {
	if err := validateWidths(widths); err != nil {
		return nil, err
	}

	cur := cursor.New(buf)
	fields := make([]Field, 0, len(widths))
	for i, w := range widths {
		cur.Resync()
		if rem := cur.Remaining(); w > rem {
			if _, err := cur.ReadBits(rem); err != nil {
				return nil, fmt.Errorf("failed to skip padding before field %d: %w", i, err)
			}
			c.logger.Debug("skipped %d padding bits before field %d", rem, i)
			cur.Resync()
		}

		v, err := cur.ReadBits(w)
		if err != nil {
			return nil, fmt.Errorf("failed to read field %d: %w", i, err)
		}
		c.logger.Debug("unpacked field %d: width: %d, value: %d", i, w, v)
		fields = append(fields, Field{Width: w, Value: v})
	}

	return fields, nil
}

// Pack writes one value per width into a fresh zeroed buffer sized by
// PackedSize, and returns the buffer. A value wider than its field is
// rejected.
func (c *Codec) Pack(widths []uint, values []byte) (*buffer.SliceBuffer, error) {
	if err := validateWidths(widths); err != nil {
		return nil, err
	}
	if len(values) != len(widths) {
		return nil, fmt.Errorf("invalid values; expected: %d (one per field), given: %d", len(widths), len(values))
	}
	for i, v := range values {
		if shared.NumBits(uint64(v)) > widths[i] {
			return nil, fmt.Errorf("invalid value of field %d; expected: < %d, given: %d", i, 1<<widths[i], v)
		}
	}

	buf := buffer.NewZeroed(PackedSize(widths))
	cur := cursor.New(buf)
	for i, w := range widths {
		cur.Resync()
		if rem := cur.Remaining(); w > rem {
			if err := cur.WriteBits(0, rem); err != nil {
				return nil, fmt.Errorf("failed to pad before field %d: %w", i, err)
			}
			c.logger.Debug("zero-filled %d padding bits before field %d", rem, i)
			cur.Resync()
		}

		if err := cur.WriteBits(values[i], w); err != nil {
			return nil, fmt.Errorf("failed to write field %d: %w", i, err)
		}
		c.logger.Debug("packed field %d: width: %d, value: %d", i, w, values[i])
	}

	c.logger.Info("packed %d fields into %d bytes: %s", len(widths), buf.Len(), shared.HexString(buf.Bytes()))
	return buf, nil
}

// PackedSize returns the number of bytes a layout occupies, including the
// zero padding inserted wherever a field would otherwise cross a byte
// boundary.
func PackedSize(widths []uint) int {
	var full int
	var used uint
	for _, w := range widths {
		if used > 0 && w > 8-used {
			full++
			used = 0
		}
		used += w
		if used == 8 {
			full++
			used = 0
		}
	}
	if used > 0 {
		full++
	}
	return full
}

func validateWidths(widths []uint) error {
	if len(widths) == 0 {
		return fmt.Errorf("invalid layout; expected: at least one field")
	}
	for i, w := range widths {
		if w < MinFieldWidth || w > MaxFieldWidth {
			return fmt.Errorf("invalid width of field %d; expected: %d-%d, given: %d", i, MinFieldWidth, MaxFieldWidth, w)
		}
	}
	return nil
}
