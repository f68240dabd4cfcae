package bitcursor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wirekit/bitcursor/buffer"
)

func TestUnpack(t *testing.T) {
	r := require.New(t)

	codec := NewCodec()
	fields, err := codec.Unpack(buffer.NewSliceBuffer([]byte{0b10110010}), []uint{3, 5})
	r.NoError(err)
	r.Equal([]Field{{Width: 3, Value: 0b101}, {Width: 5, Value: 0b10010}}, fields)
}

func TestUnpackWithPadding(t *testing.T) {
	r := require.New(t)

	// The 7-bit field does not fit the 5 bits left in the first byte, so it
	// starts on the second.
	codec := NewCodec()
	fields, err := codec.Unpack(buffer.NewSliceBuffer([]byte{0b10100000, 0b11111110}), []uint{3, 7})
	r.NoError(err)
	r.Equal([]Field{{Width: 3, Value: 0b101}, {Width: 7, Value: 0b1111111}}, fields)
}

func TestUnpackInvalid(t *testing.T) {
	r := require.New(t)

	codec := NewCodec()

	_, err := codec.Unpack(buffer.NewZeroed(1), nil)
	r.Error(err)

	_, err = codec.Unpack(buffer.NewZeroed(1), []uint{0})
	r.Error(err)

	_, err = codec.Unpack(buffer.NewZeroed(1), []uint{9})
	r.Error(err)

	// Layout longer than the buffer.
	_, err = codec.Unpack(buffer.NewZeroed(1), []uint{8, 1})
	r.Error(err)
}

func TestPack(t *testing.T) {
	r := require.New(t)

	codec := NewCodec()
	buf, err := codec.Pack([]uint{1, 3, 1, 3}, []byte{1, 0b011, 0, 0})
	r.NoError(err)
	r.Equal([]byte{0b10110000}, buf.Bytes())
}

func TestPackWithPadding(t *testing.T) {
	r := require.New(t)

	codec := NewCodec()
	buf, err := codec.Pack([]uint{3, 7}, []byte{0b101, 0b1111111})
	r.NoError(err)
	r.Equal([]byte{0b10100000, 0b11111110}, buf.Bytes())
}

func TestPackRejectsOverflow(t *testing.T) {
	r := require.New(t)

	codec := NewCodec()

	_, err := codec.Pack([]uint{3}, []byte{8})
	r.Error(err)

	_, err = codec.Pack([]uint{3, 5}, []byte{7})
	r.Error(err)
}

func TestPackUnpackRoundTrip(t *testing.T) {
	r := require.New(t)

	widths := []uint{1, 3, 1, 4, 7, 8, 2}
	values := []byte{1, 0b011, 0, 0b1001, 0b1010101, 0xb2, 0b10}

	codec := NewCodec()
	buf, err := codec.Pack(widths, values)
	r.NoError(err)

	fields, err := codec.Unpack(buffer.NewSliceBuffer(buf.Bytes()), widths)
	r.NoError(err)
	r.Len(fields, len(widths))
	for i, f := range fields {
		r.Equal(widths[i], f.Width)
		r.Equal(values[i], f.Value, "field %d", i)
	}
}

func TestPackedSize(t *testing.T) {
	r := require.New(t)

	r.Equal(0, PackedSize(nil))
	r.Equal(1, PackedSize([]uint{8}))
	r.Equal(1, PackedSize([]uint{3, 5}))
	r.Equal(1, PackedSize([]uint{1, 1, 1}))
	r.Equal(2, PackedSize([]uint{3, 7}))
	r.Equal(2, PackedSize([]uint{8, 8}))
	r.Equal(3, PackedSize([]uint{7, 7, 7}))
	r.Equal(2, PackedSize([]uint{4, 4, 4}))
}
