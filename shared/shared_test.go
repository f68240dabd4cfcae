package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumBits(t *testing.T) {
	r := require.New(t)

	r.Equal(uint(0), NumBits(0))
	r.Equal(uint(1), NumBits(1))
	r.Equal(uint(2), NumBits(2))
	r.Equal(uint(2), NumBits(3))
	r.Equal(uint(3), NumBits(4))
	r.Equal(uint(8), NumBits(0xff))
	r.Equal(uint(9), NumBits(0x100))
	r.Equal(uint(64), NumBits(1<<63))
}

func TestHexString(t *testing.T) {
	r := require.New(t)

	r.Equal("", HexString(nil))
	r.Equal("00ff10", HexString([]byte{0x00, 0xff, 0x10}))
	r.Equal("deadbeef", HexString([]byte{0xde, 0xad, 0xbe, 0xef}))
}
