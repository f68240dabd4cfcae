package bitops

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBit(t *testing.T) {
	r := require.New(t)

	for v := 0; v < 256; v++ {
		b := byte(v)
		for index := uint(0); index < 8; index++ {
			expected := byte(0)
			if b&(1<<(7-index)) != 0 {
				expected = 1
			}
			r.Equal(expected, Bit(b, index))
			r.Equal(expected == 1, BitAsBool(b, index))
		}
	}
}

func TestBits(t *testing.T) {
	r := require.New(t)

	for v := 0; v < 256; v++ {
		b := byte(v)
		for index := uint(0); index < 8; index++ {
			for count := uint(1); index+count <= 8; count++ {
				var expected byte
				for i := uint(0); i < count; i++ {
					expected = expected<<1 | Bit(b, index+i)
				}
				r.Equal(expected, Bits(b, index, count))
			}
		}
	}
}

func TestBits_MSBFirst(t *testing.T) {
	r := require.New(t)

	b := byte(0b10110010)
	r.Equal(byte(0b101), Bits(b, 0, 3))
	r.Equal(byte(0b10010), Bits(b, 3, 5))
	r.Equal(byte(0b1), Bits(b, 0, 1))
	r.Equal(byte(0b0), Bits(b, 7, 1))
	r.Equal(b, Bits(b, 0, 8))
}

func TestSetBit(t *testing.T) {
	r := require.New(t)

	for v := 0; v < 256; v++ {
		b := byte(v)
		for index := uint(0); index < 8; index++ {
			set := SetBit(b, index, 1)
			cleared := SetBit(b, index, 0)

			r.Equal(byte(1), Bit(set, index))
			r.Equal(byte(0), Bit(cleared, index))

			// All other bits stay untouched.
			for other := uint(0); other < 8; other++ {
				if other == index {
					continue
				}
				r.Equal(Bit(b, other), Bit(set, other))
				r.Equal(Bit(b, other), Bit(cleared, other))
			}
		}
	}
}

func TestSetBit_MasksValue(t *testing.T) {
	r := require.New(t)

	// Only the LS bit of the bit argument is considered.
	r.Equal(byte(0x80), SetBit(0, 0, 0xff))
	r.Equal(byte(0), SetBit(0x80, 0, 0xfe))
}
